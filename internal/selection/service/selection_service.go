package service

import (
	"context"
	"errors"

	projectsdomain "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"
	usersdomain "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/domain"
)

// SelectionService implements the assignment workflow: keeping a user's
// selected project and the project's user set in step. The two writes are
// independent document updates, not a transaction; when the second write
// misses (unknown project id) the first has already committed. That partial
// application is the documented behavior of this design, so the service
// reports it as success with a nil project rather than rolling back.
type SelectionService struct {
	users    usersdomain.Repository
	projects projectsdomain.Repository
}

// NewSelectionService creates a new selection service.
func NewSelectionService(users usersdomain.Repository, projects projectsdomain.Repository) *SelectionService {
	return &SelectionService{
		users:    users,
		projects: projects,
	}
}

// Select records that the user identified by uid is now on the project
// identified by projectID. The user record is upserted first, then the uid
// is added to the project's user set. A missing project yields a nil
// project and no error; the user's selection still points at projectID.
func (s *SelectionService) Select(ctx context.Context, uid, projectID string) (*usersdomain.User, *projectsdomain.Project, error) {
	u, err := s.users.UpsertSelection(ctx, uid, projectID)
	if err != nil {
		return nil, nil, err
	}

	p, err := s.projects.AddUser(ctx, projectID, uid)
	if errors.Is(err, projectsdomain.ErrProjectNotFound) {
		return u, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return u, p, nil
}

// HasTwoUsers reports whether the project's user set holds exactly two
// members. The check is strict equality: a set that raced past two (the cap
// is not enforced on write) reports false.
func (s *SelectionService) HasTwoUsers(ctx context.Context, projectID string) (bool, error) {
	p, err := s.projects.GetByPublicID(ctx, projectID)
	if err != nil {
		return false, err
	}
	return len(p.Users) == 2, nil
}

// ProjectForUser resolves the project the given user currently has
// selected. An unknown user is ErrUserNotFound; a known user whose
// selection points at no existing project resolves to a nil project with no
// error.
func (s *SelectionService) ProjectForUser(ctx context.Context, uid string) (*projectsdomain.Project, error) {
	u, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	p, err := s.projects.GetByPublicID(ctx, u.SelectedProject)
	if errors.Is(err, projectsdomain.ErrProjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
