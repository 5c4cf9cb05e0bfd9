package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectsdomain "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"
	projectsrepo "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/repository"
	usersdomain "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/domain"
	usersrepo "github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/repository"
)

func newTestService(t *testing.T) (*SelectionService, *usersrepo.MemoryUserRepository, *projectsrepo.MemoryProjectRepository) {
	t.Helper()
	users := usersrepo.NewMemoryUserRepository()
	projects := projectsrepo.NewMemoryProjectRepository()
	return NewSelectionService(users, projects), users, projects
}

func seedProject(t *testing.T, repo *projectsrepo.MemoryProjectRepository, publicID string, userIDs ...string) {
	t.Helper()
	_, err := repo.Create(context.Background(), &projectsdomain.Project{
		PublicID: publicID,
		Name:     "project " + publicID,
		Users:    userIDs,
	})
	require.NoError(t, err)
}

func TestSelect_AssignsUserAndProject(t *testing.T) {
	svc, users, projects := newTestService(t)
	seedProject(t, projects, "p1")

	u, p, err := svc.Select(context.Background(), "u1", "p1")
	require.NoError(t, err)

	require.NotNil(t, u)
	assert.Equal(t, "u1", u.UID)
	assert.Equal(t, "p1", u.SelectedProject)

	require.NotNil(t, p)
	assert.Contains(t, p.Users, "u1")

	stored, err := users.GetByUID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "p1", stored.SelectedProject)
}

func TestSelect_AddIsIdempotentPerUser(t *testing.T) {
	svc, _, projects := newTestService(t)
	seedProject(t, projects, "p1")

	_, _, err := svc.Select(context.Background(), "u1", "p1")
	require.NoError(t, err)
	_, p, err := svc.Select(context.Background(), "u1", "p1")
	require.NoError(t, err)

	require.NotNil(t, p)
	assert.Equal(t, []string{"u1"}, p.Users)
}

func TestSelect_OverwritesPreviousSelection(t *testing.T) {
	svc, users, projects := newTestService(t)
	seedProject(t, projects, "p1")
	seedProject(t, projects, "p2")

	_, _, err := svc.Select(context.Background(), "u1", "p1")
	require.NoError(t, err)
	_, _, err = svc.Select(context.Background(), "u1", "p2")
	require.NoError(t, err)

	u, err := users.GetByUID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "p2", u.SelectedProject)

	// The previous project's user set is NOT cleaned up; the mirror is
	// allowed to drift.
	p1, err := projects.GetByPublicID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Contains(t, p1.Users, "u1")
}

func TestSelect_UnknownProjectStillUpdatesSelection(t *testing.T) {
	svc, users, _ := newTestService(t)

	u, p, err := svc.Select(context.Background(), "u1", "nope")
	require.NoError(t, err)

	assert.Nil(t, p)
	require.NotNil(t, u)
	assert.Equal(t, "nope", u.SelectedProject)

	// Step 1 committed even though step 2 missed.
	stored, err := users.GetByUID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "nope", stored.SelectedProject)
}

func TestHasTwoUsers(t *testing.T) {
	tests := []struct {
		name  string
		users []string
		want  bool
	}{
		{"empty set", nil, false},
		{"one user", []string{"u1"}, false},
		{"exactly two users", []string{"u1", "u2"}, true},
		{"three users reports false", []string{"u1", "u2", "u3"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, projects := newTestService(t)
			seedProject(t, projects, "p1", tt.users...)

			got, err := svc.HasTwoUsers(context.Background(), "p1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasTwoUsers_UnknownProject(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.HasTwoUsers(context.Background(), "nope")
	assert.ErrorIs(t, err, projectsdomain.ErrProjectNotFound)
}

func TestProjectForUser(t *testing.T) {
	svc, _, projects := newTestService(t)
	seedProject(t, projects, "p1")

	_, _, err := svc.Select(context.Background(), "u1", "p1")
	require.NoError(t, err)

	p, err := svc.ProjectForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "p1", p.PublicID)
}

func TestProjectForUser_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ProjectForUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, usersdomain.ErrUserNotFound)
}

func TestProjectForUser_DanglingSelection(t *testing.T) {
	svc, users, _ := newTestService(t)

	_, err := users.Create(context.Background(), &usersdomain.User{
		UID:             "u1",
		SelectedProject: "deleted-project",
	})
	require.NoError(t, err)

	p, err := svc.ProjectForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, p)
}
