package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/domain"
)

// MemoryUserRepository is an in-process domain.Repository used by tests and
// local development. Lookups are first-match; duplicate uids are allowed,
// matching the store's behavior.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users []domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].UID == uid {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = primitive.NewObjectID()
	r.users = append(r.users, *u)
	return u, nil
}

func (r *MemoryUserRepository) UpsertSelection(ctx context.Context, uid, projectID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].UID == uid {
			r.users[i].SelectedProject = projectID
			u := r.users[i]
			return &u, nil
		}
	}

	u := domain.User{
		ID:              primitive.NewObjectID(),
		UID:             uid,
		SelectedProject: projectID,
	}
	r.users = append(r.users, u)
	return &u, nil
}
