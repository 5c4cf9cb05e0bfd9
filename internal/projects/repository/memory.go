package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"
)

// MemoryProjectRepository is an in-process domain.Repository used by tests
// and local development. It mirrors the store's semantics: first-match
// lookups, duplicate external ids allowed, set-semantics user adds.
type MemoryProjectRepository struct {
	mu       sync.Mutex
	projects []domain.Project
}

func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{}
}

func (r *MemoryProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Project, 0, len(r.projects))
	for i := range r.projects {
		out = append(out, *cloneProject(&r.projects[i]))
	}
	return out, nil
}

func (r *MemoryProjectRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].PublicID == publicID {
			return cloneProject(&r.projects[i]), nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *MemoryProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = primitive.NewObjectID()
	r.projects = append(r.projects, *cloneProject(p))
	return p, nil
}

func (r *MemoryProjectRepository) AddUser(ctx context.Context, publicID, uid string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].PublicID != publicID {
			continue
		}
		p := &r.projects[i]
		found := false
		for _, u := range p.Users {
			if u == uid {
				found = true
				break
			}
		}
		if !found {
			p.Users = append(p.Users, uid)
		}
		return cloneProject(p), nil
	}
	return nil, domain.ErrProjectNotFound
}

func cloneProject(p *domain.Project) *domain.Project {
	cp := *p
	cp.Users = append([]string(nil), p.Users...)
	return &cp
}
