package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project represents a single joinable project as stored in the projects
// collection. PublicID is the caller-supplied external identifier used for
// all lookups; ID is the store-assigned record identity. Users holds the
// external ids of the users currently on the project (intended cap: 2,
// checked only at read time by the occupancy endpoint, never enforced on
// write).
type Project struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PublicID string             `bson:"id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image" json:"image"`
	Link     string             `bson:"link" json:"link"`
	Users    []string           `bson:"users" json:"users"`
}

// Repository provides persistence operations for projects.
type Repository interface {
	// List returns every project record, unfiltered.
	List(ctx context.Context) ([]Project, error)
	// GetByPublicID returns the first project whose external id matches,
	// or ErrProjectNotFound.
	GetByPublicID(ctx context.Context, publicID string) (*Project, error)
	// Create persists a new project record. No uniqueness check is made on
	// the external id; duplicates are stored as-is.
	Create(ctx context.Context, p *Project) (*Project, error)
	// AddUser adds uid to the project's user set (no duplicate entries) and
	// returns the updated record, or ErrProjectNotFound when no project
	// matches publicID.
	AddUser(ctx context.Context, publicID, uid string) (*Project, error)
}
