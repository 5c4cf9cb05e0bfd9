package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User maps an external user identity to the project that user currently has
// selected. SelectedProject references a Project's external id; there is no
// referential-integrity check, so it may point at a project that does not
// exist (or no longer matches any record).
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UID             string             `bson:"uid" json:"uid"`
	SelectedProject string             `bson:"selected_project" json:"selected_project"`
}

// Repository provides persistence operations for user selection records.
type Repository interface {
	// GetByUID returns the first user whose uid matches, or ErrUserNotFound.
	GetByUID(ctx context.Context, uid string) (*User, error)
	// Create persists a new user record. No uniqueness check is made on uid.
	Create(ctx context.Context, u *User) (*User, error)
	// UpsertSelection overwrites the selected project of the user with the
	// given uid, creating the record when it does not exist, and returns the
	// resulting record.
	UpsertSelection(ctx context.Context, uid, projectID string) (*User, error)
}
