package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/users/domain"
)

const collectionName = "users"

// UserRepository is the MongoDB-backed implementation of domain.Repository.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new user repository over the given database.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionName)}
}

// GetByUID returns the first user whose uid matches.
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user record and returns it with the store-assigned
// identity filled in.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, nil
}

// UpsertSelection points the user's selected project at projectID,
// creating the record when no user with that uid exists.
func (r *UserRepository) UpsertSelection(ctx context.Context, uid, projectID string) (*domain.User, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u domain.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{"selected_project": projectID}},
		opts,
	).Decode(&u)
	if err != nil {
		return nil, fmt.Errorf("upsert selection: %w", err)
	}
	return &u, nil
}
