package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"
)

const collectionName = "projects"

// ProjectRepository is the MongoDB-backed implementation of
// domain.Repository.
type ProjectRepository struct {
	col *mongo.Collection
}

// NewProjectRepository creates a new project repository over the given
// database.
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionName)}
}

// List returns every project record.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}

	out := make([]domain.Project, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return out, nil
}

// GetByPublicID returns the first project whose external id matches.
func (r *ProjectRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Project, error) {
	var p domain.Project
	err := r.col.FindOne(ctx, bson.M{"id": publicID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

// Create inserts a new project record and returns it with the
// store-assigned identity filled in. The external id is stored as given;
// duplicates are the caller's problem.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// AddUser adds uid to the matching project's user set and returns the
// updated record. $addToSet keeps the set free of duplicate entries; it
// does not cap the set's size.
func (r *ProjectRepository) AddUser(ctx context.Context, publicID, uid string) (*domain.Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p domain.Project
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"id": publicID},
		bson.M{"$addToSet": bson.M{"users": uid}},
		opts,
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("add user to project: %w", err)
	}
	return &p, nil
}
