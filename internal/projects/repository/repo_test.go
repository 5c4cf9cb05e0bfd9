package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/projects/domain"
)

// setupTestMongo connects to the MongoDB named by TEST_MONGODB_URI and
// returns a scratch database that is dropped when the test ends. The test
// is skipped when the variable is not set.
func setupTestMongo(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set, skipping MongoDB integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("chunauti_test_projects")
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	repo := NewProjectRepository(setupTestMongo(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Project{
		PublicID: "p1",
		Name:     "Chunauti One",
		Image:    "https://example.com/p1.png",
		Link:     "https://example.com/p1",
		Users:    []string{},
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	got, err := repo.GetByPublicID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, created.PublicID, got.PublicID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Image, got.Image)
	assert.Equal(t, created.Link, got.Link)
}

func TestProjectRepository_GetByPublicID_NotFound(t *testing.T) {
	repo := NewProjectRepository(setupTestMongo(t))

	_, err := repo.GetByPublicID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectRepository_AddUser(t *testing.T) {
	repo := NewProjectRepository(setupTestMongo(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Project{PublicID: "p1", Name: "one"})
	require.NoError(t, err)

	p, err := repo.AddUser(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, p.Users)

	// $addToSet keeps the entry unique.
	p, err = repo.AddUser(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, p.Users)

	p, err = repo.AddUser(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u2"}, p.Users)
}

func TestProjectRepository_AddUser_NotFound(t *testing.T) {
	repo := NewProjectRepository(setupTestMongo(t))

	_, err := repo.AddUser(context.Background(), "nope", "u1")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
