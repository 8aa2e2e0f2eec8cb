package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"recipe-manager/errors"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	mongoOnce      sync.Once
	mongoURI       string
	skipMongoTests bool
)

// setupMongoDB starts a throwaway MongoDB once for the package.
// Without Docker the MongoDB backed tests are skipped.
func setupMongoDB() {
	ctx := context.Background()

	var container testcontainers.Container
	var containerErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				containerErr = fmt.Errorf("docker not available: %v", r)
			}
		}()
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections"),
			Tmpfs:        map[string]string{"/data/db": "rw"},
		}
		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	}()
	if containerErr != nil {
		fmt.Printf("Docker not available, MongoDB tests will be skipped: %v\n", containerErr)
		skipMongoTests = true
		return
	}

	host, err := container.Host(ctx)
	if err != nil {
		skipMongoTests = true
		return
	}
	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		skipMongoTests = true
		return
	}
	mongoURI = fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func openMongoRepository(t *testing.T) *RecipeRepository {
	t.Helper()
	mongoOnce.Do(setupMongoDB)
	if skipMongoTests {
		t.Skip("Docker not available, skipping MongoDB test")
	}
	ctx := context.Background()
	client, repository, err := Open(ctx, Options{
		URI:        mongoURI,
		Database:   "recipe_test",
		Collection: t.Name(),
		Timeout:    10 * time.Second,
	}, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Database("recipe_test").Collection(t.Name()).Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return repository
}

func TestMongo_Scenario(t *testing.T) {
	req := require.New(t)
	repository := openMongoRepository(t)
	ctx := context.Background()
	borscht := borschtRecipe()

	id, err := repository.Insert(ctx, borscht)
	req.NoError(err)

	found, err := repository.FindByNameSubstring(ctx, "bOrScH")
	req.NoError(err)
	req.Equal(id, found.ID)
	req.Equal(borscht.Name, found.Name)
	req.Equal(borscht.Category, found.Category)
	req.Equal(borscht.Time, found.Time)
	req.Equal(borscht.Ingredients, found.Ingredients)
	req.Equal(borscht.Instructions, found.Instructions)
	req.True(borscht.CreatedAt.Equal(found.CreatedAt))

	req.NoError(repository.UpdateTime(ctx, id, 45))
	found, err = repository.FindByNameSubstring(ctx, "borscht")
	req.NoError(err)
	req.Equal(45, found.Time)

	var total int
	for _, err := range repository.FindAll(ctx) {
		req.NoError(err)
		total++
	}
	req.Equal(1, total)

	deleted, err := repository.DeleteByNameSubstring(ctx, "borscht")
	req.NoError(err)
	req.True(deleted)

	_, err = repository.FindByNameSubstring(ctx, "borscht")
	req.ErrorIs(err, errors.ErrRecipeNotFound)
}

func TestMongo_OpenFailsWithoutServer(t *testing.T) {
	_, _, err := Open(context.Background(), Options{
		URI:     "mongodb://127.0.0.1:1/",
		Timeout: 200 * time.Millisecond,
	}, slog.Default())
	require.ErrorIs(t, err, errors.ErrConnection)
}
