//go:generate go run go.uber.org/mock/mockgen -source=recipe.go -destination=../mocks/mock_recipe_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"recipe-manager/domain"
	"recipe-manager/errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	DefaultURI        = "mongodb://localhost:27017/"
	DefaultDatabase   = "recipe_db"
	DefaultCollection = "recipes"
	defaultOpTimeout  = 5 * time.Second
)

type IRecipeRepository interface {
	Insert(ctx context.Context, recipe domain.Recipe) (string, error)
	FindAll(ctx context.Context) iter.Seq2[domain.Recipe, error]
	FindByNameSubstring(ctx context.Context, text string) (domain.Recipe, error)
	UpdateTime(ctx context.Context, id string, minutes int) error
	DeleteByNameSubstring(ctx context.Context, text string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// Options configures the connection opened by Open.
type Options struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type RecipeRepository struct {
	recipes collection
	log     *slog.Logger
	timeout time.Duration
}

type recipeDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Category     string        `bson:"category"`
	Time         int           `bson:"time"`
	Ingredients  []string      `bson:"ingredients"`
	Instructions string        `bson:"instructions"`
	CreatedAt    time.Time     `bson:"created_at"`
}

// Open connects to MongoDB, checks the server answers and makes sure the
// name index exists. The caller owns the returned client and must
// disconnect it.
func Open(ctx context.Context, opts Options, log *slog.Logger) (*mongo.Client, *RecipeRepository, error) {
	opts = opts.withDefaults()
	client, err := mongo.Connect(options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(opts.Timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrConnection, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrConnection, err)
	}

	coll := client.Database(opts.Database).Collection(opts.Collection)
	repository, err := newRecipeRepository(pingCtx, mongoCollection{coll: coll}, log, opts.Timeout)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrConnection, err)
	}
	log.Debug("Connected to MongoDB", "database", opts.Database, "collection", opts.Collection)
	return client, repository, nil
}

func newRecipeRepository(ctx context.Context, recipes collection, log *slog.Logger, timeout time.Duration) (*RecipeRepository, error) {
	if err := ensureIndexes(ctx, recipes); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}
	return &RecipeRepository{recipes: recipes, log: log, timeout: timeout}, nil
}

func (o Options) withDefaults() Options {
	if o.URI == "" {
		o.URI = DefaultURI
	}
	if o.Database == "" {
		o.Database = DefaultDatabase
	}
	if o.Collection == "" {
		o.Collection = DefaultCollection
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultOpTimeout
	}
	return o
}

// Insert stores a new recipe and returns the identifier MongoDB generated.
func (r *RecipeRepository) Insert(ctx context.Context, recipe domain.Recipe) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.recipes.InsertOne(ctx, fromRecipe(recipe))
	if err != nil {
		return "", fmt.Errorf("%w: insert %q: %v", errors.ErrStorage, recipe.Name, err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id %v", errors.ErrStorage, res.InsertedID)
	}
	r.log.Debug("Recipe inserted", "id", id.Hex(), "name", recipe.Name)
	return id.Hex(), nil
}

// FindAll streams every recipe in storage order. Each range over the
// returned sequence runs a new query.
func (r *RecipeRepository) FindAll(ctx context.Context) iter.Seq2[domain.Recipe, error] {
	return func(yield func(domain.Recipe, error) bool) {
		ctx, cancel := r.withTimeout(ctx)
		defer cancel()
		cur, err := r.recipes.Find(ctx, bson.M{})
		if err != nil {
			yield(domain.Recipe{}, fmt.Errorf("%w: find: %v", errors.ErrStorage, err))
			return
		}
		defer func() {
			_ = cur.Close(ctx)
		}()
		for cur.Next(ctx) {
			var doc recipeDocument
			if err := cur.Decode(&doc); err != nil {
				yield(domain.Recipe{}, fmt.Errorf("%w: decode: %v", errors.ErrStorage, err))
				return
			}
			if !yield(doc.toRecipe(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(domain.Recipe{}, fmt.Errorf("%w: cursor: %v", errors.ErrStorage, err))
		}
	}
}

// FindByNameSubstring returns the first recipe whose name contains text,
// ignoring case. Which recipe wins when several match is left to MongoDB.
func (r *RecipeRepository) FindByNameSubstring(ctx context.Context, text string) (domain.Recipe, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	var doc recipeDocument
	if err := r.recipes.FindOne(ctx, nameFilter(text)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Recipe{}, errors.ErrRecipeNotFound
		}
		return domain.Recipe{}, fmt.Errorf("%w: find %q: %v", errors.ErrStorage, text, err)
	}
	return doc.toRecipe(), nil
}

// UpdateTime sets the cooking time of the recipe identified by id.
func (r *RecipeRepository) UpdateTime(ctx context.Context, id string, minutes int) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid id %q", errors.ErrRecipeNotFound, id)
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.recipes.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"time": minutes}})
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", errors.ErrStorage, id, err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrRecipeNotFound
	}
	r.log.Debug("Recipe time updated", "id", id, "time", minutes)
	return nil
}

// DeleteByNameSubstring removes at most one recipe matching text and
// reports whether something was deleted.
func (r *RecipeRepository) DeleteByNameSubstring(ctx context.Context, text string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.recipes.DeleteOne(ctx, nameFilter(text))
	if err != nil {
		return false, fmt.Errorf("%w: delete %q: %v", errors.ErrStorage, text, err)
	}
	r.log.Debug("Recipe delete", "fragment", text, "deleted", res.DeletedCount)
	return res.DeletedCount > 0, nil
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	n, err := r.recipes.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: count: %v", errors.ErrStorage, err)
	}
	return n, nil
}

func (r *RecipeRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.timeout)
}

// nameFilter matches text literally anywhere in the name, ignoring case.
func nameFilter(text string) bson.M {
	return bson.M{"name": bson.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}}
}

func ensureIndexes(ctx context.Context, recipes collection) error {
	nameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	}
	if _, err := recipes.Indexes().CreateOne(ctx, nameIndex); err != nil {
		return fmt.Errorf("create name index: %w", err)
	}
	return nil
}

// fromRecipe leaves the identifier empty so MongoDB generates one.
func fromRecipe(recipe domain.Recipe) recipeDocument {
	return recipeDocument{
		Name:         recipe.Name,
		Category:     recipe.Category,
		Time:         recipe.Time,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		CreatedAt:    recipe.CreatedAt,
	}
}

func (doc recipeDocument) toRecipe() domain.Recipe {
	return domain.Recipe{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Category:     doc.Category,
		Time:         doc.Time,
		Ingredients:  doc.Ingredients,
		Instructions: doc.Instructions,
		CreatedAt:    doc.CreatedAt,
	}
}
