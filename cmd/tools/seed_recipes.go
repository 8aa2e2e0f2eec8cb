package main

import (
	"context"
	"fmt"
	"os"
	"recipe-manager/domain"
	"recipe-manager/repositories"
	"recipe-manager/services"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	MongoURI        string        `env:"MONGO_URI,default=mongodb://localhost:27017/"`
	MongoDatabase   string        `env:"MONGO_DATABASE,default=recipe_db"`
	MongoCollection string        `env:"MONGO_COLLECTION,default=recipes"`
	MongoTimeout    time.Duration `env:"MONGO_TIMEOUT,default=5s"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
}

// sampleDrafts fills an empty collection for demos and manual testing.
var sampleDrafts = []domain.Draft{
	{
		Name:         "Борщ",
		Category:     "суп",
		Time:         90,
		Ingredients:  domain.SplitIngredients("буряк, капуста, картопля, морква, цибуля"),
		Instructions: "Зварити бульйон, додати овочі та варити до готовності.",
	},
	{
		Name:         "Вареники з картоплею",
		Category:     "основна страва",
		Time:         60,
		Ingredients:  domain.SplitIngredients("борошно, вода, картопля, цибуля"),
		Instructions: "Замісити тісто, зліпити вареники та відварити.",
	},
	{
		Name:         "Сирники",
		Category:     "десерт",
		Time:         25,
		Ingredients:  domain.SplitIngredients("сир, яйце, борошно, цукор"),
		Instructions: "Змішати інгредієнти, сформувати сирники та обсмажити.",
	},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	client, repository, err := repositories.Open(ctx, repositories.Options{
		URI:        config.MongoURI,
		Database:   config.MongoDatabase,
		Collection: config.MongoCollection,
		Timeout:    config.MongoTimeout,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	count, err := repository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Printf("ℹ️  Collection already holds %d recipe(s), nothing to do\n", count)
		return nil
	}

	service := services.NewRecipeService(repository, log)
	for _, draft := range sampleDrafts {
		recipe, err := service.Add(ctx, draft)
		if err != nil {
			return fmt.Errorf("adding %q: %w", draft.Name, err)
		}
		fmt.Printf("🍲 %s (%s)\n", recipe.Name, recipe.ID)
	}
	fmt.Printf("\n✅ %d recipes ready in %s.%s\n", len(sampleDrafts), config.MongoDatabase, config.MongoCollection)
	return nil
}
