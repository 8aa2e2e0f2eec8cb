package main

import (
	"context"
	"fmt"
	"os"
	"recipe-manager/errors"
	"recipe-manager/repositories"
	"recipe-manager/services"
	"recipe-manager/ui"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the recipe book.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		label := "❌ Помилка:"
		if errors.Is(err, errors.ErrConnection) {
			label = "❌ Помилка з'єднання з MongoDB:"
		}
		fmt.Fprintln(os.Stderr, color.Red.Sprint(label), err)
	}
	os.Exit(code)
}

// run loads the configuration, opens MongoDB once, serves the menu and
// disconnects before returning.
func run() (int, error) {
	// 1. Configuration & Logger, a missing .env file is fine
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (MongoDB)
	client, repository, err := repositories.Open(ctx, repositories.Options{
		URI:        config.MongoURI,
		Database:   config.MongoDatabase,
		Collection: config.MongoCollection,
		Timeout:    config.MongoTimeout,
	}, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing MongoDB connection...")
		_ = client.Disconnect(context.Background())
	}()

	// 3. Menu
	service := services.NewRecipeService(repository, log)
	console := ui.NewConsole(service, os.Stdin, os.Stdout, log, ui.Options{
		ExportPath: config.ExportPath,
		Colours:    config.Colours,
	})
	if err = console.Run(ctx); err != nil {
		return exitRuntime, fmt.Errorf("reading input: %w", err)
	}
	return exitOK, nil
}
