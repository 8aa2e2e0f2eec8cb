package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"recipe-manager/domain"
	"recipe-manager/repositories"
	"recipe-manager/sink"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	uri := flag.String("uri", envOr("MONGO_URI", repositories.DefaultURI), "MongoDB connection string")
	database := flag.String("db", envOr("MONGO_DATABASE", repositories.DefaultDatabase), "Database name")
	collection := flag.String("collection", envOr("MONGO_COLLECTION", repositories.DefaultCollection), "Collection name")
	// Render an exported file instead of the live collection
	backup := flag.String("backup", "", "Path to a JSON backup to inspect")
	flag.Parse()

	var rows [][]string
	var err error
	if *backup != "" {
		rows, err = backupRows(*backup)
	} else {
		rows, err = collectionRows(repositories.Options{URI: *uri, Database: *database, Collection: *collection})
	}
	if err != nil {
		log.Fatal(err)
	}
	render(os.Stdout, rows)
}

func collectionRows(opts repositories.Options) ([][]string, error) {
	ctx := context.Background()
	client, repository, err := repositories.Open(ctx, opts, logs.GetLoggerFromString("ERROR"))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	count, err := repository.Count(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, count)
	for recipe, err := range repository.FindAll(ctx) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, recipeRow(recipe.ID, recipe.Name, recipe.Category, recipe.Time,
			recipe.Ingredients, recipe.CreatedAt.Local().Format(domain.TimeLayout)))
	}
	return rows, nil
}

func backupRows(path string) ([][]string, error) {
	entries, err := sink.ReadBackupFile(path)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, recipeRow(e.ID, e.Name, e.Category, e.Time, e.Ingredients, e.CreatedAt))
	}
	return rows, nil
}

func recipeRow(id, name, category string, minutes int, ingredients []string, createdAt string) []string {
	// The first 8 characters are enough to tell documents apart
	displayID := id
	if len(displayID) > 8 {
		displayID = displayID[:8]
	}
	return []string{
		displayID,
		name,
		category,
		strconv.Itoa(minutes),
		domain.JoinIngredients(ingredients),
		createdAt,
	}
}

func render(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Category", "Time", "Ingredients", "Created At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
	fmt.Fprintf(w, "%d recipe(s)\n", len(rows))
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
