package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"recipe-manager/domain"
	"time"

	"github.com/samber/lo"
)

// DefaultBackupPath is where the menu exports recipes when nothing else is configured.
const DefaultBackupPath = "recipes_backup.json"

// BackupEntry is one recipe as written to the JSON backup.
// created_at uses domain.TimeLayout in the local time zone.
type BackupEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Time         int      `json:"time"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CreatedAt    string   `json:"created_at"`
}

// WriteBackup encodes recipes as an indented JSON array. Non-ASCII text is
// written as is.
func WriteBackup(w io.Writer, recipes []domain.Recipe) error {
	entries := lo.Map(recipes, func(recipe domain.Recipe, _ int) BackupEntry {
		return toBackupEntry(recipe)
	})
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	return encoder.Encode(entries)
}

// WriteBackupFile replaces the file at path with a backup of recipes.
func WriteBackupFile(path string, recipes []domain.Recipe) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing backup file: %w", closeErr)
		}
	}()
	if err = WriteBackup(f, recipes); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}

// ReadBackup decodes a backup produced by WriteBackup.
func ReadBackup(r io.Reader) ([]BackupEntry, error) {
	var entries []BackupEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing backup: %w", err)
	}
	return entries, nil
}

// ReadBackupFile opens and decodes the backup at path.
func ReadBackupFile(path string) ([]BackupEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening backup file: %w", err)
	}
	defer f.Close()
	return ReadBackup(f)
}

// CreatedTime parses the created_at column back into a time.
func (e BackupEntry) CreatedTime() (time.Time, error) {
	return time.ParseInLocation(domain.TimeLayout, e.CreatedAt, time.Local)
}

func toBackupEntry(recipe domain.Recipe) BackupEntry {
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return BackupEntry{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Category:     recipe.Category,
		Time:         recipe.Time,
		Ingredients:  ingredients,
		Instructions: recipe.Instructions,
		CreatedAt:    recipe.CreatedAt.Local().Format(domain.TimeLayout),
	}
}
