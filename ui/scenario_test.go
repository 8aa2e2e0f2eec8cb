package ui

import (
	"bytes"
	"context"
	"iter"
	"log/slog"
	"path/filepath"
	"recipe-manager/domain"
	"recipe-manager/errors"
	"recipe-manager/services"
	"recipe-manager/sink"
	"strconv"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// memoryRepository keeps recipes in insertion order and matches names the
// same way MongoDB does with a case-insensitive literal regex.
type memoryRepository struct {
	recipes []domain.Recipe
	nextID  int
}

func (m *memoryRepository) Insert(_ context.Context, recipe domain.Recipe) (string, error) {
	m.nextID++
	recipe.ID = strconv.Itoa(m.nextID)
	m.recipes = append(m.recipes, recipe)
	return recipe.ID, nil
}

func (m *memoryRepository) FindAll(_ context.Context) iter.Seq2[domain.Recipe, error] {
	return func(yield func(domain.Recipe, error) bool) {
		for _, recipe := range m.recipes {
			if !yield(recipe, nil) {
				return
			}
		}
	}
}

func (m *memoryRepository) index(text string) int {
	for i, recipe := range m.recipes {
		if strings.Contains(strings.ToLower(recipe.Name), strings.ToLower(text)) {
			return i
		}
	}
	return -1
}

func (m *memoryRepository) FindByNameSubstring(_ context.Context, text string) (domain.Recipe, error) {
	i := m.index(text)
	if i < 0 {
		return domain.Recipe{}, errors.ErrRecipeNotFound
	}
	return m.recipes[i], nil
}

func (m *memoryRepository) UpdateTime(_ context.Context, id string, minutes int) error {
	for i := range m.recipes {
		if m.recipes[i].ID == id {
			m.recipes[i].Time = minutes
			return nil
		}
	}
	return errors.ErrRecipeNotFound
}

func (m *memoryRepository) DeleteByNameSubstring(_ context.Context, text string) (bool, error) {
	i := m.index(text)
	if i < 0 {
		return false, nil
	}
	m.recipes = append(m.recipes[:i], m.recipes[i+1:]...)
	return true, nil
}

func (m *memoryRepository) Count(_ context.Context) (int64, error) {
	return int64(len(m.recipes)), nil
}

func TestScenario_Borscht(t *testing.T) {
	req := require.New(t)
	repository := &memoryRepository{}
	service := services.NewRecipeService(repository, logs.GetLoggerFromLevel(slog.LevelError))
	exportPath := filepath.Join(t.TempDir(), sink.DefaultBackupPath)
	var out bytes.Buffer
	input := lines(
		"1", "Borscht", "soup", "60", "beet, cabbage", "boil",
		"2",
		"6",
		"4", "borscht", "45",
		"3", "BORSCHT",
		"5", "borscht",
		"3", "borscht",
		"5", "borscht",
		"7",
	)
	console := NewConsole(service, strings.NewReader(input), &out, slog.Default(), Options{ExportPath: exportPath})

	req.NoError(console.Run(context.Background()))

	output := out.String()
	req.Contains(output, "✅ Рецепт успішно додано!")
	req.Contains(output, "Назва: Borscht, Категорія: soup, Час: 60 хв.")
	req.Contains(output, "Інгредієнти: beet, cabbage")
	req.Contains(output, "✅ Рецепт оновлено!")
	req.Contains(output, "Назва: Borscht, Категорія: soup, Час: 45 хв.")
	req.Equal(1, strings.Count(output, "✅ Рецепт видалено!"))
	req.Equal(2, strings.Count(output, msgNotFound))
	req.Empty(repository.recipes)

	entries, err := sink.ReadBackupFile(exportPath)
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal(60, entries[0].Time)
	req.Equal([]string{"beet", "cabbage"}, entries[0].Ingredients)
}

func TestScenario_InvalidTimeDoesNotMutate(t *testing.T) {
	req := require.New(t)
	repository := &memoryRepository{}
	service := services.NewRecipeService(repository, slog.Default())
	var out bytes.Buffer
	input := lines(
		"1", "Borscht", "soup", "0",
		"1", "Borscht", "soup", "sixty",
		"1", "Borscht", "soup", "60", "beet", "boil",
		"4", "borscht", "-1",
		"4", "borscht", "1.5",
		"7",
	)
	console := NewConsole(service, strings.NewReader(input), &out, slog.Default(), Options{})

	req.NoError(console.Run(context.Background()))

	req.Equal(4, strings.Count(out.String(), msgInvalidTime))
	req.Len(repository.recipes, 1)
	req.Equal(60, repository.recipes[0].Time)
}
