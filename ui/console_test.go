package ui

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"recipe-manager/domain"
	"recipe-manager/errors"
	"recipe-manager/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConsole(service *mocks.MockIRecipeService, input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	console := NewConsole(service, strings.NewReader(input), &out, slog.Default(), Options{ExportPath: "backup.json"})
	return console, &out
}

func lines(input ...string) string {
	return strings.Join(input, "\n") + "\n"
}

func TestRun_ExitAndInvalidChoice(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIRecipeService(ctrl)
	console, out := newTestConsole(service, lines("8", " 1", "abc", "7", "1"))

	req.NoError(console.Run(context.Background()))

	req.Equal(3, strings.Count(out.String(), "❌ Невірний вибір, спробуйте ще раз."))
	req.Contains(out.String(), "=== Меню ===")
	req.Contains(out.String(), "👋 До побачення!")
}

func TestRun_StopsAtEndOfInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIRecipeService(ctrl)
	console, out := newTestConsole(service, "")

	require.NoError(t, console.Run(context.Background()))
	require.Equal(t, 1, strings.Count(out.String(), "=== Меню ==="))
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIRecipeService(ctrl)
	console, out := newTestConsole(service, lines("2"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, console.Run(ctx))
	require.Empty(t, out.String())
}

func TestAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := mocks.NewMockIRecipeService(ctrl)

	t.Run("should send the typed recipe to the service", func(t *testing.T) {
		req := require.New(t)
		expected := domain.Draft{
			Name:         "Borscht",
			Category:     "soup",
			Time:         60,
			Ingredients:  []string{"beet", "cabbage"},
			Instructions: "boil",
		}
		service.EXPECT().Add(gomock.Any(), expected).Return(domain.Recipe{Name: "Borscht"}, nil).Times(1)
		console, out := newTestConsole(service, lines("1", "Borscht", "soup", "60", "beet, cabbage", "boil", "7"))

		req.NoError(console.Run(context.Background()))
		req.Contains(out.String(), "✅ Рецепт успішно додано!")
	})

	t.Run("should abort right after an invalid time", func(t *testing.T) {
		req := require.New(t)
		service.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)
		// The next lines are read as menu choices again
		console, out := newTestConsole(service, lines("1", "Borscht", "soup", "soon", "7"))

		req.NoError(console.Run(context.Background()))
		req.Contains(out.String(), msgInvalidTime)
		req.NotContains(out.String(), "Список інгредієнтів")
	})

	t.Run("should print storage failures and keep the menu running", func(t *testing.T) {
		req := require.New(t)
		service.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			Return(domain.Recipe{}, fmt.Errorf("%w: timeout", errors.ErrStorage)).
			Times(1)
		console, out := newTestConsole(service, lines("1", "Borscht", "soup", "60", "beet", "boil", "7"))

		req.NoError(console.Run(context.Background()))
		req.Contains(out.String(), "❌ Помилка додавання рецепта: storage operation failed: timeout")
		req.Contains(out.String(), "👋 До побачення!")
	})
}

func TestView(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIRecipeService(ctrl)
	var recipes iter.Seq2[domain.Recipe, error] = func(yield func(domain.Recipe, error) bool) {
		yield(domain.Recipe{
			Name:         "Borscht",
			Category:     "soup",
			Time:         60,
			Ingredients:  []string{"beet", "cabbage"},
			Instructions: "boil",
		}, nil)
	}
	service.EXPECT().Recipes(gomock.Any()).Return(recipes).Times(1)
	console, out := newTestConsole(service, lines("2", "7"))

	req.NoError(console.Run(context.Background()))
	req.Contains(out.String(), "Назва: Borscht, Категорія: soup, Час: 60 хв.\n"+
		"Інгредієнти: beet, cabbage\n"+
		"Інструкція: boil\n"+
		strings.Repeat("-", 30)+"\n")
}

func TestSearchUpdateDelete_NotFound(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIRecipeService(ctrl)
	service.EXPECT().Search(gomock.Any(), "pizza").Return(domain.Recipe{}, errors.ErrRecipeNotFound).Times(2)
	service.EXPECT().UpdateTime(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	service.EXPECT().Delete(gomock.Any(), "pizza").Return(errors.ErrRecipeNotFound).Times(1)
	console, out := newTestConsole(service, lines("3", "pizza", "4", "pizza", "5", "pizza", "7"))

	req.NoError(console.Run(context.Background()))
	req.Equal(3, strings.Count(out.String(), msgNotFound))
	req.NotContains(out.String(), "Новий час приготування")
}

func TestUpdate_InvalidTime(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIRecipeService(ctrl)
	borscht := domain.Recipe{ID: "65f1c0ffee0000000000aaaa", Name: "Borscht", Time: 60}
	service.EXPECT().Search(gomock.Any(), "bor").Return(borscht, nil).Times(1)
	service.EXPECT().UpdateTime(gomock.Any(), borscht, "-4").Return(domain.Recipe{}, errors.ErrInvalidTime).Times(1)
	console, out := newTestConsole(service, lines("4", "bor", "-4", "7"))

	req.NoError(console.Run(context.Background()))
	req.Contains(out.String(), "Знайдено рецепт: Borscht")
	req.Contains(out.String(), msgInvalidTime)
	req.NotContains(out.String(), "✅ Рецепт оновлено!")
}

func TestExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := mocks.NewMockIRecipeService(ctrl)

	t.Run("should report the export file", func(t *testing.T) {
		service.EXPECT().Export(gomock.Any(), "backup.json").Return(3, nil).Times(1)
		console, out := newTestConsole(service, lines("6", "7"))

		require.NoError(t, console.Run(context.Background()))
		require.Contains(t, out.String(), "✅ Рецепти успішно експортовано у backup.json!")
	})

	t.Run("should print export failures", func(t *testing.T) {
		service.EXPECT().Export(gomock.Any(), "backup.json").Return(0, errors.ErrExport).Times(1)
		console, out := newTestConsole(service, lines("6", "7"))

		require.NoError(t, console.Run(context.Background()))
		require.Contains(t, out.String(), "❌ Помилка експорту рецептів: export failed")
	})
}
