//go:generate go run go.uber.org/mock/mockgen -source=recipe_service.go -destination=../mocks/mock_recipe_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"recipe-manager/domain"
	"recipe-manager/errors"
	"recipe-manager/repositories"
	"recipe-manager/sink"
	"time"
)

type IRecipeService interface {
	Add(ctx context.Context, draft domain.Draft) (domain.Recipe, error)
	Recipes(ctx context.Context) iter.Seq2[domain.Recipe, error]
	Search(ctx context.Context, fragment string) (domain.Recipe, error)
	UpdateTime(ctx context.Context, recipe domain.Recipe, rawTime string) (domain.Recipe, error)
	Delete(ctx context.Context, fragment string) error
	Export(ctx context.Context, path string) (int, error)
}

type RecipeService struct {
	recipeRepository repositories.IRecipeRepository
	log              *slog.Logger
	now              func() time.Time
}

func NewRecipeService(repo repositories.IRecipeRepository, log *slog.Logger) *RecipeService {
	return &RecipeService{recipeRepository: repo, log: log, now: time.Now}
}

// Add validates the draft, stamps its creation time and stores it.
func (s *RecipeService) Add(ctx context.Context, draft domain.Draft) (domain.Recipe, error) {
	if err := draft.Validate(); err != nil {
		return domain.Recipe{}, err
	}
	recipe := draft.ToRecipe(s.now())
	id, err := s.recipeRepository.Insert(ctx, recipe)
	if err != nil {
		return domain.Recipe{}, err
	}
	recipe.ID = id
	s.log.Info("Recipe added", "id", id, "name", recipe.Name)
	return recipe, nil
}

// Recipes lists every stored recipe lazily.
func (s *RecipeService) Recipes(ctx context.Context) iter.Seq2[domain.Recipe, error] {
	return s.recipeRepository.FindAll(ctx)
}

func (s *RecipeService) Search(ctx context.Context, fragment string) (domain.Recipe, error) {
	return s.recipeRepository.FindByNameSubstring(ctx, fragment)
}

// UpdateTime parses rawTime and, only when it is valid, stores it as the
// new cooking time of recipe.
func (s *RecipeService) UpdateTime(ctx context.Context, recipe domain.Recipe, rawTime string) (domain.Recipe, error) {
	minutes, err := domain.ParseCookingTime(rawTime)
	if err != nil {
		return domain.Recipe{}, err
	}
	if err = s.recipeRepository.UpdateTime(ctx, recipe.ID, minutes); err != nil {
		return domain.Recipe{}, err
	}
	recipe.Time = minutes
	s.log.Info("Recipe updated", "id", recipe.ID, "time", minutes)
	return recipe, nil
}

// Delete removes one recipe whose name contains fragment.
func (s *RecipeService) Delete(ctx context.Context, fragment string) error {
	deleted, err := s.recipeRepository.DeleteByNameSubstring(ctx, fragment)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrRecipeNotFound
	}
	s.log.Info("Recipe deleted", "fragment", fragment)
	return nil
}

// Export writes every recipe to the backup file at path and returns how many
// were written.
func (s *RecipeService) Export(ctx context.Context, path string) (int, error) {
	var recipes []domain.Recipe
	for recipe, err := range s.recipeRepository.FindAll(ctx) {
		if err != nil {
			return 0, err
		}
		recipes = append(recipes, recipe)
	}
	if err := sink.WriteBackupFile(path, recipes); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrExport, err)
	}
	s.log.Info("Recipes exported", "path", path, "count", len(recipes))
	return len(recipes), nil
}
