package ui

import (
	"context"
	"recipe-manager/domain"
	"recipe-manager/errors"
	"strings"
)

const (
	msgNotFound    = "❌ Рецепт не знайдено!"
	msgInvalidTime = "❌ Введіть коректний час приготування!"
	msgInvalidName = "❌ Введіть назву рецепта!"
)

// Handlers only return an error when the input stream fails; every other
// outcome is printed.

func (c *Console) addRecipe(ctx context.Context) error {
	name, err := c.prompt("Введіть назву рецепта: ")
	if err != nil {
		return err
	}
	category, err := c.prompt("Категорія страви (суп, десерт тощо): ")
	if err != nil {
		return err
	}
	rawTime, err := c.prompt("Час приготування (хвилини): ")
	if err != nil {
		return err
	}
	minutes, err := domain.ParseCookingTime(rawTime)
	if err != nil {
		c.failure(msgInvalidTime, nil)
		return nil
	}
	ingredients, err := c.prompt("Список інгредієнтів (через кому): ")
	if err != nil {
		return err
	}
	instructions, err := c.prompt("Опишіть процес приготування: ")
	if err != nil {
		return err
	}

	_, err = c.service.Add(ctx, domain.Draft{
		Name:         name,
		Category:     category,
		Time:         minutes,
		Ingredients:  domain.SplitIngredients(ingredients),
		Instructions: instructions,
	})
	switch {
	case err == nil:
		c.success("✅ Рецепт успішно додано!")
	case errors.Is(err, errors.ErrInvalidTime):
		c.failure(msgInvalidTime, nil)
	case errors.Is(err, errors.ErrInvalidRecipe):
		c.failure(msgInvalidName, nil)
	default:
		c.log.Error("Add recipe failed", "error", err)
		c.failure("❌ Помилка додавання рецепта:", err)
	}
	return nil
}

func (c *Console) viewRecipes(ctx context.Context) error {
	for recipe, err := range c.service.Recipes(ctx) {
		if err != nil {
			c.log.Error("View recipes failed", "error", err)
			c.failure("❌ Помилка відображення рецептів:", err)
			return nil
		}
		c.printRecipe(recipe)
		c.println(strings.Repeat("-", 30))
	}
	return nil
}

func (c *Console) searchRecipe(ctx context.Context) error {
	fragment, err := c.prompt("Введіть назву рецепта для пошуку: ")
	if err != nil {
		return err
	}
	recipe, err := c.service.Search(ctx, fragment)
	switch {
	case err == nil:
		c.printRecipe(recipe)
	case errors.Is(err, errors.ErrRecipeNotFound):
		c.warning(msgNotFound)
	default:
		c.log.Error("Search recipe failed", "error", err)
		c.failure("❌ Помилка пошуку рецепта:", err)
	}
	return nil
}

func (c *Console) updateRecipe(ctx context.Context) error {
	fragment, err := c.prompt("Введіть назву рецепта, який потрібно оновити: ")
	if err != nil {
		return err
	}
	recipe, err := c.service.Search(ctx, fragment)
	if err != nil {
		c.reportUpdateError(err)
		return nil
	}
	c.println("Знайдено рецепт: " + recipe.Name)
	rawTime, err := c.prompt("Новий час приготування (хвилини): ")
	if err != nil {
		return err
	}
	if _, err = c.service.UpdateTime(ctx, recipe, rawTime); err != nil {
		c.reportUpdateError(err)
		return nil
	}
	c.success("✅ Рецепт оновлено!")
	return nil
}

func (c *Console) reportUpdateError(err error) {
	switch {
	case errors.Is(err, errors.ErrRecipeNotFound):
		c.warning(msgNotFound)
	case errors.Is(err, errors.ErrInvalidTime):
		c.failure(msgInvalidTime, nil)
	default:
		c.log.Error("Update recipe failed", "error", err)
		c.failure("❌ Помилка оновлення рецепта:", err)
	}
}

func (c *Console) deleteRecipe(ctx context.Context) error {
	fragment, err := c.prompt("Введіть назву рецепта, який потрібно видалити: ")
	if err != nil {
		return err
	}
	err = c.service.Delete(ctx, fragment)
	switch {
	case err == nil:
		c.success("✅ Рецепт видалено!")
	case errors.Is(err, errors.ErrRecipeNotFound):
		c.warning(msgNotFound)
	default:
		c.log.Error("Delete recipe failed", "error", err)
		c.failure("❌ Помилка видалення рецепта:", err)
	}
	return nil
}

func (c *Console) exportRecipes(ctx context.Context) error {
	if _, err := c.service.Export(ctx, c.exportPath); err != nil {
		c.log.Error("Export recipes failed", "error", err)
		c.failure("❌ Помилка експорту рецептів:", err)
		return nil
	}
	c.success("✅ Рецепти успішно експортовано у " + c.exportPath + "!")
	return nil
}
