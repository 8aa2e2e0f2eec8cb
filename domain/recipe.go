// Package domain contains core concepts of the recipe book.
// This file defines the Recipe entity and the rules applied to user input.
// No storage, network, or console logic should be added here.
package domain

import (
	"fmt"
	"recipe-manager/errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimeLayout is the fixed format used for created_at in backups.
const TimeLayout = time.DateTime

// IngredientSeparator splits the ingredient line typed by the user.
const IngredientSeparator = ", "

var validate = validator.New()

// Recipe is a stored recipe. ID is assigned by the storage layer.
type Recipe struct {
	ID           string
	Name         string
	Category     string
	Time         int
	Ingredients  []string
	Instructions string
	CreatedAt    time.Time
}

// Draft is a recipe typed by the user and not yet persisted.
type Draft struct {
	Name         string `validate:"required"`
	Category     string
	Time         int `validate:"gt=0"`
	Ingredients  []string
	Instructions string
}

// ToRecipe stamps the draft with its creation time.
func (d Draft) ToRecipe(at time.Time) Recipe {
	return Recipe{
		Name:         d.Name,
		Category:     d.Category,
		Time:         d.Time,
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		CreatedAt:    at,
	}
}

// Validate checks the draft before it reaches storage.
// A non-positive time reports ErrInvalidTime, anything else ErrInvalidRecipe.
func (d Draft) Validate() error {
	if d.Time <= 0 {
		return errors.ErrInvalidTime
	}
	d.Name = strings.TrimSpace(d.Name)
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRecipe, err)
	}
	return nil
}

// ParseCookingTime accepts a line made only of decimal digits whose value is
// strictly positive.
func ParseCookingTime(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.ErrInvalidTime
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", errors.ErrInvalidTime, raw)
		}
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidTime, raw)
	}
	return minutes, nil
}

// SplitIngredients cuts the comma separated ingredient line.
func SplitIngredients(line string) []string {
	return strings.Split(line, IngredientSeparator)
}

// JoinIngredients renders ingredients the way they were typed.
func JoinIngredients(ingredients []string) string {
	return strings.Join(ingredients, IngredientSeparator)
}
