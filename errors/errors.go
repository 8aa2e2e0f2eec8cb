package errors

import (
	"errors"
	"fmt"
)

var (
	ErrConnection     = fmt.Errorf("database connection failed")
	ErrInvalidTime    = fmt.Errorf("cooking time must be a positive integer")
	ErrInvalidRecipe  = fmt.Errorf("invalid recipe")
	ErrRecipeNotFound = fmt.Errorf("recipe not found")
	ErrStorage        = fmt.Errorf("storage operation failed")
	ErrExport         = fmt.Errorf("export failed")
)

// Is lets callers importing this package match sentinels without also
// importing the standard errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsValidation reports errors that abort an operation because of bad input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidTime) || errors.Is(err, ErrInvalidRecipe)
}
