package recipepattern

import "errors"

var (
	ErrNotFound        = errors.New("recipe pattern not found")
	ErrEmptyIngredients = errors.New("cannot derive a primary ingredient from an empty ingredient list")
)
