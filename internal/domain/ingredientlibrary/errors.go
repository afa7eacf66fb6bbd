package ingredientlibrary

import "errors"

var (
	ErrInvalidOwnerID  = errors.New("invalid owner ID")
	ErrInvalidName     = errors.New("ingredient name is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownUnit     = errors.New("unit could not be resolved to grams")
	ErrNotFound        = errors.New("library entry not found")

	// ErrConflict is returned by Repository.Save when the row was modified by
	// another writer between the read that produced entry.Version and this
	// write. Service.Observe retries the whole read-merge-write cycle on it,
	// bounded, rather than surfacing it to the caller.
	ErrConflict = errors.New("library entry modified concurrently")
)
