// Package menu owns the menu domain rules: category and product
// lifecycles and the referential link between them. It talks to the
// store through small interfaces it declares itself, which keeps the
// rules testable without a running database.
package menu

import "errors"

// The error taxonomy surfaced to the HTTP layer. Handlers map these to
// status codes; everything else is treated as a server fault.
var (
	// ErrNotFound: the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCategoryNotFound: a product referenced a category id that does
	// not resolve.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryHasProducts: the category still has products referencing
	// it and cannot be deleted.
	ErrCategoryHasProducts = errors.New("cannot delete category with products")

	// ErrNoFields: an update request supplied no fields at all.
	ErrNoFields = errors.New("no fields to update")
)
