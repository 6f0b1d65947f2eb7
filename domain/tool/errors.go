package tool

import "errors"

// Domain errors for tool categories. All are precondition violations raised
// before any state changes; lookups never error, absence is a normal result.
var (
	// ErrInvalidID indicates a category id is empty or not alphanumeric.
	ErrInvalidID = errors.New("category id must be alphanumeric with no spaces")

	// ErrNilBlockList indicates a category was given a nil block list.
	ErrNilBlockList = errors.New("category block list cannot be nil")

	// ErrNilTemplate indicates a nil template was passed where one is required.
	ErrNilTemplate = errors.New("template cannot be nil")

	// ErrNilCategory indicates a nil category was passed to the registry.
	ErrNilCategory = errors.New("category cannot be nil")
)
