package tool

import "github.com/SoSDylan/xVeinMiner/domain/item"

// Match pairs a resolved category with the template that accepted the item.
// The Template is nil when resolution hit the hand category (no template is
// consulted for an empty item).
type Match struct {
	Category *Category
	Template Template
}

// Registry maps lowercased category ids to categories and resolves held
// items to the category that governs them. Resolution walks categories in
// registration order and each category's templates in insertion order, so
// when two categories could accept the same item, the first-registered one
// wins.
//
// This is a repository interface; the in-memory implementation lives in
// infrastructure/storage/memory.
type Registry interface {
	// Register upserts a category under its lowercased id. A second
	// registration with a colliding lowercased id replaces the first.
	Register(c *Category) error

	// Get retrieves a category by id, case-insensitively. Absence is a
	// normal result, not an error.
	Get(id string) (*Category, bool)

	// Resolve finds the category governing the stack. An empty stack
	// resolves to the hand category immediately, bypassing all templates.
	Resolve(st item.Stack) (*Category, bool)

	// ResolveTemplate is Resolve plus the specific template that matched.
	// An empty stack yields (hand, nil template); no match yields an empty
	// Match and false.
	ResolveTemplate(st item.Stack) (Match, bool)

	// Hand returns the distinguished category representing "no tool held".
	Hand() *Category

	// All returns a snapshot of all registered categories in registration
	// order.
	All() []*Category

	// Count returns the number of registered categories.
	Count() int

	// Clear wipes the registry entirely. The hand category's mapping is
	// removed too and is not restored automatically.
	Clear()
}
