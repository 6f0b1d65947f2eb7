// Package memory provides in-memory storage implementations.
package memory

import (
	"strings"
	"sync"

	"github.com/SoSDylan/xVeinMiner/domain/algorithm"
	"github.com/SoSDylan/xVeinMiner/domain/item"
	"github.com/SoSDylan/xVeinMiner/domain/tool"
)

// HandID is the id of the distinguished category representing the bare hand.
const HandID = "Hand"

// CategoryRegistry is the in-memory implementation of tool.Registry. Keys
// are lowercased ids kept in a parallel order slice, so item resolution
// walks categories in registration order and "first-registered wins" holds
// by construction rather than by accident of map iteration.
type CategoryRegistry struct {
	categories map[string]*tool.Category
	order      []string
	hand       *tool.Category
	mu         sync.RWMutex
}

var _ tool.Registry = (*CategoryRegistry)(nil)

// NewCategoryRegistry creates a registry seeded from the global traversal
// configuration. The hand category is created and registered once here; a
// later Clear removes its mapping without restoring it, but the registry
// keeps the value so empty-item resolution always has a hand to return.
func NewCategoryRegistry(global algorithm.Config) *CategoryRegistry {
	// HandID satisfies the id pattern, so this cannot fail.
	hand, err := tool.NewCategory(HandID, global)
	if err != nil {
		panic(err)
	}

	r := &CategoryRegistry{
		categories: make(map[string]*tool.Category),
		hand:       hand,
	}
	_ = r.Register(hand)
	return r
}

// Hand returns the distinguished bare-hand category.
func (r *CategoryRegistry) Hand() *tool.Category {
	return r.hand
}

// Register upserts a category under its lowercased id. Registering a second
// category with a colliding lowercased id replaces the first but retains its
// original slot in the registration order.
func (r *CategoryRegistry) Register(c *tool.Category) error {
	if c == nil {
		return tool.ErrNilCategory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(c.ID())
	if _, exists := r.categories[key]; !exists {
		r.order = append(r.order, key)
	}
	r.categories[key] = c
	return nil
}

// Get retrieves a category by id, case-insensitively.
func (r *CategoryRegistry) Get(id string) (*tool.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[strings.ToLower(id)]
	return c, ok
}

// Resolve finds the category governing the stack. An empty stack resolves to
// the hand category immediately; otherwise the first registered category
// holding a matching template wins.
func (r *CategoryRegistry) Resolve(st item.Stack) (*tool.Category, bool) {
	m, ok := r.ResolveTemplate(st)
	return m.Category, ok
}

// ResolveTemplate is Resolve plus the template that accepted the item. The
// walk holds the read lock so it observes a consistent registration order.
func (r *CategoryRegistry) ResolveTemplate(st item.Stack) (tool.Match, bool) {
	if st.IsEmpty() {
		return tool.Match{Category: r.hand}, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range r.order {
		c := r.categories[key]
		if t, ok := c.MatchingTemplate(st); ok {
			return tool.Match{Category: c, Template: t}, true
		}
	}
	return tool.Match{}, false
}

// All returns a snapshot of all registered categories in registration order.
func (r *CategoryRegistry) All() []*tool.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*tool.Category, 0, len(r.order))
	for _, key := range r.order {
		all = append(all, r.categories[key])
	}
	return all
}

// Count returns the number of registered categories.
func (r *CategoryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories)
}

// Clear empties the registry, hand mapping included. Callers reloading a
// configuration must re-register the hand category explicitly.
func (r *CategoryRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = make(map[string]*tool.Category)
	r.order = nil
}
