package tool

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/SoSDylan/xVeinMiner/domain/algorithm"
	"github.com/SoSDylan/xVeinMiner/domain/block"
	"github.com/SoSDylan/xVeinMiner/domain/item"
)

// validID constrains category ids to one or more ASCII letters or digits.
var validID = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// IsValidID reports whether id satisfies the category id pattern: one or
// more ASCII letters or digits. Configuration validators use this to report
// malformed ids before construction rejects them.
func IsValidID(id string) bool {
	return validID.MatchString(id)
}

// Category is a named grouping of tool templates sharing one traversal
// configuration and one block list. The id is immutable after construction;
// templates and the block list may be mutated for the category's lifetime.
//
// Category identity is the id compared case-sensitively (see Equal). Registry
// lookup keys are lowercased separately, so two categories whose ids differ
// only by case are distinct values that collide as registry keys.
type Category struct {
	id        string
	config    algorithm.Config
	tools     []Template
	blocklist *block.List
}

// CategoryOption configures a category under construction.
type CategoryOption func(*categorySettings)

type categorySettings struct {
	blocklist    *block.List
	blocklistSet bool
	overrides    algorithm.Overrides
	templates    []Template
}

// WithBlockList supplies the category's block list. Passing nil is an
// InvalidArgument-style construction failure; omit the option to get an
// empty list instead.
func WithBlockList(bl *block.List) CategoryOption {
	return func(s *categorySettings) {
		s.blocklist = bl
		s.blocklistSet = true
	}
}

// WithConfig supplies category-level settings that overlay the global
// defaults; a defined override always wins over the global value.
func WithConfig(o algorithm.Overrides) CategoryOption {
	return func(s *categorySettings) {
		s.overrides = o
	}
}

// WithTemplates seeds the category's template list in the given order.
func WithTemplates(templates ...Template) CategoryOption {
	return func(s *categorySettings) {
		s.templates = append(s.templates, templates...)
	}
}

// NewCategory creates a category with the given id, seeding its owned
// configuration by overlaying any WithConfig overrides onto the global
// defaults. The id must match [A-Za-z0-9]+ (PascalCase by convention, e.g.
// "Pickaxe"). Construction failures leave no partial state behind.
func NewCategory(id string, global algorithm.Config, opts ...CategoryOption) (*Category, error) {
	if !validID.MatchString(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	settings := &categorySettings{}
	for _, opt := range opts {
		opt(settings)
	}

	if settings.blocklistSet && settings.blocklist == nil {
		return nil, fmt.Errorf("category %q: %w", id, ErrNilBlockList)
	}
	blocklist := settings.blocklist
	if blocklist == nil {
		blocklist = block.NewList()
	}

	c := &Category{
		id:        id,
		config:    global.Merge(settings.overrides),
		blocklist: blocklist,
	}
	for _, t := range settings.templates {
		if err := c.AddTool(t); err != nil {
			return nil, fmt.Errorf("category %q: %w", id, err)
		}
	}
	return c, nil
}

// ID returns the category's unique id.
func (c *Category) ID() string {
	return c.id
}

// Config returns the category's owned traversal configuration, already
// merged with the global defaults it was constructed against.
func (c *Category) Config() algorithm.Config {
	return c.config
}

// BlockList returns the block list owned by this category.
func (c *Category) BlockList() *block.List {
	return c.blocklist
}

// AddTool appends a template, preserving insertion order. Adding a template
// equal to one already present is a no-op.
func (c *Category) AddTool(t Template) error {
	if t == nil {
		return ErrNilTemplate
	}
	for _, existing := range c.tools {
		if existing.Equal(t) {
			return nil
		}
	}
	c.tools = append(c.tools, t)
	return nil
}

// RemoveTool removes the template equal to t. Returns true if one was
// removed.
func (c *Category) RemoveTool(t Template) bool {
	if t == nil {
		return false
	}
	return c.removeIf(func(existing Template) bool {
		return existing.Equal(t)
	})
}

// RemoveToolMatching removes every template, of either kind, whose Matches
// reports true for the stack. This is the broad removal: it can delete
// decoration-qualified rules that happen to accept the item.
func (c *Category) RemoveToolMatching(st item.Stack) bool {
	return c.removeIf(func(t Template) bool {
		return t.Matches(st)
	})
}

// RemoveToolMaterial removes only plain MaterialTemplate entries for the
// material. StackTemplate entries survive even when they would match it, so
// a named or lore-qualified tool definition cannot be destroyed by a coarse
// material-based removal.
func (c *Category) RemoveToolMaterial(m item.Material) bool {
	return c.removeIf(func(t Template) bool {
		mt, ok := t.(MaterialTemplate)
		return ok && mt.Material == m
	})
}

func (c *Category) removeIf(pred func(Template) bool) bool {
	before := len(c.tools)
	c.tools = slices.DeleteFunc(c.tools, pred)
	return len(c.tools) != before
}

// ContainsToolItem reports whether some decoration-qualified StackTemplate
// matches the stack. Material-only templates are excluded from this check.
func (c *Category) ContainsToolItem(st item.Stack) bool {
	for _, t := range c.tools {
		if _, ok := t.(StackTemplate); ok && t.Matches(st) {
			return true
		}
	}
	return false
}

// ContainsToolMaterial reports whether some plain MaterialTemplate matches a
// synthetic, undecorated stack of the material. Decoration-qualified
// templates are excluded from this check.
func (c *Category) ContainsToolMaterial(m item.Material) bool {
	probe := item.NewStack(m)
	for _, t := range c.tools {
		if _, ok := t.(MaterialTemplate); ok && t.Matches(probe) {
			return true
		}
	}
	return false
}

// MatchingTemplate returns the first template, in insertion order, that
// matches the stack. It is a read-only scan so resolution does not pay for
// the defensive copy Tools makes.
func (c *Category) MatchingTemplate(st item.Stack) (Template, bool) {
	for _, t := range c.tools {
		if t.Matches(st) {
			return t, true
		}
	}
	return nil, false
}

// Tools returns an independent copy of the template list; mutating the
// result never affects the category.
func (c *Category) Tools() []Template {
	return slices.Clone(c.tools)
}

// ClearTools removes every template from the category.
func (c *Category) ClearTools() {
	c.tools = nil
}

// Equal reports whether the other category has the identical id, compared
// case-sensitively. This is deliberately narrower than registry lookup,
// which lowercases ids.
func (c *Category) Equal(other *Category) bool {
	return c == other || (other != nil && c.id == other.id)
}

// String returns the category id.
func (c *Category) String() string {
	return c.id
}
