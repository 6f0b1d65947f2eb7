// Package tool provides tool categories and the matching templates that
// decide which category governs the item a player is holding.
package tool

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SoSDylan/xVeinMiner/domain/item"
)

// Template is a single matching rule over an item stack. The type is a
// closed variant set: MaterialTemplate and StackTemplate are the only
// implementations, so callers may switch exhaustively over them.
//
// Matches is pure: it never mutates the stack or the template, and runs in
// constant time in the number of registered rules.
type Template interface {
	// Matches reports whether the stack satisfies this rule.
	Matches(st item.Stack) bool

	// Equal reports total value equality with another template. Equal
	// templates are interchangeable; a category refuses to hold two of them.
	Equal(other Template) bool

	// String renders the rule for logs and CLI output.
	String() string

	sealed()
}

// MaterialTemplate matches solely on an item's material, ignoring any
// display name or lore.
type MaterialTemplate struct {
	Material item.Material
}

// NewMaterialTemplate creates a rule matching every item of the material.
func NewMaterialTemplate(m item.Material) MaterialTemplate {
	return MaterialTemplate{Material: m}
}

// Matches reports whether the stack's material equals the template's.
func (t MaterialTemplate) Matches(st item.Stack) bool {
	return st.Material == t.Material
}

// Equal reports whether other is a MaterialTemplate for the same material.
func (t MaterialTemplate) Equal(other Template) bool {
	o, ok := other.(MaterialTemplate)
	return ok && o.Material == t.Material
}

// String renders the rule as its material name.
func (t MaterialTemplate) String() string {
	return string(t.Material)
}

func (MaterialTemplate) sealed() {}

// StackTemplate matches on material plus any specified decoration. An empty
// Name and a nil or empty Lore are "unspecified" and do not constrain the
// match; specified fields must equal the item's exactly (case-sensitive).
type StackTemplate struct {
	Material item.Material
	Name     string
	Lore     []string
}

// NewStackTemplate creates a decoration-qualified rule. Pass an empty name
// or nil lore to leave that field unconstrained.
func NewStackTemplate(m item.Material, name string, lore ...string) StackTemplate {
	return StackTemplate{Material: m, Name: name, Lore: lore}
}

// Matches reports whether the stack's material and every specified
// decoration field equal the template's.
func (t StackTemplate) Matches(st item.Stack) bool {
	if st.Material != t.Material {
		return false
	}
	if t.Name != "" && st.Name != t.Name {
		return false
	}
	if len(t.Lore) > 0 && !slices.Equal(st.Lore, t.Lore) {
		return false
	}
	return true
}

// Equal reports field-by-field equality with another StackTemplate. Lore
// compares element-wise; nil and empty lore are both unspecified and equal.
func (t StackTemplate) Equal(other Template) bool {
	o, ok := other.(StackTemplate)
	return ok && o.Material == t.Material && o.Name == t.Name && slices.Equal(o.Lore, t.Lore)
}

// String renders the rule with its specified decoration fields.
func (t StackTemplate) String() string {
	var b strings.Builder
	b.WriteString(string(t.Material))
	if t.Name != "" {
		fmt.Fprintf(&b, " named %q", t.Name)
	}
	if len(t.Lore) > 0 {
		fmt.Fprintf(&b, " with lore %q", t.Lore)
	}
	return b.String()
}

func (StackTemplate) sealed() {}
