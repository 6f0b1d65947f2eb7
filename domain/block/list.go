// Package block provides the block list owned by each tool category.
package block

import (
	"slices"

	"github.com/SoSDylan/xVeinMiner/domain/item"
)

// List is an ordered, duplicate-free collection of block materials that a
// category's traversal is allowed to visit. The zero List is not usable;
// create one with NewList.
type List struct {
	materials []item.Material
}

// NewList creates a block list containing the given materials, dropping
// duplicates while preserving first-seen order.
func NewList(materials ...item.Material) *List {
	l := &List{}
	for _, m := range materials {
		l.Add(m)
	}
	return l
}

// Add appends a material to the list. Returns false if it was already
// present.
func (l *List) Add(m item.Material) bool {
	if l.Contains(m) {
		return false
	}
	l.materials = append(l.materials, m)
	return true
}

// AddAll appends every material from the other list, skipping duplicates.
func (l *List) AddAll(other *List) {
	if other == nil {
		return
	}
	for _, m := range other.materials {
		l.Add(m)
	}
}

// Remove deletes a material from the list. Returns true if it was present.
func (l *List) Remove(m item.Material) bool {
	before := len(l.materials)
	l.materials = slices.DeleteFunc(l.materials, func(existing item.Material) bool {
		return existing == m
	})
	return len(l.materials) != before
}

// Contains reports whether the material is in the list.
func (l *List) Contains(m item.Material) bool {
	return slices.Contains(l.materials, m)
}

// Materials returns an independent copy of the list's contents in order.
func (l *List) Materials() []item.Material {
	return slices.Clone(l.materials)
}

// Size returns the number of materials in the list.
func (l *List) Size() int {
	return len(l.materials)
}

// Clear removes every material from the list.
func (l *List) Clear() {
	l.materials = nil
}

// Clone returns an independent copy of the list.
func (l *List) Clone() *List {
	return &List{materials: slices.Clone(l.materials)}
}
