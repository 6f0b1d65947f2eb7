// Package algorithm provides the tunable parameters that shape a vein
// traversal. Each tool category owns its own Config, seeded from the global
// defaults with category-level overrides layered on top.
package algorithm

import (
	"slices"
	"strings"
)

// Config holds the resolved traversal parameters for one scope (global or a
// single category). It is a plain value; copying it yields an independent
// configuration except for DisabledWorlds, which Merge always clones.
type Config struct {
	// RepairFriendly stops traversal before the tool would break.
	RepairFriendly bool `json:"repair_friendly" yaml:"repair_friendly"`
	// IncludeEdges also visits blocks touching the vein diagonally.
	IncludeEdges bool `json:"include_edges" yaml:"include_edges"`
	// MaxVeinSize caps the number of blocks a single traversal may consume.
	MaxVeinSize int `json:"max_vein_size" yaml:"max_vein_size"`
	// Cost is charged per use when an economy hook is attached.
	Cost float64 `json:"cost" yaml:"cost"`
	// DisabledWorlds lists worlds where vein mining is off entirely.
	DisabledWorlds []string `json:"disabled_worlds" yaml:"disabled_worlds"`
}

// DefaultConfig returns the built-in global defaults.
func DefaultConfig() Config {
	return Config{
		RepairFriendly: false,
		IncludeEdges:   true,
		MaxVeinSize:    64,
		Cost:           0,
	}
}

// Overrides is the partial form of Config used for category-level settings.
// Nil fields inherit from the base configuration; defined fields take
// precedence.
type Overrides struct {
	RepairFriendly *bool    `json:"repair_friendly,omitempty" yaml:"repair_friendly,omitempty"`
	IncludeEdges   *bool    `json:"include_edges,omitempty" yaml:"include_edges,omitempty"`
	MaxVeinSize    *int     `json:"max_vein_size,omitempty" yaml:"max_vein_size,omitempty"`
	Cost           *float64 `json:"cost,omitempty" yaml:"cost,omitempty"`
	DisabledWorlds []string `json:"disabled_worlds,omitempty" yaml:"disabled_worlds,omitempty"`
}

// Merge overlays the overrides onto c and returns the result as a new,
// independently owned Config. c itself is never modified.
func (c Config) Merge(o Overrides) Config {
	merged := c
	if o.RepairFriendly != nil {
		merged.RepairFriendly = *o.RepairFriendly
	}
	if o.IncludeEdges != nil {
		merged.IncludeEdges = *o.IncludeEdges
	}
	if o.MaxVeinSize != nil {
		merged.MaxVeinSize = *o.MaxVeinSize
	}
	if o.Cost != nil {
		merged.Cost = *o.Cost
	}
	if o.DisabledWorlds != nil {
		merged.DisabledWorlds = slices.Clone(o.DisabledWorlds)
	} else {
		merged.DisabledWorlds = slices.Clone(c.DisabledWorlds)
	}
	return merged
}

// AllowsWorld reports whether vein mining is enabled in the named world.
// World names compare case-insensitively.
func (c Config) AllowsWorld(name string) bool {
	for _, w := range c.DisabledWorlds {
		if strings.EqualFold(w, name) {
			return false
		}
	}
	return true
}
