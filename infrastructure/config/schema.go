// Package config loads the veinminer configuration: logging settings, the
// global traversal defaults and the tool category definitions that are
// registered into the category registry.
package config

import (
	"github.com/SoSDylan/xVeinMiner/domain/algorithm"
)

// FileConfig is the root of the configuration file.
type FileConfig struct {
	// Logging contains logger settings.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	// Defaults are global traversal settings; category-level settings
	// overlay them.
	Defaults algorithm.Overrides `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	// Blocklist is the global block list applied to every category in
	// addition to its own.
	Blocklist []string `json:"blocklist,omitempty" yaml:"blocklist,omitempty"`
	// Categories defines the tool categories in registration order.
	Categories []CategoryConfig `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is the output format (json or console).
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// CategoryConfig defines one tool category.
type CategoryConfig struct {
	// Name is the category id; alphanumeric, PascalCase by convention.
	Name string `json:"name" yaml:"name"`
	// Config overlays the global defaults for this category.
	Config algorithm.Overrides `json:"config,omitempty" yaml:"config,omitempty"`
	// Blocklist lists the block materials this category may vein mine.
	Blocklist []string `json:"blocklist,omitempty" yaml:"blocklist,omitempty"`
	// Tools lists the matching rules for this category in order.
	Tools []ToolConfig `json:"tools,omitempty" yaml:"tools,omitempty"`
}

// ToolConfig defines one matching rule. A rule with only a material becomes
// a material template; a rule that also specifies a name or lore becomes a
// decoration-qualified stack template.
type ToolConfig struct {
	// Material is the tool's material, e.g. "DIAMOND_PICKAXE".
	Material string `json:"material" yaml:"material"`
	// Name constrains the tool's display name when set.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Lore constrains the tool's lore lines when set.
	Lore []string `json:"lore,omitempty" yaml:"lore,omitempty"`
}

// GlobalConfig resolves the file's defaults against the built-in ones.
func (c *FileConfig) GlobalConfig() algorithm.Config {
	return algorithm.DefaultConfig().Merge(c.Defaults)
}
