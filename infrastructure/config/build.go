package config

import (
	"fmt"

	"github.com/SoSDylan/xVeinMiner/domain/block"
	"github.com/SoSDylan/xVeinMiner/domain/item"
	"github.com/SoSDylan/xVeinMiner/domain/tool"
	"github.com/SoSDylan/xVeinMiner/infrastructure/logging"
	"github.com/SoSDylan/xVeinMiner/infrastructure/storage/memory"
)

// BuildRegistry creates a category registry from a loaded configuration and
// registers every configured category in file order, so the first category
// in the file wins ties during item resolution.
func BuildRegistry(cfg *FileConfig) (*memory.CategoryRegistry, error) {
	registry := memory.NewCategoryRegistry(cfg.GlobalConfig())
	if err := RegisterCategories(registry, cfg); err != nil {
		return nil, err
	}
	return registry, nil
}

// BuildCategories constructs every configured category in file order without
// touching any registry. Callers that must not lose existing registrations
// on a bad configuration build the complete set first and register it only
// once construction has fully succeeded.
func BuildCategories(cfg *FileConfig) ([]*tool.Category, error) {
	global := cfg.GlobalConfig()
	globalBlocks := materialsOf(cfg.Blocklist)

	categories := make([]*tool.Category, 0, len(cfg.Categories))
	for _, cc := range cfg.Categories {
		blocklist := block.NewList(globalBlocks...)
		blocklist.AddAll(block.NewList(materialsOf(cc.Blocklist)...))

		templates := make([]tool.Template, 0, len(cc.Tools))
		for _, tc := range cc.Tools {
			templates = append(templates, tc.Template())
		}

		category, err := tool.NewCategory(cc.Name, global,
			tool.WithConfig(cc.Config),
			tool.WithBlockList(blocklist),
			tool.WithTemplates(templates...),
		)
		if err != nil {
			return nil, fmt.Errorf("building category %q: %w", cc.Name, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// RegisterCategories builds the configured categories and registers them
// into the given registry, preserving file order. The whole set is
// constructed before the first registration, so a construction failure
// leaves the registry untouched.
func RegisterCategories(registry tool.Registry, cfg *FileConfig) error {
	categories, err := BuildCategories(cfg)
	if err != nil {
		return err
	}
	return registerAll(registry, categories)
}

// registerAll registers pre-built categories in order.
func registerAll(registry tool.Registry, categories []*tool.Category) error {
	for _, category := range categories {
		if err := registry.Register(category); err != nil {
			return fmt.Errorf("registering category %q: %w", category.ID(), err)
		}

		logging.Debug().
			Add(logging.CategoryID(category.ID())).
			Add(logging.TemplateCount(len(category.Tools()))).
			Msg("registered tool category")
	}

	logging.Info().
		Add(logging.CategoryCount(registry.Count())).
		Msg("tool categories registered")
	return nil
}

// Template converts a tool rule into its template form: a plain material
// template when no decoration is specified, a stack template otherwise.
func (tc ToolConfig) Template() tool.Template {
	material := item.MaterialOf(tc.Material)
	if tc.Name == "" && len(tc.Lore) == 0 {
		return tool.NewMaterialTemplate(material)
	}
	return tool.NewStackTemplate(material, tc.Name, tc.Lore...)
}

func materialsOf(raw []string) []item.Material {
	materials := make([]item.Material, 0, len(raw))
	for _, s := range raw {
		materials = append(materials, item.MaterialOf(s))
	}
	return materials
}
