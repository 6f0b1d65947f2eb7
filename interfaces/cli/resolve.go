package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SoSDylan/xVeinMiner/domain/item"
)

// resolveOptions holds options for the resolve command.
type resolveOptions struct {
	configPath string
	material   string
	name       string
	lore       []string
	amount     int
}

// newResolveCmd creates the resolve command.
func (a *App) newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an item to its governing tool category",
		Long: `Resolve a described item against a configuration's categories, printing
the category and the template that accepted it. An empty item (no material,
or amount 0) resolves to the Hand category.

Examples:
  veinminer resolve -c veinminer.yml --material DIAMOND_PICKAXE
  veinminer resolve -c veinminer.yml --material DIAMOND_PICKAXE --name Excalibur`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolveItem(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.material, "material", "m", "", "Item material, e.g. DIAMOND_PICKAXE")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Item display name")
	cmd.Flags().StringArrayVar(&opts.lore, "lore", nil, "Item lore line (repeatable)")
	cmd.Flags().IntVar(&opts.amount, "amount", 1, "Item amount")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// resolveItem resolves the described item and prints the outcome.
func (a *App) resolveItem(opts *resolveOptions) error {
	_, registry, err := loadRegistry(opts.configPath)
	if err != nil {
		return err
	}

	stack := item.Stack{
		Material: item.MaterialOf(opts.material),
		Amount:   opts.amount,
		Name:     opts.name,
		Lore:     opts.lore,
	}

	match, ok := registry.ResolveTemplate(stack)
	if !ok {
		fmt.Fprintln(a.stdout, "no category matches this item")
		return nil
	}

	if match.Template == nil {
		fmt.Fprintf(a.stdout, "category: %s (empty item, no template consulted)\n", match.Category.ID())
		return nil
	}
	fmt.Fprintf(a.stdout, "category: %s\ntemplate: %s\n", match.Category.ID(), match.Template)
	return nil
}
