package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// categoriesOptions holds options for the categories command.
type categoriesOptions struct {
	configPath string
	verbose    bool
}

// newCategoriesCmd creates the categories command.
func (a *App) newCategoriesCmd() *cobra.Command {
	opts := &categoriesOptions{}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the tool categories a configuration defines",
		Long: `List the tool categories a configuration file defines, in the order the
registry resolves them. The distinguished Hand category is always first.

Examples:
  veinminer categories -c veinminer.yml
  veinminer categories -c veinminer.yml --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listCategories(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print each category's templates and block list")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// listCategories prints the registry contents built from the configuration.
func (a *App) listCategories(opts *categoriesOptions) error {
	_, registry, err := loadRegistry(opts.configPath)
	if err != nil {
		return err
	}

	for _, category := range registry.All() {
		cfg := category.Config()
		fmt.Fprintf(a.stdout, "%s: %d templates, %d blocks, max vein size %d\n",
			category.ID(), len(category.Tools()), category.BlockList().Size(), cfg.MaxVeinSize)

		if !opts.verbose {
			continue
		}
		for _, template := range category.Tools() {
			fmt.Fprintf(a.stdout, "  tool: %s\n", template)
		}
		for _, material := range category.BlockList().Materials() {
			fmt.Fprintf(a.stdout, "  block: %s\n", material)
		}
	}
	return nil
}
