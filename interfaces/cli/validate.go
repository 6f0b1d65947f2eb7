package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SoSDylan/xVeinMiner/infrastructure/config"
)

// validateOptions holds options for the validate command.
type validateOptions struct {
	configPath string
	strict     bool
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Long: `Validate a veinminer configuration file for correctness.

This command checks:
  - File format (YAML or JSON)
  - Category ids (alphanumeric, unique under case-insensitive keys)
  - Tool entries (material required)
  - Environment variable references (in strict mode)

Examples:
  # Validate a configuration file
  veinminer validate -c veinminer.yml

  # Strict validation (fail on missing env vars)
  veinminer validate -c veinminer.yml --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateConfig(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on missing environment variables")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// validateConfig validates the configuration file, including a full build of
// the registry so category construction failures surface too.
func (a *App) validateConfig(opts *validateOptions) error {
	loader := config.NewLoaderWithOptions(config.WithStrictEnv(opts.strict))
	cfg, err := loader.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	registry, err := config.BuildRegistry(cfg)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(a.stdout, "Configuration valid: %d categories registered\n", registry.Count())
	return nil
}
