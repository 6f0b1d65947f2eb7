// Package cli provides the veinminer command-line surface: configuration
// validation and registry inspection tooling. The in-game command surface is
// the host's concern, not this package's.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	xveinminer "github.com/SoSDylan/xVeinMiner"
	"github.com/SoSDylan/xVeinMiner/infrastructure/config"
	"github.com/SoSDylan/xVeinMiner/infrastructure/storage/memory"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "veinminer",
		Short: "Tool category tooling for xVeinMiner",
		Long: `veinminer inspects and validates xVeinMiner tool category configurations.

Tool categories group matching rules (templates) that decide which category
governs the item a player is holding; the resolved category supplies the
traversal configuration and block list used when vein mining.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newValidateCmd(),
		app.newCategoriesCmd(),
		app.newResolveCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xVeinMiner version %s\n", xveinminer.Version)
		},
	}
}

// loadRegistry loads a configuration file and builds a populated registry.
func loadRegistry(path string) (*config.FileConfig, *memory.CategoryRegistry, error) {
	cfg, err := config.NewLoader().LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	registry, err := config.BuildRegistry(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, registry, nil
}
