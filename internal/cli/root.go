package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/permkit/permkit/pkg/buildinfo"
)

// Execute runs the permkit CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (order, orbit,
// member, elements, graph, cache, serve), configures logging based on the
// --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "permkit",
		Short:        "permkit computes structural data of permutation groups",
		Long:         `permkit derives orbits, bases, stabilizer chains, orders, membership and element listings for permutation groups given by generators, using the Schreier-Sims algorithm.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			registerHooks(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/permkit/permkit.toml)")

	root.AddCommand(newOrderCmd(&configPath))
	root.AddCommand(newOrbitCmd())
	root.AddCommand(newMemberCmd())
	root.AddCommand(newElementsCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newCacheCmd(&configPath))
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
