package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoadd/pkg/buildinfo"
	"github.com/matzehuels/cargoadd/pkg/errors"
)

// Execute runs the cargo-add CLI and returns an error if any command fails.
//
// The root command wires up the add subcommand, configures logging based on
// the --verbose flag, and executes the command tree. The logger is attached
// to the context and accessible to all commands via loggerFromContext.
//
// Execute never prints errors itself beyond usage text; the caller maps the
// returned error to a message and an exit code.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:           "cargo-add",
		Short:         "cargo-add inserts dependencies into Cargo.toml manifests",
		Long:          `cargo-add is a non-interactive tool for adding dependencies to a project's Cargo.toml. It finds the manifest by walking up from the current directory, resolves missing versions against crates.io, and rewrites the file with the [package] section first.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		// Anything that is not the add subcommand is an invalid argument.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errors.New(errors.ErrCodeInvalidInput, "invalid argument: expected the add subcommand")
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newAddCmd())

	return root.ExecuteContext(ctx)
}
