package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/akositz/innstereo/pkg/buildinfo"
)

// Execute runs the innstereo CLI and returns an error if any command
// fails. This is the main entry point for the application.
//
// The function sets up the root command with all subcommands (layer, prop,
// import, completion), configures logging based on the --verbose flag, and
// executes the command tree. The logger is attached to the context and
// accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "InnStereo manages stereonet layer styling",
		Long:         `InnStereo is a CLI tool for managing the layers of a stereonet project: plane, faultplane, linear, and small circle datasets with their full plotting configuration.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayerCmd())
	root.AddCommand(newPropCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
