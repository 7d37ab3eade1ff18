package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akositz/innstereo/pkg/project"
)

// newImportCmd creates the command that builds a project file from a TOML
// layer manifest.
func newImportCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "import <manifest.toml>",
		Short: "Build a project from a TOML layer manifest",
		Long: `Build a project from a TOML layer manifest.

The manifest declares one [[layer]] table per layer. Only "kind" is
required; omitted styling keys keep the kind's defaults. Data rows go in
nested [[layer.rows]] tables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			if !force {
				if _, err := loadProject(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			p, err := project.ImportManifest(args[0])
			if err != nil {
				return err
			}
			if err := project.Save(p, path); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Imported %d layers", p.Len()))
			printSuccess("Wrote %s", path)
			for i, e := range p.Entries() {
				printDetail("%d. %s (%s, %d rows)", i+1, e.Layer.Label(), e.Layer.Kind(), e.Store.RowCount())
			}
			return nil
		},
	}

	addProjectFlag(cmd, &path)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing project file")

	return cmd
}
