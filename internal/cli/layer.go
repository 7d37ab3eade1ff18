package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
	"github.com/akositz/innstereo/pkg/project"
)

// newLayerCmd creates the layer command group for managing the layers of a
// project file.
func newLayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layer",
		Short: "Manage the layers of a project",
	}

	cmd.AddCommand(newLayerAddCmd())
	cmd.AddCommand(newLayerListCmd())
	cmd.AddCommand(newLayerRemoveCmd())
	cmd.AddCommand(newLayerShowCmd())

	return cmd
}

// addProjectFlag registers the shared --project flag.
func addProjectFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "project", "p", defaultProjectFile, "project file to operate on")
}

// loadProject reads the project file at path.
func loadProject(path string) (*project.Project, error) {
	return project.Load(path)
}

// loadProjectOrNew reads the project file at path, or starts an empty
// project if the file does not exist yet.
func loadProjectOrNew(path string) (*project.Project, error) {
	p, err := project.Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return project.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// newLayerAddCmd creates the command that appends a new layer of a given
// kind to the project.
func newLayerAddCmd() *cobra.Command {
	var (
		path  string
		label string
	)

	cmd := &cobra.Command{
		Use:   "add <plane|faultplane|line|smallcircle>",
		Short: "Add a layer of the given kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			kind, err := layer.ParseKind(args[0])
			if err != nil {
				return err
			}

			p, err := loadProjectOrNew(path)
			if err != nil {
				return err
			}

			e, err := p.AddLayer(kind)
			if err != nil {
				return err
			}
			if label != "" {
				if err := errors.ValidateLabel(label); err != nil {
					return err
				}
				e.Layer.SetLabel(label)
			}

			if err := project.Save(p, path); err != nil {
				return err
			}

			logger.Debugf("Added %s layer %s", kind, e.ID)
			printSuccess("Added %s (%s) to %s", e.Layer.Label(), kind, path)
			printDetail("id: %s", e.ID)
			return nil
		},
	}

	addProjectFlag(cmd, &path)
	cmd.Flags().StringVarP(&label, "label", "l", "", "display label (defaults to the kind's label)")

	return cmd
}

// newLayerListCmd creates the command that lists the project's layers with
// their preview colors.
func newLayerListCmd() *cobra.Command {
	var (
		path        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the layers of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(path)
			if err != nil {
				return err
			}

			if interactive {
				final, err := tea.NewProgram(newLayerListModel(p)).Run()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "layer browser")
				}
				if m, ok := final.(LayerListModel); ok && m.Selected != nil {
					printLayerDetails(m.Selected)
				}
				return nil
			}

			if p.Len() == 0 {
				printInfo("Project %s has no layers", path)
				return nil
			}

			for i, e := range p.Entries() {
				c, err := e.Layer.PreviewColor()
				swatch := renderSwatch(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), err == nil)
				if err != nil {
					printWarning("layer %d has an unparseable color: %s", i+1, errors.UserMessage(err))
				}
				fmt.Printf("%2d  %s  %-24s %-12s %s\n",
					i+1,
					swatch,
					e.Layer.Label(),
					StyleDim.Render(e.Layer.Kind().String()),
					StyleDim.Render(fmt.Sprintf("%d rows", e.Store.RowCount())),
				)
			}
			return nil
		},
	}

	addProjectFlag(cmd, &path)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse layers interactively")

	return cmd
}

// newLayerRemoveCmd creates the command that deletes a layer from the
// project. The layer owns no resources, so removal is just dropping it
// from the list and saving.
func newLayerRemoveCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "remove <layer>",
		Short: "Remove a layer by index or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(path)
			if err != nil {
				return err
			}

			e, err := p.Resolve(args[0])
			if err != nil {
				return err
			}
			label := e.Layer.Label()

			if err := p.Remove(e.ID); err != nil {
				return err
			}
			if err := project.Save(p, path); err != nil {
				return err
			}

			printSuccess("Removed %s from %s", label, path)
			return nil
		},
	}

	addProjectFlag(cmd, &path)

	return cmd
}

// printLayerDetails prints every styling property of one layer.
func printLayerDetails(e *project.Entry) {
	fmt.Println(StyleTitle.Render(e.Layer.Label()))
	printKeyValue("id", e.ID)
	printKeyValue("kind", e.Layer.Kind().String())
	printKeyValue("rows", fmt.Sprintf("%d", e.Store.RowCount()))
	for _, prop := range properties {
		printKeyValue(prop.name, prop.get(e.Layer))
	}
}

// newLayerShowCmd creates the command that prints every styling property
// of one layer.
func newLayerShowCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "show <layer>",
		Short: "Show all properties of a layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(path)
			if err != nil {
				return err
			}

			e, err := p.Resolve(args[0])
			if err != nil {
				return err
			}

			printLayerDetails(e)
			return nil
		},
	}

	addProjectFlag(cmd, &path)

	return cmd
}
