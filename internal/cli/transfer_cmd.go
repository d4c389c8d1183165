package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [DIR]",
		Short: "Write the schedule to a JSON file named after its title",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := app.Schedule.ExportFile(cmd.Context(), dir)
			if err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	var file, link string

	cmd := &cobra.Command{
		Use:   "import (--file PATH | --link URL)",
		Short: "Replace the schedule from an export file or a share link",
		Long: `Replace the current schedule from a chosen source and persist it.
Accepts both the current export format and the legacy bare-array files.
On any parse failure the current schedule is left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case file != "" && link != "":
				return fmt.Errorf("use either --file or --link, not both")
			case file != "":
				if err := app.Schedule.ImportFile(cmd.Context(), file); err != nil {
					return fmt.Errorf("import failed, schedule unchanged: %w", err)
				}
			case link != "":
				if err := app.Schedule.ImportLink(cmd.Context(), link); err != nil {
					return fmt.Errorf("import failed, schedule unchanged: %w", err)
				}
			default:
				return fmt.Errorf("one of --file or --link is required")
			}

			s := app.Schedule.Schedule()
			fmt.Printf("Imported %q (%d classes)\n", s.Title, len(s.Classes))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a schedule JSON file")
	cmd.Flags().StringVar(&link, "link", "", "A share link (or its bare payload)")

	return cmd
}
