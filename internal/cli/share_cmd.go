package cli

import (
	"fmt"

	"github.com/ameliaholt/weekplan/internal/cli/formatter"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// defaultShareBase is the page a share link opens; the payload rides in its
// query string and any weekplan install can import the link directly.
const defaultShareBase = "https://weekplan.dev/schedule"

func newShareCmd(app *App) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Copy a share link carrying the full schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := app.Schedule.ShareLink(base)
			if err != nil {
				return err
			}
			// Clipboard failure is not fatal; surface the raw link for
			// manual copying instead.
			if err := clipboard.WriteAll(link); err != nil {
				fmt.Println(formatter.StyleYellow.Render("Could not reach the clipboard; copy the link below:"))
				fmt.Println(link)
				return nil
			}
			fmt.Println("Share link copied to clipboard.")
			fmt.Println(formatter.Dim(link))
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", defaultShareBase, "Base URL for the share link")
	return cmd
}
