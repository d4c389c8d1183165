package cli

import (
	"fmt"
	"strings"

	"github.com/ameliaholt/weekplan/internal/cli/formatter"
	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [DAY]",
		Short: "Render the week grid, or one day's layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Schedule.Schedule()

			if len(args) == 1 {
				day, err := domain.ParseWeekday(args[0])
				if err != nil {
					return err
				}
				blocks := app.Geometry.Day(s.Classes, day)
				fmt.Print(formatter.FormatDayBlocks(day, blocks))
				return nil
			}

			fmt.Println(formatter.StyleBold.Render(s.Title))
			fmt.Print(formatter.RenderWeekGrid(app.Geometry, s, ""))
			return nil
		},
	}
}

func newTitleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "title [TEXT...]",
		Short: "Show or set the schedule title",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if err := app.Schedule.SetTitle(cmd.Context(), strings.Join(args, " ")); err != nil {
					return err
				}
			}
			fmt.Println(app.Schedule.Schedule().Title)
			return nil
		},
	}
}
