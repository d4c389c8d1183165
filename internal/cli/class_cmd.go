package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ameliaholt/weekplan/internal/cli/formatter"
	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/spf13/cobra"
)

// resolveClassID matches user input against the schedule: exact id first,
// then unique id prefix, then case-insensitive name.
func resolveClassID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("class ID is required")
	}
	s := app.Schedule.Schedule()

	for _, c := range s.Classes {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range s.Classes {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return "", fmt.Errorf("class ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, c := range s.Classes {
		if strings.EqualFold(c.Name, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("class not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("class name %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newAddCmd(app *App) *cobra.Command {
	var fields domain.ClassFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a class",
		Example: `  weekplan add --name "Linear Algebra" --start 09:00 --end 10:30 --days mon,wed --room B212`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Schedule.AddClass(cmd.Context(), fields)
			if err != nil {
				return err
			}
			c, _ := app.Schedule.Find(id)
			fmt.Printf("Added %s  %s\n", c.Name, formatter.Dim(id[:8]))
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Name, "name", "", "Class name")
	cmd.Flags().StringVar(&fields.Teacher, "teacher", "", "Teacher (optional)")
	cmd.Flags().StringVar(&fields.Room, "room", "", "Room (optional)")
	cmd.Flags().StringVar(&fields.Start, "start", "", "Start time (HH:MM, 24-hour)")
	cmd.Flags().StringVar(&fields.End, "end", "", "End time (HH:MM, 24-hour)")
	cmd.Flags().Var(newDaysValue(&fields.Days), "days", "Days of week (e.g. mon,wed,fri)")
	cmd.Flags().StringVar(&fields.Color, "color", "", "Display color (hex, optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var fields domain.ClassFields

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a class",
		Long:  "Edit a class by id, id prefix, or name. Flags not given keep their current values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClassID(app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Schedule.Find(id)
			if err != nil {
				return err
			}

			merged := domain.ClassFields{
				Name:    c.Name,
				Teacher: c.Teacher,
				Room:    c.Room,
				Start:   c.Start,
				End:     c.End,
				Days:    append([]domain.Weekday(nil), c.Days...),
				Color:   c.Color,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				merged.Name = fields.Name
			}
			if flags.Changed("teacher") {
				merged.Teacher = fields.Teacher
			}
			if flags.Changed("room") {
				merged.Room = fields.Room
			}
			if flags.Changed("start") {
				merged.Start = fields.Start
			}
			if flags.Changed("end") {
				merged.End = fields.End
			}
			if flags.Changed("days") {
				merged.Days = fields.Days
			}
			if flags.Changed("color") {
				merged.Color = fields.Color
			}

			if err := app.Schedule.UpdateClass(cmd.Context(), id, merged); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", merged.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Name, "name", "", "Class name")
	cmd.Flags().StringVar(&fields.Teacher, "teacher", "", "Teacher")
	cmd.Flags().StringVar(&fields.Room, "room", "", "Room")
	cmd.Flags().StringVar(&fields.Start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&fields.End, "end", "", "End time (HH:MM)")
	cmd.Flags().Var(newDaysValue(&fields.Days), "days", "Days of week (replaces the current set)")
	cmd.Flags().StringVar(&fields.Color, "color", "", "Display color")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a class",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClassID(app, args[0])
			if err != nil {
				return err
			}
			c, _ := app.Schedule.Find(id)
			if err := app.Schedule.DeleteClass(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", c.DisplayName())
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Schedule.Schedule()
			if len(s.Classes) == 0 {
				fmt.Println("No classes yet. Try: weekplan add")
				return nil
			}
			fmt.Print(formatter.FormatClassList(s))
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Print("Delete all classes from your schedule? [y/N] ")
				line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
					fmt.Println("Cancelled.")
					return nil
				}
			}
			if err := app.Schedule.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Schedule cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
