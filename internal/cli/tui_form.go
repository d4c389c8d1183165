package cli

import (
	"fmt"
	"strings"

	"github.com/ameliaholt/weekplan/internal/cli/formatter"
	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// classFormFields holds the string-typed bindings huh edits; they convert
// to a domain.ClassFields on submit.
type classFormFields struct {
	Name    string
	Teacher string
	Room    string
	Start   string
	End     string
	Days    []string
	Color   string
}

func newClassFormFields(c *domain.ClassRecord) *classFormFields {
	f := &classFormFields{}
	if c == nil {
		return f
	}
	f.Name = c.Name
	f.Teacher = c.Teacher
	f.Room = c.Room
	f.Start = c.Start
	f.End = c.End
	f.Color = c.Color
	for _, d := range c.Days {
		f.Days = append(f.Days, string(d))
	}
	return f
}

// ToFields converts the bound strings into the write-boundary field set.
func (f *classFormFields) ToFields() domain.ClassFields {
	fields := domain.ClassFields{
		Name:    f.Name,
		Teacher: f.Teacher,
		Room:    f.Room,
		Start:   f.Start,
		End:     f.End,
		Color:   f.Color,
	}
	for _, token := range f.Days {
		if day, err := domain.ParseWeekday(token); err == nil {
			fields.Days = append(fields.Days, day)
		}
	}
	return fields
}

func validateClockInput(s string) error {
	if !domain.ValidClock(s) {
		return fmt.Errorf("use 24-hour HH:MM")
	}
	return nil
}

// buildClassForm creates the add/edit form. The field-level checks give
// immediate feedback; the service still validates the full record on
// submit.
func buildClassForm(f *classFormFields) *huh.Form {
	dayOptions := make([]huh.Option[string], len(domain.Weekdays))
	for i, d := range domain.Weekdays {
		dayOptions[i] = huh.NewOption(string(d), string(d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Class name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("Please enter a class name.")
					}
					return nil
				}),
			huh.NewInput().
				Title("Teacher (optional)").
				Value(&f.Teacher),
			huh.NewInput().
				Title("Room (optional)").
				Value(&f.Room),
			huh.NewInput().
				Title("Start (HH:MM)").
				Placeholder("09:00").
				Value(&f.Start).
				Validate(validateClockInput),
			huh.NewInput().
				Title("End (HH:MM)").
				Placeholder("10:30").
				Value(&f.End).
				Validate(validateClockInput),
			huh.NewMultiSelect[string]().
				Title("Days").
				Options(dayOptions...).
				Value(&f.Days).
				Validate(func(days []string) error {
					if len(days) == 0 {
						return fmt.Errorf("Select at least one day.")
					}
					return nil
				}),
			huh.NewInput().
				Title("Color (hex, optional)").
				Placeholder(domain.DefaultColor).
				Value(&f.Color),
		),
	).WithTheme(weekplanHuhTheme()).WithShowHelp(false)
}

// buildTitleForm creates the single-field rename form.
func buildTitleForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule title").
				Value(value),
		),
	).WithTheme(weekplanHuhTheme()).WithShowHelp(false)
}

func weekplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
