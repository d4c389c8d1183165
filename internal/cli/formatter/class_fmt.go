package formatter

import (
	"fmt"
	"strings"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/ameliaholt/weekplan/internal/grid"
	"github.com/charmbracelet/lipgloss"
)

// shortID truncates a record id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatDays joins day tokens for display, with the dash placeholder for an
// empty set.
func FormatDays(days []domain.Weekday) string {
	if len(days) == 0 {
		return "—"
	}
	tokens := make([]string, len(days))
	for i, d := range days {
		tokens[i] = string(d)
	}
	return strings.Join(tokens, ", ")
}

// FormatClassList renders the schedule's records as a table, insertion
// order preserved.
func FormatClassList(s *domain.Schedule) string {
	title := StyleBold.Render(s.Title)
	headers := []string{"ID", "CLASS", "TIME", "DAYS", "ROOM"}
	rows := make([][]string, 0, len(s.Classes))
	for _, c := range s.Classes {
		rows = append(rows, []string{
			StyleDim.Render(shortID(c.ID)),
			ClassStyle(c.DisplayColor()).Render(c.DisplayName()),
			grid.FormatTimeRange(c.Start, c.End),
			FormatDays(c.Days),
			domain.OrDash(c.Room),
		})
	}
	return title + "\n\n" + RenderTable(headers, rows)
}

// FormatClassDetails renders one record as a details card. Absent optional
// fields show a placeholder instead of failing or hiding the row.
func FormatClassDetails(c *domain.ClassRecord) string {
	var b strings.Builder
	b.WriteString(ClassStyle(c.DisplayColor()).Bold(true).Render(c.DisplayName()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("Time:"), grid.FormatTimeRange(c.Start, c.End)))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("Days:"), FormatDays(c.Days)))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("Teacher:"), domain.OrDash(c.Teacher)))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("Room:"), domain.OrDash(c.Room)))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("ID:"), shortID(c.ID)))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}
