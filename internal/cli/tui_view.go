package cli

import (
	"strings"

	"github.com/ameliaholt/weekplan/internal/cli/formatter"
)

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeForm, modeTitle:
		if m.form != nil {
			return m.form.View()
		}
	case modeDetails:
		if blk := m.selected(); blk != nil {
			return formatter.FormatClassDetails(blk.Class) + "\n" +
				formatter.Dim("e edit • d delete • any other key to go back")
		}
	case modeConfirmClear:
		return formatter.StyleRed.Render("Delete all classes from your schedule?") +
			formatter.Dim("  y to confirm, any other key to cancel")
	}

	s := m.app.Schedule.Schedule()

	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render(s.Title))
	b.WriteString(formatter.Dim("  ·  " + string(m.day())))
	b.WriteString("\n\n")

	selectedID := ""
	if blk := m.selected(); blk != nil {
		selectedID = blk.Class.ID
	}
	b.WriteString(formatter.RenderWeekGrid(m.app.Geometry, s, selectedID))

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(formatter.Dim("←→ day • ↑↓ class • enter details • a add • e edit • d delete • t title • s share • x export • c clear • q quit"))
	return b.String()
}
