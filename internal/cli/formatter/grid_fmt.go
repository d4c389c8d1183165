package formatter

import (
	"fmt"
	"strings"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/ameliaholt/weekplan/internal/grid"
)

const (
	dayColWidth  = 16
	gutterWidth  = 5
	rowsPerHour  = 2 // half-hour rows
	laneMinWidth = 4
)

// RenderWeekGrid draws the full 7-day grid: hour labels down the side, one
// column per day, overlapping occurrences split into side-by-side lanes.
// The projector does all geometry; this function only maps rows to text.
// selectedID, when non-empty, renders that record's blocks inverted.
func RenderWeekGrid(geo grid.Config, s *domain.Schedule, selectedID string) string {
	// Re-scale the projection so one "pixel" is one terminal row.
	rcfg := geo
	rcfg.PixelsPerHour = rowsPerHour
	rcfg.BaselineOffsetMin = 0

	totalRows := geo.Hours() * rowsPerHour
	cols := make(map[domain.Weekday][]string, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		cols[day] = renderDayColumn(rcfg.Day(s.Classes, day), totalRows, selectedID)
	}

	var b strings.Builder

	// Header row.
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for _, day := range domain.Weekdays {
		b.WriteString(StyleHeader.Render(padTo(string(day), dayColWidth)))
	}
	b.WriteString("\n")

	for row := 0; row < totalRows; row++ {
		label := ""
		if row%rowsPerHour == 0 {
			label = grid.FormatHour(geo.StartHour + row/rowsPerHour)
		}
		b.WriteString(StyleDim.Render(padTo(label, gutterWidth)))
		for _, day := range domain.Weekdays {
			b.WriteString(cols[day][row])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderDayColumn rasterizes one day's blocks into fixed-width text rows.
func renderDayColumn(blocks []grid.PositionedBlock, totalRows int, selectedID string) []string {
	laneTotal := 1
	for _, blk := range blocks {
		if blk.Lane+1 > laneTotal {
			laneTotal = blk.Lane + 1
		}
	}
	laneWidth := dayColWidth / laneTotal
	if laneWidth < laneMinWidth {
		laneWidth = laneMinWidth
	}

	rows := make([]string, totalRows)
	for row := 0; row < totalRows; row++ {
		var cell strings.Builder
		used := 0
		for lane := 0; lane < laneTotal && used+laneWidth <= dayColWidth; lane++ {
			frag := strings.Repeat(" ", laneWidth)
			for i := range blocks {
				blk := &blocks[i]
				if blk.Lane != lane {
					continue
				}
				start := int(blk.Top)
				span := int(blk.Height)
				if span < 1 {
					span = 1
				}
				if row < start || row >= start+span {
					continue
				}
				text := "│"
				if row == start {
					text = truncate(blk.Class.DisplayName(), laneWidth-1)
				}
				style := ClassStyle(blk.Class.DisplayColor())
				if selectedID != "" && blk.Class.ID == selectedID {
					style = style.Reverse(true)
				}
				frag = style.Render(padTo(text, laneWidth))
				break
			}
			cell.WriteString(frag)
			used += laneWidth
		}
		if used < dayColWidth {
			cell.WriteString(strings.Repeat(" ", dayColWidth-used))
		}
		rows[row] = cell.String()
	}
	return rows
}

// FormatDayBlocks lists one day's laid-out occurrences, for the single-day
// view.
func FormatDayBlocks(day domain.Weekday, blocks []grid.PositionedBlock) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(string(day)))
	b.WriteString("\n")
	if len(blocks) == 0 {
		b.WriteString(Dim("No classes.") + "\n")
		return b.String()
	}
	for _, blk := range blocks {
		c := blk.Class
		b.WriteString(fmt.Sprintf("  %s  %s",
			grid.FormatTimeRange(c.Start, c.End),
			ClassStyle(c.DisplayColor()).Render(c.DisplayName())))
		if c.Room != "" {
			b.WriteString(Dim(" • " + c.Room))
		}
		if blk.Lane > 0 {
			b.WriteString(Dim(fmt.Sprintf(" (lane %d)", blk.Lane+1)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func padTo(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return string(r)
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
