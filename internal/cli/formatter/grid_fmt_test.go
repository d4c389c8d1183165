package formatter

import (
	"strings"
	"testing"

	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/ameliaholt/weekplan/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() *domain.Schedule {
	s := domain.NewSchedule()
	s.Title = "Fall"
	s.Classes = []*domain.ClassRecord{
		{ID: "a1", Name: "Algebra", Start: "09:00", End: "10:00", Days: []domain.Weekday{domain.Monday}},
		{ID: "b2", Name: "Biology", Start: "09:30", End: "10:30", Days: []domain.Weekday{domain.Monday}, Room: "Lab 3"},
	}
	return s
}

func TestRenderWeekGrid_HeadersAndBlocks(t *testing.T) {
	out := RenderWeekGrid(grid.DefaultConfig(), testSchedule(), "")

	for _, day := range domain.Weekdays {
		assert.Contains(t, out, string(day))
	}
	assert.Contains(t, out, "8am")
	assert.Contains(t, out, "12pm")
	// Overlapping classes render side by side, so both names survive
	// truncation into the split column.
	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, "Biology")
}

func TestRenderWeekGrid_RowCount(t *testing.T) {
	geo := grid.DefaultConfig()
	out := RenderWeekGrid(geo, domain.NewSchedule(), "")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus two rows per hour.
	assert.Len(t, lines, 1+geo.Hours()*2)
}

func TestFormatDayBlocks(t *testing.T) {
	s := testSchedule()
	blocks := grid.DefaultConfig().Day(s.Classes, domain.Monday)
	require.Len(t, blocks, 2)

	out := FormatDayBlocks(domain.Monday, blocks)
	assert.Contains(t, out, "9:00 AM – 10:00 AM")
	assert.Contains(t, out, "Biology")
	assert.Contains(t, out, "Lab 3")
	assert.Contains(t, out, "(lane 2)")

	empty := FormatDayBlocks(domain.Sunday, nil)
	assert.Contains(t, empty, "No classes.")
}

func TestFormatClassList(t *testing.T) {
	out := FormatClassList(testSchedule())
	assert.Contains(t, out, "Fall")
	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "a1")
}

func TestFormatClassDetails_Placeholders(t *testing.T) {
	c := &domain.ClassRecord{ID: "id123456789", Name: "Art", Start: "10:00", End: "11:00"}
	out := FormatClassDetails(c)
	assert.Contains(t, out, "Art")
	assert.Contains(t, out, "—")
	assert.Contains(t, out, "id123456")
	assert.NotContains(t, out, "id1234567")
}
