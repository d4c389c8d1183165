// Package grid holds the pure layout core of the schedule editor: wall-clock
// arithmetic, the overlap lane allocator, and the projector that turns a
// schedule into positioned per-day blocks. Nothing in here touches storage
// or the presentation layer.
package grid

import (
	"fmt"

	"github.com/ameliaholt/weekplan/internal/domain"
)

// Config is the injected geometry of the display window. The presentation
// layer owns the values (it knows its row heights and recomputes
// PixelsPerHour on resize); the core only does the math.
type Config struct {
	StartHour int // first hour shown, inclusive
	EndHour   int // last hour shown, exclusive

	// PixelsPerHour scales duration to vertical distance.
	PixelsPerHour float64

	// BaselineOffsetMin shifts every block down by a fixed number of
	// minutes. Presentation layers that need a first-row correction derive
	// it from their actual row height rather than hardcoding one here.
	BaselineOffsetMin int
}

// DefaultConfig mirrors the classic 8:00–20:00 window at 56 px per hour.
func DefaultConfig() Config {
	return Config{StartHour: 8, EndHour: 20, PixelsPerHour: 56}
}

// PixelOffset maps a wall-clock time to a vertical pixel offset from the top
// of the window. Times before the window start collapse to the top edge.
func (cfg Config) PixelOffset(t string) (float64, error) {
	mins, err := domain.ParseClock(t)
	if err != nil {
		return 0, err
	}
	offset := mins - cfg.StartHour*60
	if offset < 0 {
		offset = 0
	}
	offset += cfg.BaselineOffsetMin
	return float64(offset) / 60 * cfg.PixelsPerHour, nil
}

// PixelHeight maps a [start, end) duration to a pixel span. A non-positive
// result means the caller broke the start < end invariant.
func (cfg Config) PixelHeight(start, end string) (float64, error) {
	s, err := domain.ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		return 0, err
	}
	return float64(e-s) / 60 * cfg.PixelsPerHour, nil
}

// Hours returns the number of whole hours the window spans.
func (cfg Config) Hours() int {
	return cfg.EndHour - cfg.StartHour
}

// To12Hour renders "13:05" as "1:05 PM". Display only; geometry never uses
// 12-hour values.
func To12Hour(t string) string {
	mins, err := domain.ParseClock(t)
	if err != nil {
		return t
	}
	h, m := mins/60, mins%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hr12 := (h+11)%12 + 1
	return fmt.Sprintf("%d:%02d %s", hr12, m, suffix)
}

// FormatTimeRange joins both endpoints in 12-hour form with an en dash.
func FormatTimeRange(start, end string) string {
	return To12Hour(start) + " – " + To12Hour(end)
}

// FormatHour renders an hour-of-day label such as "8am" or "1pm".
func FormatHour(h int) string {
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d%s", (h+11)%12+1, suffix)
}
