package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelOffset(t *testing.T) {
	cfg := DefaultConfig() // 8:00 window start, 56 px/hour

	off, err := cfg.PixelOffset("09:00")
	require.NoError(t, err)
	assert.InDelta(t, 56.0, off, 1e-9)

	off, err = cfg.PixelOffset("08:30")
	require.NoError(t, err)
	assert.InDelta(t, 28.0, off, 1e-9)

	// Times before the window start collapse to the top edge.
	off, err = cfg.PixelOffset("06:00")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, off, 1e-9)

	_, err = cfg.PixelOffset("late")
	assert.Error(t, err)
}

func TestPixelOffset_BaselineShiftsDownward(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaselineOffsetMin = 30

	off, err := cfg.PixelOffset("08:00")
	require.NoError(t, err)
	assert.InDelta(t, 28.0, off, 1e-9)
}

func TestPixelHeight(t *testing.T) {
	cfg := DefaultConfig()

	h, err := cfg.PixelHeight("09:00", "10:30")
	require.NoError(t, err)
	assert.InDelta(t, 84.0, h, 1e-9)

	_, err = cfg.PixelHeight("bad", "10:00")
	assert.Error(t, err)
}

func TestTo12Hour(t *testing.T) {
	tests := []struct{ in, want string }{
		{"13:05", "1:05 PM"},
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"11:59", "11:59 AM"},
		{"23:30", "11:30 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, To12Hour(tt.in))
	}
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "9:00 AM – 10:30 AM", FormatTimeRange("09:00", "10:30"))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "8am", FormatHour(8))
	assert.Equal(t, "12pm", FormatHour(12))
	assert.Equal(t, "1pm", FormatHour(13))
	assert.Equal(t, "12am", FormatHour(0))
}
