package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock parses a 24-hour "HH:MM" wall-clock string into minutes since
// midnight. It is strict: two numeric fields, in-range hour and minute.
// There is no timezone or locale handling anywhere in the system.
func ParseClock(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", t)
	}
	return h*60 + m, nil
}

// ValidClock reports whether t parses as a wall-clock time.
func ValidClock(t string) bool {
	_, err := ParseClock(t)
	return err == nil
}
