package domain

import (
	"fmt"
	"strings"
)

// Weekday is a day-of-week token as stored in schedule data ("Sun".."Sat").
// Recurrence is day-of-week only; there are no calendar dates anywhere in
// the model.
type Weekday string

const (
	Sunday    Weekday = "Sun"
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
)

// Weekdays lists the seven days in display order, Sunday first.
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday matches a token against the known day set, case-insensitively
// on the first three letters ("mon", "Monday", "MON" all resolve to Mon).
func ParseWeekday(s string) (Weekday, error) {
	if len(s) >= 3 {
		prefix := s[:3]
		for _, d := range Weekdays {
			if strings.EqualFold(prefix, string(d)) {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// DefaultColor is the accent applied to records that carry no color of
// their own.
const DefaultColor = "#4f46e5"

// ClassRecord is one recurring weekly class. A record listing several days
// represents independent occurrences, one per day, sharing every other
// field. ID is assigned at creation and never changes.
type ClassRecord struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Teacher string    `json:"teacher,omitempty"`
	Room    string    `json:"room,omitempty"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
	Days    []Weekday `json:"days"`
	Color   string    `json:"color,omitempty"`
}

// OccursOn reports whether the record has an occurrence on the given day.
func (c *ClassRecord) OccursOn(day Weekday) bool {
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}

// DisplayName tolerates hand-edited imports with a missing name.
func (c *ClassRecord) DisplayName() string {
	return CoalesceStr(c.Name, "Class")
}

// DisplayColor returns the record color, or the theme accent when absent.
func (c *ClassRecord) DisplayColor() string {
	return CoalesceStr(c.Color, DefaultColor)
}

// Clone returns a deep copy, so callers can hand records across the service
// boundary without sharing the Days slice.
func (c *ClassRecord) Clone() *ClassRecord {
	dup := *c
	dup.Days = append([]Weekday(nil), c.Days...)
	return &dup
}
