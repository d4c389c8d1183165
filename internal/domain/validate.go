package domain

import "strings"

// ValidationError reports the first rule a submitted field set broke. The
// message is user-facing and is displayed verbatim by the form layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ClassFields is the full replaceable field set of a record, as handed over
// by the add/edit form. Everything but the id.
type ClassFields struct {
	Name    string
	Teacher string
	Room    string
	Start   string
	End     string
	Days    []Weekday
	Color   string
}

// Validate enforces the write-boundary invariants: non-empty name,
// well-formed start and end with start strictly before end, at least one
// day. It returns the first failing rule only. Stored data is never
// re-validated on read; readers substitute defaults instead.
func (f *ClassFields) Validate() *ValidationError {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter a class name."}
	}
	if f.Start == "" || f.End == "" {
		return &ValidationError{Field: "time", Message: "Please enter both start and end times."}
	}
	start, err := ParseClock(f.Start)
	if err != nil {
		return &ValidationError{Field: "start", Message: "Please enter both start and end times."}
	}
	end, err := ParseClock(f.End)
	if err != nil {
		return &ValidationError{Field: "end", Message: "Please enter both start and end times."}
	}
	if start >= end {
		return &ValidationError{Field: "end", Message: "End time must be after start time."}
	}
	if len(f.Days) == 0 {
		return &ValidationError{Field: "days", Message: "Select at least one day."}
	}
	return nil
}

// Apply copies the field set onto a record, leaving its id untouched.
func (f *ClassFields) Apply(c *ClassRecord) {
	c.Name = strings.TrimSpace(f.Name)
	c.Teacher = strings.TrimSpace(f.Teacher)
	c.Room = strings.TrimSpace(f.Room)
	c.Start = f.Start
	c.End = f.End
	c.Days = append([]Weekday(nil), f.Days...)
	c.Color = f.Color
}
