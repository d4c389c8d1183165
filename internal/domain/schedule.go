package domain

// SchemaVersion tags the current serialized shape ({version, title,
// classes}). The legacy shape is a bare array of records with no wrapper.
const SchemaVersion = 2

// DefaultTitle is the placeholder used until the user names the schedule.
const DefaultTitle = "My Schedule"

// Schedule is the aggregate root: a titled, ordered collection of class
// records. Insertion order is preserved for stable iteration only; it has
// no semantic meaning. IDs are unique within Classes.
type Schedule struct {
	Title   string
	Classes []*ClassRecord
}

// NewSchedule returns an empty schedule with the default title.
func NewSchedule() *Schedule {
	return &Schedule{Title: DefaultTitle}
}

// Find returns the record with the given id, or nil.
func (s *Schedule) Find(id string) *ClassRecord {
	for _, c := range s.Classes {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Remove deletes the record with the given id, preserving the relative
// order of the rest. It reports whether anything was removed.
func (s *Schedule) Remove(id string) bool {
	for i, c := range s.Classes {
		if c.ID == id {
			s.Classes = append(s.Classes[:i], s.Classes[i+1:]...)
			return true
		}
	}
	return false
}

// On returns the records with an occurrence on the given day, in insertion
// order.
func (s *Schedule) On(day Weekday) []*ClassRecord {
	var out []*ClassRecord
	for _, c := range s.Classes {
		if c.OccursOn(day) {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of the schedule.
func (s *Schedule) Clone() *Schedule {
	dup := &Schedule{Title: s.Title}
	for _, c := range s.Classes {
		dup.Classes = append(dup.Classes, c.Clone())
	}
	return dup
}
