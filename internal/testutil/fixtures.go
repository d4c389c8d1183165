package testutil

import (
	"github.com/ameliaholt/weekplan/internal/domain"
	"github.com/google/uuid"
)

// ClassOption mutates a fixture record.
type ClassOption func(*domain.ClassRecord)

func WithDays(days ...domain.Weekday) ClassOption {
	return func(c *domain.ClassRecord) {
		c.Days = days
	}
}

func WithTimes(start, end string) ClassOption {
	return func(c *domain.ClassRecord) {
		c.Start = start
		c.End = end
	}
}

func WithRoom(room string) ClassOption {
	return func(c *domain.ClassRecord) {
		c.Room = room
	}
}

// NewClass builds a valid record with sensible defaults, overridable via
// options.
func NewClass(name string, opts ...ClassOption) *domain.ClassRecord {
	c := &domain.ClassRecord{
		ID:    uuid.New().String(),
		Name:  name,
		Start: "09:00",
		End:   "10:00",
		Days:  []domain.Weekday{domain.Monday},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fields converts a record into the field set the write boundary accepts.
func Fields(c *domain.ClassRecord) domain.ClassFields {
	return domain.ClassFields{
		Name:    c.Name,
		Teacher: c.Teacher,
		Room:    c.Room,
		Start:   c.Start,
		End:     c.End,
		Days:    append([]domain.Weekday(nil), c.Days...),
		Color:   c.Color,
	}
}
