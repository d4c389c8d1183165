package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() ClassFields {
	return ClassFields{
		Name:  "Linear Algebra",
		Start: "09:00",
		End:   "10:30",
		Days:  []Weekday{Monday, Wednesday},
	}
}

func TestClassFields_ValidateAccepts(t *testing.T) {
	f := validFields()
	require.Nil(t, f.Validate())
}

func TestClassFields_ValidateFirstFailingRule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClassFields)
		field   string
		message string
	}{
		{"empty name", func(f *ClassFields) { f.Name = "" }, "name", "Please enter a class name."},
		{"whitespace name", func(f *ClassFields) { f.Name = "   " }, "name", "Please enter a class name."},
		{"missing start", func(f *ClassFields) { f.Start = "" }, "time", "Please enter both start and end times."},
		{"missing end", func(f *ClassFields) { f.End = "" }, "time", "Please enter both start and end times."},
		{"malformed start", func(f *ClassFields) { f.Start = "nine" }, "start", "Please enter both start and end times."},
		{"end before start", func(f *ClassFields) { f.Start = "10:00"; f.End = "09:00" }, "end", "End time must be after start time."},
		{"start equals end", func(f *ClassFields) { f.Start = "10:00"; f.End = "10:00" }, "end", "End time must be after start time."},
		{"no days", func(f *ClassFields) { f.Days = nil }, "days", "Select at least one day."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			err := f.Validate()
			require.NotNil(t, err)
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestClassFields_ApplyPreservesID(t *testing.T) {
	c := &ClassRecord{ID: "abc", Name: "Old"}
	f := validFields()
	f.Apply(c)

	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, "Linear Algebra", c.Name)
	assert.Equal(t, []Weekday{Monday, Wednesday}, c.Days)
}

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("13:05")
	require.NoError(t, err)
	assert.Equal(t, 785, mins)

	mins, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, mins)

	for _, bad := range []string{"", "13", "13:5:0", "24:00", "12:60", "ab:cd", "-1:30"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseWeekday(t *testing.T) {
	for _, in := range []string{"Mon", "mon", "MONDAY", "monday"} {
		d, err := ParseWeekday(in)
		require.NoError(t, err)
		assert.Equal(t, Monday, d)
	}
	_, err := ParseWeekday("noday")
	assert.Error(t, err)
	_, err = ParseWeekday("x")
	assert.Error(t, err)
}

func TestSchedule_RemovePreservesOrder(t *testing.T) {
	s := NewSchedule()
	s.Classes = []*ClassRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	require.True(t, s.Remove("b"))
	require.Len(t, s.Classes, 2)
	assert.Equal(t, "a", s.Classes[0].ID)
	assert.Equal(t, "c", s.Classes[1].ID)

	assert.False(t, s.Remove("b"))
	assert.Len(t, s.Classes, 2)
}

func TestSchedule_OnFiltersByDay(t *testing.T) {
	s := NewSchedule()
	s.Classes = []*ClassRecord{
		{ID: "a", Days: []Weekday{Monday, Friday}},
		{ID: "b", Days: []Weekday{Tuesday}},
		{ID: "c", Days: []Weekday{Monday}},
	}

	mon := s.On(Monday)
	require.Len(t, mon, 2)
	assert.Equal(t, "a", mon[0].ID)
	assert.Equal(t, "c", mon[1].ID)
	assert.Empty(t, s.On(Saturday))
}

func TestClassRecord_DisplayDefaults(t *testing.T) {
	c := &ClassRecord{}
	assert.Equal(t, "Class", c.DisplayName())
	assert.Equal(t, DefaultColor, c.DisplayColor())
	assert.Equal(t, "—", OrDash(c.Teacher))

	c.Name = "Chemistry"
	c.Color = "#22c55e"
	assert.Equal(t, "Chemistry", c.DisplayName())
	assert.Equal(t, "#22c55e", c.DisplayColor())
}
