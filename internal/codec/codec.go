// Package codec serializes schedules for the three persistence channels:
// the durable store, share links, and export/import files. All three speak
// the same envelope and tolerate the same legacy shape, so a file written
// by one channel always decodes through another.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ameliaholt/weekplan/internal/domain"
)

// Envelope is the current serialized shape (Shape B): a versioned wrapper
// around the title and the class list.
type Envelope struct {
	Version int                   `json:"version"`
	Title   string                `json:"title"`
	Classes []*domain.ClassRecord `json:"classes"`
}

// shape discriminates the two tolerated top-level forms.
type shape int

const (
	shapeUnknown shape = iota
	shapeLegacyArray
	shapeEnvelope
)

// sniffShape inspects the first JSON token to pick a decode path, instead
// of unmarshaling into interface{} and type-switching.
func sniffShape(data []byte) shape {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return shapeUnknown
	}
	switch trimmed[0] {
	case '[':
		return shapeLegacyArray
	case '{':
		return shapeEnvelope
	default:
		return shapeUnknown
	}
}

// Decode parses either tolerated shape into a schedule.
//
// Shape A (legacy): a bare array of records; it becomes the class list and
// the title falls back to fallbackTitle. Shape B: the envelope; an absent
// title falls back the same way, and a missing or non-array classes field
// becomes an empty list. Any other top level, or malformed JSON, is an
// error; callers treat decode errors as non-fatal and keep their current
// state.
func Decode(data []byte, fallbackTitle string) (*domain.Schedule, error) {
	fallbackTitle = domain.CoalesceStr(fallbackTitle, domain.DefaultTitle)

	switch sniffShape(data) {
	case shapeLegacyArray:
		var classes []*domain.ClassRecord
		if err := json.Unmarshal(data, &classes); err != nil {
			return nil, fmt.Errorf("parsing legacy schedule array: %w", err)
		}
		return &domain.Schedule{Title: fallbackTitle, Classes: classes}, nil

	case shapeEnvelope:
		var env struct {
			Version int             `json:"version"`
			Title   string          `json:"title"`
			Classes json.RawMessage `json:"classes"`
		}
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("parsing schedule envelope: %w", err)
		}
		s := &domain.Schedule{Title: domain.CoalesceStr(env.Title, fallbackTitle)}
		if len(env.Classes) > 0 {
			// A classes field that is not an array decays to empty rather
			// than failing the whole decode.
			_ = json.Unmarshal(env.Classes, &s.Classes)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("schedule data is neither an array nor an object")
	}
}

// Encode serializes the full schedule in the current shape, compact.
func Encode(s *domain.Schedule) ([]byte, error) {
	data, err := json.Marshal(envelope(s))
	if err != nil {
		return nil, fmt.Errorf("encoding schedule: %w", err)
	}
	return data, nil
}

// EncodePretty serializes the full schedule indented, for export files.
func EncodePretty(s *domain.Schedule) ([]byte, error) {
	data, err := json.MarshalIndent(envelope(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding schedule: %w", err)
	}
	return data, nil
}

func envelope(s *domain.Schedule) Envelope {
	classes := s.Classes
	if classes == nil {
		classes = []*domain.ClassRecord{}
	}
	return Envelope{
		Version: domain.SchemaVersion,
		Title:   s.Title,
		Classes: classes,
	}
}
