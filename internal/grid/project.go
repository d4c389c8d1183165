package grid

import (
	"sort"

	"github.com/ameliaholt/weekplan/internal/domain"
)

// PositionedBlock is one render-ready occurrence: a (record, day) pairing
// with its computed geometry. Purely derived, never persisted, recomputed
// from scratch on every projection.
type PositionedBlock struct {
	Class  *domain.ClassRecord
	Day    domain.Weekday
	Top    float64
	Height float64
	Lane   int

	// StartMin/EndMin carry the parsed times so consumers need not
	// re-parse.
	StartMin, EndMin int
}

// Day projects one weekday's occurrences into positioned, lane-assigned
// blocks, ordered by start time (ties in insertion order). Records whose
// stored times no longer parse are skipped rather than failing the render;
// the write boundary guarantees them, hand-edited imports do not.
func (cfg Config) Day(classes []*domain.ClassRecord, day domain.Weekday) []PositionedBlock {
	var blocks []PositionedBlock
	for _, c := range classes {
		if !c.OccursOn(day) {
			continue
		}
		startMin, err := domain.ParseClock(c.Start)
		if err != nil {
			continue
		}
		endMin, err := domain.ParseClock(c.End)
		if err != nil {
			continue
		}
		top, _ := cfg.PixelOffset(c.Start)
		height, _ := cfg.PixelHeight(c.Start, c.End)
		blocks = append(blocks, PositionedBlock{
			Class:    c,
			Day:      day,
			Top:      top,
			Height:   height,
			StartMin: startMin,
			EndMin:   endMin,
		})
	}

	intervals := make([]Interval, len(blocks))
	for i, b := range blocks {
		intervals[i] = Interval{Start: b.StartMin, End: b.EndMin}
	}
	for i, lane := range AllocateLanes(intervals) {
		blocks[i].Lane = lane
	}

	sort.SliceStable(blocks, func(a, b int) bool {
		return blocks[a].StartMin < blocks[b].StartMin
	})
	return blocks
}

// Week projects the full schedule, one block list per weekday in
// domain.Weekdays order.
func (cfg Config) Week(s *domain.Schedule) map[domain.Weekday][]PositionedBlock {
	out := make(map[domain.Weekday][]PositionedBlock, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		out[day] = cfg.Day(s.Classes, day)
	}
	return out
}
