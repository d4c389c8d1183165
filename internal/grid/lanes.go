package grid

import "sort"

// Interval is a [Start, End) span in minutes since midnight.
type Interval struct {
	Start, End int
}

// AllocateLanes assigns each interval the lowest lane in which it does not
// overlap the most recent occupant, so overlapping intervals render side by
// side. Greedy first-fit over a stable start-time ordering: ties keep their
// original relative order, and identical input always yields identical
// lanes, which keeps the layout visually stable across re-renders.
//
// The occupancy test is strict: a lane is still busy only while
// start < laneEnd, so an interval starting exactly when another ends reuses
// its lane. Returns one zero-based lane per input index.
func AllocateLanes(intervals []Interval) []int {
	lanes := make([]int, len(intervals))
	if len(intervals) == 0 {
		return lanes
	}

	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return intervals[order[a]].Start < intervals[order[b]].Start
	})

	// laneEnd[i] is the end time of the latest interval placed in lane i.
	var laneEnd []int
	for _, idx := range order {
		iv := intervals[idx]
		lane := 0
		for lane < len(laneEnd) && iv.Start < laneEnd[lane] {
			lane++
		}
		if lane == len(laneEnd) {
			laneEnd = append(laneEnd, 0)
		}
		laneEnd[lane] = iv.End
		lanes[idx] = lane
	}
	return lanes
}

// LaneCount returns the number of distinct lanes in an assignment.
func LaneCount(lanes []int) int {
	max := 0
	for _, l := range lanes {
		if l+1 > max {
			max = l + 1
		}
	}
	return max
}
