package core

import "fmt"

// Segment is a contiguous interval [Start, End) during which ProcessID held the CPU.
type Segment struct {
	ProcessID string
	Start     int
	End       int
}

// Duration returns the number of ticks covered by the segment.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Timeline is an ordered, non-overlapping list of segments. Gaps are idle time.
type Timeline []Segment

// Makespan returns the end of the last segment, or 0 for an empty timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// BusyTime returns the number of ticks the CPU spent running processes.
func (t Timeline) BusyTime() int {
	busy := 0
	for _, s := range t {
		busy += s.Duration()
	}
	return busy
}

// TimelineBuilder accumulates segments for a single run and refuses any
// segment that would overlap the previous one.
type TimelineBuilder struct {
	segments []Segment
}

func NewTimelineBuilder() *TimelineBuilder {
	return &TimelineBuilder{segments: make([]Segment, 0)}
}

// Append adds a new segment.
func (b *TimelineBuilder) Append(pid string, start, end int) error {
	if end <= start {
		return fmt.Errorf("%w: segment %s [%d,%d) is empty", ErrInvariantViolation, pid, start, end)
	}
	if n := len(b.segments); n > 0 && start < b.segments[n-1].End {
		return fmt.Errorf("%w: segment %s [%d,%d) overlaps %s ending at %d",
			ErrInvariantViolation, pid, start, end, b.segments[n-1].ProcessID, b.segments[n-1].End)
	}
	b.segments = append(b.segments, Segment{ProcessID: pid, Start: start, End: end})
	return nil
}

// Extend grows the last segment when it belongs to pid and ends exactly at
// start; otherwise it behaves like Append.
func (b *TimelineBuilder) Extend(pid string, start, end int) error {
	if n := len(b.segments); n > 0 {
		last := &b.segments[n-1]
		if last.ProcessID == pid && last.End == start && end > start {
			last.End = end
			return nil
		}
	}
	return b.Append(pid, start, end)
}

// Len returns the number of segments appended so far.
func (b *TimelineBuilder) Len() int {
	return len(b.segments)
}

// Timeline returns a copy of the accumulated segments.
func (b *TimelineBuilder) Timeline() Timeline {
	out := make(Timeline, len(b.segments))
	copy(out, b.segments)
	return out
}
