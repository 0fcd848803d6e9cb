package schedulers

import (
	"sort"

	"cpusched/internal/core"
)

type EventKind int

const (
	EventArrival EventKind = iota
	EventStart
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventArrival:
		return "arrival"
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	}
	return "unknown"
}

// Event is one step of a run: a process arriving, or a segment starting or ending.
type Event struct {
	Time      int
	Kind      EventKind
	ProcessID string
}

// BuildTrace lists the arrivals and segment boundaries of a run ordered by
// time. At equal times arrivals come before starts, and starts before ends.
func BuildTrace(records []core.ProcessRecord, timeline core.Timeline) []Event {
	events := make([]Event, 0, len(records)+2*len(timeline))
	for _, p := range records {
		events = append(events, Event{Time: p.ArrivalTime, Kind: EventArrival, ProcessID: p.ID})
	}
	for _, seg := range timeline {
		events = append(events,
			Event{Time: seg.Start, Kind: EventStart, ProcessID: seg.ProcessID},
			Event{Time: seg.End, Kind: EventEnd, ProcessID: seg.ProcessID},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Kind < events[j].Kind
	})
	return events
}
