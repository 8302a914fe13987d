package intervals

import (
	"cmp"
	"slices"
	"time"
)

// Grouped maps a calendar day to the markers recorded on it, in chronological order.
type Grouped map[time.Time][]Marker

// Days returns the grouped days in ascending order.
func (g Grouped) Days() []time.Time {
	days := make([]time.Time, 0, len(g))
	for day := range g {
		days = append(days, day)
	}
	slices.SortFunc(days, time.Time.Compare)
	return days
}

// Markers returns the number of markers across all days.
func (g Grouped) Markers() int {
	total := 0
	for _, markers := range g {
		total += len(markers)
	}
	return total
}

func (g Grouped) clone() Grouped {
	out := make(Grouped, len(g))
	for day, markers := range g {
		out[day] = slices.Clone(markers)
	}
	return out
}

// Group sorts events by (date, time, id) and buckets their markers per day.
// Records that carry neither token are dropped. The input slice is not modified.
func Group(events []RawEvent) Grouped {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b RawEvent) int {
		if c := Day(a.Date).Compare(Day(b.Date)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Time, b.Time); c != 0 {
			return c
		}
		return CompareIDs(a.ID, b.ID)
	})

	grouped := make(Grouped)
	for _, event := range sorted {
		marker, ok := Classify(event.Text)
		if !ok {
			continue
		}
		day := Day(event.Date)
		grouped[day] = append(grouped[day], marker)
	}
	return grouped
}
