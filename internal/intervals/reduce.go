package intervals

import "time"

type reducerState uint8

const (
	stateIdle reducerState = iota
	stateOpen
)

// Reduce pairs starts with stops across days and returns the closed intervals
// with their summed day counts.
//
// Both transitions are checked on every day, so a start and a stop on the same
// idle day produce a one-day interval. A stop while idle is ignored, as is a
// start while already open (the original open date is kept). An interval that
// is still open after the last day is dropped.
func Reduce(days []DaySummary) ([]Interval, int) {
	var (
		state     = stateIdle
		openedAt  time.Time
		intervals []Interval
		total     int
	)

	for _, day := range days {
		if state == stateIdle && day.ContainsStart {
			state = stateOpen
			openedAt = day.Date
		}

		if state == stateOpen && day.EndsWithStop {
			interval := Interval{
				Start: openedAt,
				End:   day.Date,
				Days:  daysBetween(openedAt, day.Date) + 1,
			}
			intervals = append(intervals, interval)
			total += interval.Days
			state = stateIdle
		}
	}

	return intervals, total
}
