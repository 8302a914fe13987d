package intervals

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for windows and report output.
const DateLayout = "2006-01-02"

// RawEvent is a single timestamped record belonging to one entity.
type RawEvent struct {
	ID   string
	Date time.Time
	Time time.Duration
	Text string
}

// DaySummary flags what a single day contributes to the interval reducer.
type DaySummary struct {
	Date          time.Time
	ContainsStart bool
	EndsWithStop  bool
}

// Interval is a closed, inclusive date range.
type Interval struct {
	Start time.Time
	End   time.Time
	Days  int
}

// Day truncates t to its calendar day, expressed as midnight UTC. All dates
// handled by this package go through Day so they compare and hash consistently.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a normalized day.
func ParseDay(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrMalformedDate, value, err)
	}
	return Day(parsed), nil
}

// daysBetween counts calendar days from a to b; both must be normalized days.
// Unix seconds keep spans beyond time.Duration's ~292 years exact.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// CompareIDs orders record or entry identifiers numerically when both are
// integers and lexically otherwise.
func CompareIDs(a, b string) int {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	if aErr == nil && bErr == nil {
		return cmp.Compare(ai, bi)
	}
	return strings.Compare(a, b)
}
