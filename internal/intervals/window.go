package intervals

import (
	"fmt"
	"time"
)

// Window is the inclusive observation range [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow parses both bounds as YYYY-MM-DD and rejects inverted ranges.
func NewWindow(start, end string) (Window, error) {
	s, err := ParseDay(start)
	if err != nil {
		return Window{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseDay(end)
	if err != nil {
		return Window{}, fmt.Errorf("end: %w", err)
	}
	w := Window{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate reports ErrInvertedRange when Start is after End.
func (w Window) Validate() error {
	if Day(w.Start).After(Day(w.End)) {
		return fmt.Errorf("%w: %s > %s", ErrInvertedRange,
			w.Start.Format(DateLayout), w.End.Format(DateLayout))
	}
	return nil
}

// Contains reports whether day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(w.Start) && !day.After(w.End)
}

func (w Window) String() string {
	return w.Start.Format(DateLayout) + ".." + w.End.Format(DateLayout)
}

// WindowOf spans the first through last day present in g. It returns false
// when g is empty.
func WindowOf(g Grouped) (Window, bool) {
	days := g.Days()
	if len(days) == 0 {
		return Window{}, false
	}
	return Window{Start: days[0], End: days[len(days)-1]}, true
}
