package intervals

import (
	"encoding/json"
	"fmt"
)

// Report aggregates the closed intervals computed for one entity.
type Report struct {
	TotalDays int
	Events    []Interval
}

// Assemble packages reducer output into a Report.
func Assemble(events []Interval, total int) Report {
	if events == nil {
		events = []Interval{}
	}
	return Report{TotalDays: total, Events: events}
}

// Compute runs the full pipeline for one entity over an explicit window.
// An entity without any classifiable record yields an empty report.
func Compute(events []RawEvent, w Window) (Report, error) {
	if err := w.Validate(); err != nil {
		return Report{}, err
	}
	grouped := Group(events)
	if len(grouped) == 0 {
		return Assemble(nil, 0), nil
	}
	return computeGrouped(grouped, w)
}

// ComputeAuto runs the pipeline over the entity's own first..last recorded day.
func ComputeAuto(events []RawEvent) (Report, Window, error) {
	grouped := Group(events)
	w, ok := WindowOf(grouped)
	if !ok {
		return Assemble(nil, 0), Window{}, nil
	}
	report, err := computeGrouped(grouped, w)
	return report, w, err
}

func computeGrouped(grouped Grouped, w Window) (Report, error) {
	days, err := Summarize(grouped, w)
	if err != nil {
		return Report{}, fmt.Errorf("summarize: %w", err)
	}
	return Assemble(Reduce(days)), nil
}

type intervalJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

type reportJSON struct {
	TotalDays int            `json:"totalDays"`
	Events    []intervalJSON `json:"events"`
}

// MarshalJSON renders the interval with YYYY-MM-DD dates.
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{
		Start: i.Start.Format(DateLayout),
		End:   i.End.Format(DateLayout),
		Days:  i.Days,
	})
}

// MarshalJSON renders the report in its exchange shape; events is never null.
func (r Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		TotalDays: r.TotalDays,
		Events:    make([]intervalJSON, 0, len(r.Events)),
	}
	for _, e := range r.Events {
		out.Events = append(out.Events, intervalJSON{
			Start: e.Start.Format(DateLayout),
			End:   e.End.Format(DateLayout),
			Days:  e.Days,
		})
	}
	return json.Marshal(out)
}
