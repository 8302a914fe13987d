package intervals

import "slices"

// Summarize synthesizes boundary markers at the window edges and emits one
// DaySummary per grouped day inside the window, in ascending order.
//
// Days without records never appear in the output, so an interval measures
// elapsed calendar time between two recorded days rather than coverage.
func Summarize(g Grouped, w Window) ([]DaySummary, error) {
	w = Window{Start: Day(w.Start), End: Day(w.End)}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	grouped := g.clone()

	startMarkers := grouped[w.Start]
	if len(startMarkers) == 0 || startMarkers[0] != MarkerStart {
		grouped[w.Start] = append([]Marker{MarkerStart}, startMarkers...)
	}

	endMarkers := grouped[w.End]
	if len(endMarkers) == 0 || endMarkers[len(endMarkers)-1] != MarkerStop {
		grouped[w.End] = append(endMarkers, MarkerStop)
	}

	days := grouped.Days()
	summaries := make([]DaySummary, 0, len(days))
	for _, day := range days {
		if day.Before(w.Start) {
			continue
		}
		if day.After(w.End) {
			break
		}
		markers := grouped[day]
		summaries = append(summaries, DaySummary{
			Date:          day,
			ContainsStart: slices.Contains(markers, MarkerStart),
			EndsWithStop:  markers[len(markers)-1] == MarkerStop,
		})
	}
	return summaries, nil
}
