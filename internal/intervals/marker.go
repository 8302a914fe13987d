package intervals

import "strings"

// Marker classifies an event record as the start or the stop of an interval.
type Marker uint8

const (
	// MarkerStart opens an interval.
	MarkerStart Marker = iota + 1
	// MarkerStop closes the open interval, if any.
	MarkerStop
)

const (
	// StartToken is the case-insensitive substring that marks a start record.
	StartToken = "dis:"
	// StopToken is the case-insensitive substring that marks a stop record.
	StopToken = "res:"
)

func (m Marker) String() string {
	switch m {
	case MarkerStart:
		return "start"
	case MarkerStop:
		return "stop"
	default:
		return "unknown"
	}
}

type classification struct {
	token  string
	marker Marker
}

// classifications is checked in order and the last match wins, so text that
// carries both tokens classifies as MarkerStop.
var classifications = []classification{
	{token: StartToken, marker: MarkerStart},
	{token: StopToken, marker: MarkerStop},
}

// Classify reports which marker text carries, if any.
func Classify(text string) (Marker, bool) {
	lower := strings.ToLower(text)

	var (
		found Marker
		hit   bool
	)
	for _, c := range classifications {
		if strings.Contains(lower, c.token) {
			found = c.marker
			hit = true
		}
	}
	return found, hit
}
