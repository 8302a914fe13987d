package intervals

import "errors"

// ErrMalformedDate is returned when a date string cannot be parsed as YYYY-MM-DD.
var ErrMalformedDate = errors.New("malformed date")

// ErrInvertedRange indicates an observation window whose start falls after its end.
var ErrInvertedRange = errors.New("start date is after end date")
