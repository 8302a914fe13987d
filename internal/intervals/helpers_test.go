package intervals

import (
	"testing"
	"time"
)

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDay(value)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", value, err)
	}
	return d
}

func mustWindow(t *testing.T, start, end string) Window {
	t.Helper()
	w, err := NewWindow(start, end)
	if err != nil {
		t.Fatalf("NewWindow(%q, %q): %v", start, end, err)
	}
	return w
}

func event(t *testing.T, id, date, clock, text string) RawEvent {
	t.Helper()
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		t.Fatalf("time.Parse(%q): %v", clock, err)
	}
	return RawEvent{
		ID:   id,
		Date: mustDay(t, date),
		Time: time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute,
		Text: text,
	}
}
