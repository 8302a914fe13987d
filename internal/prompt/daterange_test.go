package prompt

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(m DateRange, text string) DateRange {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(DateRange)
}

func press(m DateRange, keyType tea.KeyType) (DateRange, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return next.(DateRange), cmd
}

func TestDateRangeConfirmsValidWindow(t *testing.T) {
	m := NewDateRange("", "")

	m = typeText(m, "2024-04-10")
	m, _ = press(m, tea.KeyEnter)
	if m.focus != fieldEnd {
		t.Fatalf("focus = %d after first enter, want end field", m.focus)
	}
	m = typeText(m, "2024-04-14")
	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("expected quit command after confirming")
	}

	w, err := m.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if w.String() != "2024-04-10..2024-04-14" {
		t.Fatalf("window = %s, want 2024-04-10..2024-04-14", w)
	}
}

func TestDateRangeRejectsInvalidInput(t *testing.T) {
	m := NewDateRange("2024-04-14", "2024-04-10")

	m, _ = press(m, tea.KeyEnter)
	if !strings.Contains(m.errorLine, "Invalid date range") {
		t.Fatalf("errorLine = %q, want inverted range message", m.errorLine)
	}
	if _, err := m.Result(); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Result err = %v, want ErrCancelled before confirmation", err)
	}
	if !strings.Contains(m.View(), "Invalid date range") {
		t.Fatalf("View missing error line")
	}

	m = NewDateRange("2024-04-10", "")
	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyEnter)
	if m.errorLine != "Both dates are required." {
		t.Fatalf("errorLine = %q, want required message", m.errorLine)
	}

	m = NewDateRange("10/04/2024", "2024-04-10")
	m, _ = press(m, tea.KeyEnter)
	if !strings.Contains(m.errorLine, "malformed date") {
		t.Fatalf("errorLine = %q, want malformed date", m.errorLine)
	}
}

func TestDateRangeFocusWraps(t *testing.T) {
	m := NewDateRange("", "")
	m, _ = press(m, tea.KeyShiftTab)
	if m.focus != fieldEnd {
		t.Fatalf("focus = %d after shift+tab, want end field", m.focus)
	}
	m, _ = press(m, tea.KeyTab)
	if m.focus != fieldStart {
		t.Fatalf("focus = %d after tab, want start field", m.focus)
	}
}

func TestDateRangeCancel(t *testing.T) {
	m := NewDateRange("2024-04-10", "2024-04-14")
	m, cmd := press(m, tea.KeyEsc)
	if cmd == nil {
		t.Fatalf("expected quit command on esc")
	}
	if _, err := m.Result(); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Result err = %v, want ErrCancelled", err)
	}
}
