package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/hari/internal/intervals"
)

// ErrCancelled is returned when the user leaves a prompt without confirming.
var ErrCancelled = errors.New("prompt cancelled")

const (
	fieldStart = iota
	fieldEnd
	fieldCount
)

type dateRangeKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (k dateRangeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}

func (k dateRangeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultDateRangeKeys = dateRangeKeys{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// DateRange asks for the start and end of the observation window.
type DateRange struct {
	inputs [fieldCount]textinput.Model
	focus  int
	keys   dateRangeKeys
	help   help.Model

	errorLine string
	window    intervals.Window
	done      bool
	cancelled bool
}

// NewDateRange seeds the prompt with optional initial values.
func NewDateRange(start, end string) DateRange {
	m := DateRange{
		keys: defaultDateRangeKeys,
		help: help.New(),
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = "YYYY-MM-DD"
		in.CharLimit = len(intervals.DateLayout)
		in.Width = len(intervals.DateLayout) + 1
		m.inputs[i] = in
	}
	m.inputs[fieldStart].SetValue(start)
	m.inputs[fieldEnd].SetValue(end)
	m.inputs[fieldStart].Focus()
	return m
}

// Init starts the cursor blinking.
func (m DateRange) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles navigation between the two fields and validation on submit.
func (m DateRange) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m DateRange) setFocus(index int) (tea.Model, tea.Cmd) {
	index = (index + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = index
	return m, m.inputs[m.focus].Focus()
}

func (m DateRange) submit() (tea.Model, tea.Cmd) {
	if m.focus == fieldStart && m.value(fieldEnd) == "" {
		return m.setFocus(fieldEnd)
	}

	start, end := m.value(fieldStart), m.value(fieldEnd)
	if start == "" || end == "" {
		m.errorLine = "Both dates are required."
		return m, nil
	}

	w, err := intervals.NewWindow(start, end)
	if err != nil {
		m.errorLine = fmt.Sprintf("Invalid date range: %v", err)
		return m, nil
	}

	m.window = w
	m.done = true
	m.errorLine = ""
	return m, tea.Quit
}

func (m DateRange) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// Result returns the confirmed window, or ErrCancelled.
func (m DateRange) Result() (intervals.Window, error) {
	if m.cancelled || !m.done {
		return intervals.Window{}, ErrCancelled
	}
	return m.window, nil
}

// View renders both fields, any validation error and the key help.
func (m DateRange) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Observation window"))
	b.WriteByte('\n')

	labels := [fieldCount]string{"Start date", "End date"}
	for i, in := range m.inputs {
		label := labelStyle.Render(labels[i])
		if i == m.focus {
			label = focusStyle.Render(labelStyle.Render(labels[i]))
		}
		b.WriteString(label)
		b.WriteString(in.View())
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteByte('\n')
		b.WriteString(errorStyle.Render(m.errorLine))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

// RunDateRange runs the prompt until the user confirms or cancels.
func RunDateRange(ctx context.Context, start, end string, opts ...tea.ProgramOption) (intervals.Window, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(NewDateRange(start, end), opts...).Run()
	if err != nil {
		return intervals.Window{}, fmt.Errorf("run date prompt: %w", err)
	}
	return final.(DateRange).Result()
}
