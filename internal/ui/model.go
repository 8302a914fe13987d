package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/hari/internal/reports"
)

// Loader reads the workbook and computes every entity's report.
type Loader func(ctx context.Context) ([]reports.Result, error)

// Model owns Bubble Tea state for browsing computed reports, one entity at a time.
type Model struct {
	ctx    context.Context
	load   Loader
	source string

	results  []reports.Result
	current  int
	selected int
	showJSON bool

	loading    bool
	statusLine string
	errorLine  string
}

type resultsLoadedMsg struct {
	results []reports.Result
	err     error
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// NewModel seeds a Bubble Tea model with the loader for source.
func NewModel(ctx context.Context, source string, load Loader) Model {
	return Model{
		ctx:        ctx,
		load:       load,
		source:     source,
		loading:    true,
		statusLine: fmt.Sprintf("Reading %s...", source),
	}
}

// Init computes the reports.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update wires state transitions from user input and async loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case resultsLoadedMsg:
		return m.handleLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "r":
		return m.reload()
	}

	if m.loading || len(m.results) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "right", "l", "n":
		return m.gotoEntity(m.current + 1)
	case "left", "h", "p":
		return m.gotoEntity(m.current - 1)
	case "g", "home":
		return m.gotoEntity(0)
	case "G", "end":
		return m.gotoEntity(len(m.results) - 1)
	case "down", "j":
		events := m.results[m.current].Report.Events
		if m.selected < len(events)-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected interval %d of %d", m.selected+1, len(events))
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected interval %d of %d", m.selected+1, len(m.results[m.current].Report.Events))
		}
	case "J":
		m.showJSON = !m.showJSON
		if m.showJSON {
			m.statusLine = "Showing JSON."
		} else {
			m.statusLine = "Showing table."
		}
	}
	return m, nil
}

func (m Model) gotoEntity(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.results) || index == m.current {
		return m, nil
	}
	m.current = index
	m.selected = 0
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Entry %d of %d", index+1, len(m.results))
	return m, nil
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.source)
	m.errorLine = ""
	return m, m.loadCmd()
}

func (m Model) handleLoaded(msg resultsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", m.source, msg.err)
		m.statusLine = ""
		return m, nil
	}

	// Stay on the same entry across reloads when it still exists.
	currentID := ""
	if m.current < len(m.results) {
		currentID = m.results[m.current].EntryID
	}
	m.results = msg.results
	m.current = 0
	for i, r := range m.results {
		if r.EntryID == currentID {
			m.current = i
			break
		}
	}
	if m.current < len(m.results) && m.selected >= len(m.results[m.current].Report.Events) {
		m.selected = 0
	}

	m.errorLine = ""
	if failed := reports.Failed(m.results); failed > 0 {
		m.statusLine = fmt.Sprintf("Loaded %d entr%s, %d failed.", len(m.results), plural(len(m.results)), failed)
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.results), plural(len(m.results)))
	}
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	ctx := m.ctx
	return func() tea.Msg {
		results, err := load(ctx)
		return resultsLoadedMsg{results: results, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.results) == 0:
		b.WriteString("(no entries)\n")
	default:
		b.WriteString(m.body())
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Navigation: <-/h/p prev entry  ->/l/n next entry  g/G first/last  j/k select  r reload"))
	b.WriteByte('\n')
	b.WriteString(mutedStyle.Render("View: J toggle JSON  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) header() string {
	if m.loading || len(m.results) == 0 {
		return m.source
	}
	r := m.results[m.current]
	header := fmt.Sprintf("Entry %s (%d of %d)", r.EntryID, m.current+1, len(m.results))
	if !r.Window.Start.IsZero() {
		header += "  " + r.Window.String()
	}
	return header
}

func (m Model) body() string {
	r := m.results[m.current]
	if r.Err != nil {
		return errorStyle.Render(fmt.Sprintf("Report failed: %v", r.Err)) + "\n"
	}
	if m.showJSON {
		data, err := reports.MarshalIndent(r.Report)
		if err != nil {
			return errorStyle.Render(err.Error()) + "\n"
		}
		return string(data)
	}
	return reports.RenderTable(r.Report, m.selected)
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
