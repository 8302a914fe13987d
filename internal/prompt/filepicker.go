package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// WorkbookTypes are the extensions the picker offers.
var WorkbookTypes = []string{".xlsx", ".csv"}

// FilePicker lets the user browse to an event workbook.
type FilePicker struct {
	picker    filepicker.Model
	selected  string
	errorLine string
	cancelled bool
}

// NewFilePicker starts browsing at dir.
func NewFilePicker(dir string) FilePicker {
	fp := filepicker.New()
	fp.AllowedTypes = WorkbookTypes
	fp.CurrentDirectory = dir
	fp.ShowPermissions = false
	return FilePicker{picker: fp}
}

// Init reads the starting directory.
func (m FilePicker) Init() tea.Cmd {
	return m.picker.Init()
}

// Update forwards navigation to the picker and stops once a file is chosen.
func (m FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selected = path
		return m, tea.Quit
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.errorLine = fmt.Sprintf("%s is not a workbook (%s).", path, strings.Join(WorkbookTypes, ", "))
		return m, cmd
	}
	return m, cmd
}

// Result returns the chosen path, or ErrCancelled.
func (m FilePicker) Result() (string, error) {
	if m.cancelled || m.selected == "" {
		return "", ErrCancelled
	}
	return m.selected, nil
}

// View renders the directory listing.
func (m FilePicker) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select an event workbook"))
	b.WriteByte('\n')
	b.WriteString(m.picker.View())
	b.WriteByte('\n')
	if m.errorLine != "" {
		b.WriteString(errorStyle.Render(m.errorLine))
		b.WriteByte('\n')
	}
	b.WriteString(labelStyle.Render("q to cancel"))
	b.WriteByte('\n')
	return b.String()
}

// RunFilePicker runs the picker rooted at dir until a file is chosen.
func RunFilePicker(ctx context.Context, dir string, opts ...tea.ProgramOption) (string, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(NewFilePicker(dir), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("run file picker: %w", err)
	}
	return final.(FilePicker).Result()
}
