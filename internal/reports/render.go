package reports

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/faizmokh/hari/internal/intervals"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = cellStyle.Reverse(true)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTable draws the report's intervals; selected highlights one row (-1
// for none). An empty report renders as "(no intervals)".
func RenderTable(report intervals.Report, selected int) string {
	if len(report.Events) == 0 {
		return "(no intervals)\nTotal: 0 days\n"
	}

	rows := make([][]string, 0, len(report.Events))
	for i, e := range report.Events {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Start.Format(intervals.DateLayout),
			e.End.Format(intervals.DateLayout),
			strconv.Itoa(e.Days),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Start", "End", "Days").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == selected:
				return selectedStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total: %d day%s\n", report.TotalDays, pluralS(report.TotalDays))
	return b.String()
}

// Entry is the JSON form of a Result inside a multi-entity document.
type Entry struct {
	Entry  string            `json:"entry"`
	Start  string            `json:"start,omitempty"`
	End    string            `json:"end,omitempty"`
	Report *intervals.Report `json:"report,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// Document converts results to their JSON form, preserving order.
func Document(results []Result) []Entry {
	out := make([]Entry, 0, len(results))
	for _, r := range results {
		entry := Entry{Entry: r.EntryID}
		if !r.Window.Start.IsZero() {
			entry.Start = r.Window.Start.Format(intervals.DateLayout)
			entry.End = r.Window.End.Format(intervals.DateLayout)
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		} else {
			report := r.Report
			entry.Report = &report
		}
		out = append(out, entry)
	}
	return out
}

// MarshalIndent renders v as indented JSON with a trailing newline.
func MarshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
