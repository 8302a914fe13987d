package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/config"
	"github.com/faizmokh/hari/internal/files"
	"github.com/faizmokh/hari/internal/logging"
	"github.com/faizmokh/hari/internal/sheet"
)

var fixtureRows = [][]string{
	sheet.TemplateHeader,
	{"1", "10-04-2024", "08:00", "plc", "alarm", "Ent(7) dis: pump tripped"},
	{"2", "14-04-2024", "17:00", "plc", "alarm", "Ent(7) res: pump restored"},
	{"3", "10-04-2024", "09:00", "plc", "alarm", "Ent(3) DIS: fan"},
	{"4", "10-04-2024", "10:00", "plc", "alarm", "Ent(3) RES: fan"},
	{"5", "01-05-2024", "08:00", "plc", "alarm", "Ent(3) dis: fan again"},
	{"6", "03-05-2024", "08:00", "plc", "alarm", "Ent(3) res: fan again"},
	{"7", "02-05-2024", "08:00", "plc", "note", "shift change"},
}

type reportDTO struct {
	TotalDays int `json:"totalDays"`
	Events    []struct {
		Start string `json:"start"`
		End   string `json:"end"`
		Days  int    `json:"days"`
	} `json:"events"`
}

func TestReportWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	path := writeFixture(t, "events.xlsx", fixtureRows)

	// 1. Discover the entries in the workbook.
	entriesOut := executeCommand(t, newEntriesCommand(ctx, a), "--file", path)
	assertContains(t, entriesOut, "2024-04-10..2024-05-03")
	assertContains(t, entriesOut, "2024-04-10..2024-04-14")
	assertContains(t, entriesOut, "2 entries, 7 rows, 1 without an entry id")

	// 2. Text report over an explicit window.
	textOut := executeCommand(t, newReportCommand(ctx, a),
		"--file", path,
		"--start", "2024-04-10",
		"--end", "2024-05-03",
	)
	assertContains(t, textOut, "Entry 3: 2024-04-10..2024-05-03")
	assertContains(t, textOut, "Total: 4 days")
	assertContains(t, textOut, "Entry 7: 2024-04-10..2024-05-03")
	assertContains(t, textOut, "Total: 5 days")
	if strings.Index(textOut, "Entry 3") > strings.Index(textOut, "Entry 7") {
		t.Fatalf("entries out of order:\n%s", textOut)
	}

	// 3. JSON for a single entry keeps the exchange shape.
	jsonOut := executeCommand(t, newReportCommand(ctx, a),
		"--file", path,
		"--entry", "7",
		"--start", "2024-04-10",
		"--end", "2024-04-14",
		"--json",
	)
	var single reportDTO
	if err := json.Unmarshal([]byte(jsonOut), &single); err != nil {
		t.Fatalf("json.Unmarshal(%q): %v", jsonOut, err)
	}
	if single.TotalDays != 5 || len(single.Events) != 1 ||
		single.Events[0].Start != "2024-04-10" || single.Events[0].End != "2024-04-14" || single.Events[0].Days != 5 {
		t.Fatalf("unexpected report: %+v", single)
	}

	// 4. Inspect the day summaries behind entry 3.
	daysOut := executeCommand(t, newDaysCommand(ctx, a), "--file", path, "--entry", "3", "--auto")
	assertContains(t, daysOut, "Entry 3: 2024-04-10..2024-05-03")
	assertContains(t, daysOut, "2024-04-10  start=true   ends-with-stop=true   [start stop]")
	assertContains(t, daysOut, "2024-05-01  start=true   ends-with-stop=false  [start]")
	assertNotContains(t, daysOut, "2024-05-02")

	// 5. Save the automatic-window document.
	autoOut := executeCommand(t, newReportCommand(ctx, a), "--file", path, "--auto", "--json", "--save")
	var doc []struct {
		Entry  string    `json:"entry"`
		Start  string    `json:"start"`
		End    string    `json:"end"`
		Report reportDTO `json:"report"`
	}
	if err := json.Unmarshal([]byte(autoOut), &doc); err != nil {
		t.Fatalf("json.Unmarshal(%q): %v", autoOut, err)
	}
	if len(doc) != 2 || doc[0].Entry != "3" || doc[0].Report.TotalDays != 4 || doc[1].End != "2024-04-14" {
		t.Fatalf("unexpected document: %+v", doc)
	}

	saved, err := os.ReadFile(a.manager.ReportPath("auto"))
	if err != nil {
		t.Fatalf("ReadFile saved report: %v", err)
	}
	if string(saved) != autoOut {
		t.Fatalf("saved report differs from printed output")
	}
}

func TestReportFlagValidation(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	path := writeFixture(t, "events.csv", fixtureRows)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing file", args: []string{"--auto"}, want: "--file is required"},
		{name: "missing end", args: []string{"--file", path, "--start", "2024-04-10"}, want: "both --start and --end are required"},
		{name: "auto with bounds", args: []string{"--file", path, "--auto", "--start", "2024-04-10"}, want: "--auto cannot be combined"},
		{name: "malformed bound", args: []string{"--file", path, "--start", "2024/04/10", "--end", "2024-04-14"}, want: "malformed date"},
		{name: "inverted", args: []string{"--file", path, "--start", "2024-04-14", "--end", "2024-04-10"}, want: "start date is after end date"},
		{name: "unknown entry", args: []string{"--file", path, "--auto", "--entry", "99"}, want: "entry 99 not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := executeCommandErr(t, newReportCommand(ctx, a), tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want substring %q", err, tc.want)
			}
		})
	}
}

func TestReportMalformedEntryFailsAfterPrinting(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	rows := append([][]string{}, fixtureRows...)
	rows = append(rows, []string{"8", "32-04-2024", "08:00", "plc", "alarm", "Ent(7) res: late"})
	path := writeFixture(t, "events.csv", rows)

	out, err := executeCommandErr(t, newReportCommand(ctx, a), "--file", path, "--auto")
	if err == nil || !strings.Contains(err.Error(), "1 of 2 entries failed") {
		t.Fatalf("err = %v, want one failed entry", err)
	}
	assertContains(t, out, "Entry 3: 2024-04-10..2024-05-03")
	assertContains(t, out, "Entry 7: error: row 9: malformed date")
}

func TestReportUsesConfiguredJSONFormat(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)
	a.cfg.Output.Format = config.FormatJSON
	path := writeFixture(t, "events.csv", fixtureRows)

	out := executeCommand(t, newReportCommand(ctx, a), "--file", path, "--auto", "--entry", "3")
	var report reportDTO
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("json.Unmarshal(%q): %v", out, err)
	}
	if report.TotalDays != 4 || len(report.Events) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestTemplateCommand(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "template.xlsx")

	out := executeCommand(t, newTemplateCommand(a), path)
	assertContains(t, out, "Wrote template to "+path)

	if _, err := executeCommandErr(t, newTemplateCommand(a), path); err == nil {
		t.Fatalf("second template succeeded, want already exists error")
	}
	executeCommand(t, newTemplateCommand(a), "--force", path)

	if _, err := executeCommandErr(t, newEntriesCommand(context.Background(), a), "--file", path); err == nil ||
		!strings.Contains(err.Error(), "no data rows") {
		t.Fatalf("entries on template err = %v, want no data rows", err)
	}
}

func TestConfigCommands(t *testing.T) {
	a := newTestApp(t)

	pathOut := executeCommand(t, newConfigCommand(a), "path")
	assertContains(t, pathOut, a.manager.ConfigPath())

	initOut := executeCommand(t, newConfigCommand(a), "init")
	assertContains(t, initOut, "Wrote "+a.manager.ConfigPath())

	loaded, err := config.Load(a.manager.ConfigPath())
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if loaded.Sheet.Columns.Text != 5 {
		t.Fatalf("written config text column = %d, want 5", loaded.Sheet.Columns.Text)
	}

	showOut := executeCommand(t, newConfigCommand(a), "show")
	assertContains(t, showOut, "entry_pattern:")
	assertContains(t, showOut, "format: text")
}

func TestVersionCommand(t *testing.T) {
	out := executeCommand(t, newVersionCommand())
	assertContains(t, out, "hari ")
	assertContains(t, out, "(commit none, built unknown)")
}

func TestRootCommandWiring(t *testing.T) {
	a := newTestApp(t)

	help := executeCommand(t, newRootCommand(context.Background(), a), "--help")
	for _, sub := range []string{"report", "entries", "days", "template", "config", "version"} {
		assertContains(t, help, sub)
	}

	executeCommand(t, newRootCommand(context.Background(), a), "--log-level", "debug", "version")
	if got := a.logger.GetLevel().String(); got != "debug" {
		t.Fatalf("logger level = %q, want debug", got)
	}

	_, err := executeCommandErr(t, newRootCommand(context.Background(), a), "--log-level", "loud", "version")
	if err == nil || !strings.Contains(err.Error(), "parse log level") {
		t.Fatalf("err = %v, want parse log level error", err)
	}
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := executeCommandErr(t, cmd, args...)
	if err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return buf.String(), err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return &app{
		manager: mgr,
		cfg:     config.DefaultConfig(),
		logger:  logging.Discard(),
	}
}

func writeFixture(t *testing.T, name string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := sheet.WriteRows(path, rows); err != nil {
		t.Fatalf("WriteRows: %v", err)
	}
	return path
}
