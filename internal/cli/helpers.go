package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/config"
	"github.com/faizmokh/hari/internal/intervals"
	"github.com/faizmokh/hari/internal/reports"
	"github.com/faizmokh/hari/internal/sheet"
)

// windowFlags are shared by every command that computes reports.
type windowFlags struct {
	start string
	end   string
	auto  bool
}

func (f *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "Window start in YYYY-MM-DD")
	cmd.Flags().StringVar(&f.end, "end", "", "Window end in YYYY-MM-DD")
	cmd.Flags().BoolVar(&f.auto, "auto", false, "Use each entry's first..last recorded day as its window")
}

// resolve returns nil for the per-entry automatic window.
func (f *windowFlags) resolve() (*intervals.Window, error) {
	start := strings.TrimSpace(f.start)
	end := strings.TrimSpace(f.end)

	if f.auto {
		if start != "" || end != "" {
			return nil, fmt.Errorf("--auto cannot be combined with --start/--end")
		}
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("both --start and --end are required (or pass --auto)")
	}

	w, err := intervals.NewWindow(start, end)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func windowLabel(w *intervals.Window) string {
	if w == nil {
		return "auto"
	}
	return w.Start.Format(intervals.DateLayout) + "_" + w.End.Format(intervals.DateLayout)
}

func requireFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("--file is required")
	}
	return nil
}

func readWorkbook(ctx context.Context, a *app, path string) (sheet.Workbook, error) {
	reader, err := sheet.NewReader(a.cfg.Sheet, a.logger)
	if err != nil {
		return sheet.Workbook{}, err
	}
	return reader.Read(ctx, path)
}

func selectEntities(wb sheet.Workbook, entry string) ([]sheet.Entity, error) {
	if entry == "" {
		return wb.Entities, nil
	}
	e, ok := wb.Entity(entry)
	if !ok {
		return nil, fmt.Errorf("entry %s not found in %s", entry, wb.Path)
	}
	return []sheet.Entity{e}, nil
}

func useJSON(flag bool, cfg *config.Config) bool {
	return flag || cfg.Output.Format == config.FormatJSON
}

func printResultsText(cmd *cobra.Command, results []reports.Result) {
	out := cmd.OutOrStdout()
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if r.Err != nil {
			fmt.Fprintf(out, "Entry %s: error: %v\n", r.EntryID, r.Err)
			continue
		}
		if r.Window.Start.IsZero() {
			fmt.Fprintf(out, "Entry %s: no markers\n", r.EntryID)
		} else {
			fmt.Fprintf(out, "Entry %s: %s\n", r.EntryID, r.Window)
		}
		fmt.Fprint(out, reports.RenderTable(r.Report, -1))
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := reports.MarshalIndent(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
