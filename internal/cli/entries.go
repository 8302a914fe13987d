package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/intervals"
)

func newEntriesCommand(ctx context.Context, a *app) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List the entry ids found in a workbook.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(fileFlag); err != nil {
				return err
			}

			wb, err := readWorkbook(ctx, a, fileFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(wb.Entities) == 0 {
				fmt.Fprintf(out, "No entries found in %s\n", wb.Path)
				return nil
			}

			rows := make([][]string, 0, len(wb.Entities))
			for _, e := range wb.Entities {
				if e.Err != nil {
					rows = append(rows, []string{e.ID, strconv.Itoa(len(e.Events)), "-", "error: " + e.Err.Error()})
					continue
				}
				grouped := intervals.Group(e.Events)
				span := "-"
				if w, ok := intervals.WindowOf(grouped); ok {
					span = w.String()
				}
				rows = append(rows, []string{e.ID, strconv.Itoa(len(e.Events)), strconv.Itoa(grouped.Markers()), span})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Entry", "Records", "Markers", "Span").
				Rows(rows...)
			fmt.Fprintln(out, t.String())
			fmt.Fprintf(out, "%d entr%s, %d rows, %d without an entry id\n",
				len(wb.Entities), plural(len(wb.Entities)), wb.Rows, wb.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Workbook to read (.xlsx or .csv)")

	return cmd
}
