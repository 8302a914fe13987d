package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/intervals"
)

func newDaysCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		fileFlag  string
		entryFlag string
		window    windowFlags
	)

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Show the per-day marker summary for one entry.",
		Long:  "days prints the dates that feed the interval pairing for an entry, including the boundary markers synthesized at the window edges.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(fileFlag); err != nil {
				return err
			}
			if entryFlag == "" {
				return fmt.Errorf("--entry is required")
			}
			w, err := window.resolve()
			if err != nil {
				return err
			}

			wb, err := readWorkbook(ctx, a, fileFlag)
			if err != nil {
				return err
			}
			entity, ok := wb.Entity(entryFlag)
			if !ok {
				return fmt.Errorf("entry %s not found in %s", entryFlag, wb.Path)
			}
			if entity.Err != nil {
				return fmt.Errorf("entry %s: %w", entryFlag, entity.Err)
			}

			out := cmd.OutOrStdout()
			grouped := intervals.Group(entity.Events)
			if w == nil {
				auto, ok := intervals.WindowOf(grouped)
				if !ok {
					fmt.Fprintf(out, "Entry %s has no markers\n", entryFlag)
					return nil
				}
				w = &auto
			}

			days, err := intervals.Summarize(grouped, *w)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Entry %s: %s\n", entryFlag, w)
			for _, d := range days {
				fmt.Fprintf(out, "%s  start=%-5t  ends-with-stop=%-5t  %v\n",
					d.Date.Format(intervals.DateLayout), d.ContainsStart, d.EndsWithStop, grouped[d.Date])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Workbook to read (.xlsx or .csv)")
	cmd.Flags().StringVar(&entryFlag, "entry", "", "Entry id to inspect")
	window.register(cmd)

	return cmd
}
