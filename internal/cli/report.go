package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/reports"
)

func newReportCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		fileFlag  string
		entryFlag string
		jsonFlag  bool
		saveFlag  bool
		window    windowFlags
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the trigger intervals of every entry in a workbook.",
		Long:  "report pairs dis: and res: markers into closed intervals per entry, bounded by --start/--end or by each entry's own recorded span with --auto.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(fileFlag); err != nil {
				return err
			}
			w, err := window.resolve()
			if err != nil {
				return err
			}

			wb, err := readWorkbook(ctx, a, fileFlag)
			if err != nil {
				return err
			}
			entities, err := selectEntities(wb, entryFlag)
			if err != nil {
				return err
			}
			if len(entities) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries found in %s\n", wb.Path)
				return nil
			}

			results, err := reports.ComputeAll(ctx, entities, w)
			if err != nil {
				return err
			}

			if useJSON(jsonFlag, a.cfg) {
				if entryFlag != "" {
					if results[0].Err != nil {
						return fmt.Errorf("entry %s: %w", entryFlag, results[0].Err)
					}
					if err := printJSON(cmd, results[0].Report); err != nil {
						return err
					}
				} else if err := printJSON(cmd, reports.Document(results)); err != nil {
					return err
				}
			} else {
				printResultsText(cmd, results)
			}

			if saveFlag {
				data, err := reports.MarshalIndent(reports.Document(results))
				if err != nil {
					return err
				}
				path, err := a.manager.WriteReport(windowLabel(w), data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved report to %s\n", path)
			}

			if failed := reports.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d entr%s failed", failed, len(results), plural(len(results)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Workbook to read (.xlsx or .csv)")
	cmd.Flags().StringVar(&entryFlag, "entry", "", "Only report this entry id")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of tables")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "Also write the JSON document under the hari home directory")
	window.register(cmd)

	return cmd
}
