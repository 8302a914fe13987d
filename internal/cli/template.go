package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/sheet"
)

func newTemplateCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "template <path>",
		Short: "Write an empty workbook with the expected columns.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := sheet.WriteTemplate(path); err != nil {
				return err
			}
			a.logger.Debug("wrote template", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote template to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
