package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/core/staff"
	"github.com/example/empdir/internal/wire"
)

// ViewCmd returns the view command
func ViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [list|table]",
		Short: "Show or switch the listing view mode",
		Long: `Show or switch the display density used by list and search.

With no argument, prints the current mode. The choice is persisted with
the directory and survives restarts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := wire.Directory()

			if len(args) == 0 {
				fmt.Printf("View mode: %s\n", dir.ViewMode())
				return nil
			}

			mode := staff.ViewMode(args[0])
			if args[0] != string(staff.ViewModeList) && args[0] != string(staff.ViewModeTable) {
				return fmt.Errorf("unknown view mode: %s\nValid modes: list, table", args[0])
			}

			dir.SetViewMode(mode)
			fmt.Printf("%s View mode set to %s\n", checkmark(), dir.ViewMode())
			return nil
		},
	}

	return cmd
}
