package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/wire"
)

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := wire.Directory()

			e, ok := dir.ByID(args[0])
			if !ok {
				return fmt.Errorf("employee %s not found", args[0])
			}

			dir.Remove(e.ID)
			fmt.Printf("%s Deleted employee %s: %s\n", checkmark(), e.ID, e.FullName())
			return nil
		},
	}

	return cmd
}
