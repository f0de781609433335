package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/wire"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one employee in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := wire.Directory().ByID(args[0])
			if !ok {
				return fmt.Errorf("employee %s not found", args[0])
			}

			fmt.Printf("%s (%s)\n", e.FullName(), e.ID)
			fmt.Printf("  Email:              %s\n", e.Email)
			fmt.Printf("  Phone:              %s\n", e.Phone)
			fmt.Printf("  Department:         %s\n", e.Department)
			fmt.Printf("  Position:           %s\n", e.Position)
			fmt.Printf("  Date of Employment: %s\n", e.DateOfEmployment)
			if e.DateOfBirth != "" {
				fmt.Printf("  Date of Birth:      %s\n", e.DateOfBirth)
			}
			fmt.Printf("  Hired:              %s\n", e.DateHired)
			return nil
		},
	}

	return cmd
}
