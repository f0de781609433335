package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/ports/primary"
	"github.com/example/empdir/internal/validate"
	"github.com/example/empdir/internal/wire"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new employee",
		Long: `Add a new employee to the directory.

The record is validated before it is stored; the id and hire date are
assigned automatically.

Examples:
  empdir add --first John --last Doe --email john@x.com \
    --phone "+90 532 123 45 67" --department Tech --position Senior \
    --employed 2023-01-01 --born 1990-05-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := inputFromFlags(cmd)

			dir := wire.Directory()
			if errs := validate.Employee(in, "", dir); len(errs) > 0 {
				return renderValidationErrors(errs)
			}

			e := dir.Add(in)
			fmt.Printf("%s Added employee %s: %s\n", checkmark(), e.ID, e.FullName())
			return nil
		},
	}

	addEmployeeFlags(cmd)
	return cmd
}

// addEmployeeFlags registers the shared record flags used by add and edit.
func addEmployeeFlags(cmd *cobra.Command) {
	cmd.Flags().String("first", "", "first name")
	cmd.Flags().String("last", "", "last name")
	cmd.Flags().String("email", "", "email address (unique)")
	cmd.Flags().String("phone", "", "mobile number, e.g. +90 532 123 45 67")
	cmd.Flags().String("department", "", "department (Analytics or Tech)")
	cmd.Flags().String("position", "", "position (Junior, Medior or Senior)")
	cmd.Flags().String("employed", "", "date of employment (YYYY-MM-DD)")
	cmd.Flags().String("born", "", "date of birth (YYYY-MM-DD, optional)")
}

func inputFromFlags(cmd *cobra.Command) primary.EmployeeInput {
	first, _ := cmd.Flags().GetString("first")
	last, _ := cmd.Flags().GetString("last")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	department, _ := cmd.Flags().GetString("department")
	position, _ := cmd.Flags().GetString("position")
	employed, _ := cmd.Flags().GetString("employed")
	born, _ := cmd.Flags().GetString("born")

	return primary.EmployeeInput{
		FirstName:        first,
		LastName:         last,
		Email:            email,
		Phone:            phone,
		Department:       department,
		Position:         position,
		DateOfEmployment: employed,
		DateOfBirth:      born,
	}
}
