package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/ports/primary"
	"github.com/example/empdir/internal/validate"
	"github.com/example/empdir/internal/wire"
)

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit an existing employee",
		Long: `Edit an existing employee in place.

Only the flags you pass change; everything else keeps its stored value.
The merged record is validated before the update is applied, with the
employee's own email exempt from the uniqueness rule.

Examples:
  empdir edit 1716899000123 --position Senior
  empdir edit 1716899000123 --email new.address@ing.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			dir := wire.Directory()

			existing, ok := dir.ByID(id)
			if !ok {
				return fmt.Errorf("employee %s not found", id)
			}

			patch := inputFromFlags(cmd)
			merged := mergeInput(existing, patch)
			if errs := validate.Employee(merged, existing.ID, dir); len(errs) > 0 {
				return renderValidationErrors(errs)
			}

			e, ok := dir.Update(id, patch)
			if !ok {
				return fmt.Errorf("employee %s not found", id)
			}
			fmt.Printf("%s Updated employee %s: %s\n", checkmark(), e.ID, e.FullName())
			return nil
		},
	}

	addEmployeeFlags(cmd)
	return cmd
}

// mergeInput previews the record the store would hold after the patch, so
// validation sees the same merge the update will perform.
func mergeInput(existing *primary.Employee, patch primary.EmployeeInput) primary.EmployeeInput {
	patch = patch.Normalized()
	merged := primary.EmployeeInput{
		FirstName:        existing.FirstName,
		LastName:         existing.LastName,
		Email:            existing.Email,
		Phone:            existing.Phone,
		Department:       existing.Department,
		Position:         existing.Position,
		DateOfEmployment: existing.DateOfEmployment,
		DateOfBirth:      existing.DateOfBirth,
	}
	if patch.FirstName != "" {
		merged.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		merged.LastName = patch.LastName
	}
	if patch.Email != "" {
		merged.Email = patch.Email
	}
	if patch.Phone != "" {
		merged.Phone = patch.Phone
	}
	if patch.Department != "" {
		merged.Department = patch.Department
	}
	if patch.Position != "" {
		merged.Position = patch.Position
	}
	if patch.DateOfEmployment != "" {
		merged.DateOfEmployment = patch.DateOfEmployment
	}
	if patch.DateOfBirth != "" {
		merged.DateOfBirth = patch.DateOfBirth
	}
	return merged
}
