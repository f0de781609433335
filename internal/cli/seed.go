package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/ports/primary"
	"github.com/example/empdir/internal/seed"
	"github.com/example/empdir/internal/validate"
	"github.com/example/empdir/internal/wire"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo roster into the directory",
		Long: `Load the embedded demo roster, or a YAML roster of your own.

Seeding is idempotent: entries whose email already exists in the
directory are skipped, as are entries that fail validation.

Examples:
  empdir seed
  empdir seed --file team.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			var entries []primary.EmployeeInput
			var err error
			if file != "" {
				entries, err = seed.Load(file)
			} else {
				entries, err = seed.Roster()
			}
			if err != nil {
				return fmt.Errorf("failed to load roster: %w", err)
			}

			dir := wire.Directory()
			added, skipped := 0, 0
			for _, in := range entries {
				if len(validate.Employee(in, "", dir)) > 0 {
					skipped++
					continue
				}
				dir.Add(in)
				added++
			}

			fmt.Printf("%s Seeded %d employees (%d skipped)\n", checkmark(), added, skipped)
			return nil
		},
	}

	cmd.Flags().String("file", "", "YAML roster file to load instead of the embedded one")

	return cmd
}
