package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/config"
	"github.com/example/empdir/internal/db"
	"github.com/example/empdir/internal/version"
	"github.com/example/empdir/internal/wire"
)

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the empdir environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.String())

			dbPath, err := db.GetDBPath()
			if err == nil {
				status := "missing (created on first write)"
				if _, statErr := os.Stat(dbPath); statErr == nil {
					status = "ok"
				}
				fmt.Printf("Database: %s (%s)\n", dbPath, status)
			}

			cfg := config.LoadUserConfig()
			fmt.Printf("Page size: %d\n", cfg.EffectivePageSize())
			fmt.Printf("Sibling count: %d\n", cfg.EffectiveSiblingCount())

			dir := wire.Directory()
			fmt.Printf("Employees: %d\n", len(dir.All()))
			fmt.Printf("View mode: %s\n", dir.ViewMode())
			return nil
		},
	}

	return cmd
}
