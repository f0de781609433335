package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/cli"
	"github.com/example/empdir/internal/db"
	"github.com/example/empdir/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "empdir",
		Short:   "empdir - local employee directory",
		Version: version.String(),
		Long: `empdir is a CLI for browsing and maintaining a local employee directory.
Records live in a single snapshot on disk; every change is persisted
immediately.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.EditCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.ViewCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.RouteCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	err := rootCmd.Execute()
	db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
