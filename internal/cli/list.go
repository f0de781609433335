package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/config"
	"github.com/example/empdir/internal/core/pagination"
	"github.com/example/empdir/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Long: `List employees one page at a time, in the directory's current view mode.

Out-of-range page requests are clamped to the nearest valid page.

Examples:
  empdir list
  empdir list --page 3
  empdir list --search ayşe --size 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			pageSize, _ := cmd.Flags().GetInt("size")
			term, _ := cmd.Flags().GetString("search")

			cfg := config.LoadUserConfig()
			if pageSize < 1 {
				pageSize = cfg.EffectivePageSize()
			}

			dir := wire.Directory()
			items := dir.Search(term)

			pager := pagination.NewPager(pageSize, len(items), cfg.EffectiveSiblingCount())
			pager.GoTo(page)

			result := dir.Paginate(items, pager.Page(), pager.PageSize())
			renderEmployees(result.Data, dir.ViewMode())
			renderPageFooter(result, cfg.EffectiveSiblingCount())
			return nil
		},
	}

	cmd.Flags().Int("page", 1, "page to display")
	cmd.Flags().Int("size", 0, "employees per page (defaults from config)")
	cmd.Flags().StringP("search", "q", "", "filter by name, email, phone, position or department")

	return cmd
}
