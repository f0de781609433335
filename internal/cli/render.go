package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/empdir/internal/core/pagination"
	"github.com/example/empdir/internal/core/staff"
	"github.com/example/empdir/internal/ports/primary"
	"github.com/example/empdir/internal/validate"
)

// renderEmployees prints a page of employees in the directory's current
// view mode: a dense table or a block list.
func renderEmployees(employees []*primary.Employee, mode staff.ViewMode) {
	if len(employees) == 0 {
		fmt.Println("No employees found.")
		return
	}
	if mode == staff.ViewModeTable {
		renderTable(employees)
		return
	}
	renderList(employees)
}

func renderTable(employees []*primary.Employee) {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tDEPARTMENT\tPOSITION\tEMPLOYED")
	for _, e := range employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.FullName(), e.Email, e.Phone, e.Department, e.Position, e.DateOfEmployment)
	}
	w.Flush()
}

func renderList(employees []*primary.Employee) {
	for i, e := range employees {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", color.New(color.Bold).Sprint(e.FullName()), e.ID)
		fmt.Printf("  %s %s, %s\n", bullet(), e.Department, e.Position)
		fmt.Printf("  %s %s / %s\n", bullet(), e.Email, e.Phone)
		fmt.Printf("  %s employed since %s\n", bullet(), e.DateOfEmployment)
	}
}

func bullet() string {
	return color.New(color.FgHiBlack).Sprint("·")
}

// renderPageFooter prints the "1 … 9 10 11 … 100" strip under a listing.
func renderPageFooter(page primary.Page, siblingCount int) {
	if page.Total == 0 {
		return
	}
	var parts []string
	for _, entry := range pagination.BuildRange(page.CurrentPage, page.PageSize, page.Total, siblingCount) {
		label := entry.String()
		if !entry.Ellipsis && entry.Page == page.CurrentPage {
			label = color.New(color.Bold, color.FgHiYellow).Sprint(label)
		}
		parts = append(parts, label)
	}
	fmt.Printf("\nPage %d/%d (%d employees)  %s\n",
		page.CurrentPage, page.TotalPages, page.Total, strings.Join(parts, " "))
}

// renderValidationErrors prints field problems in a stable order and
// returns an error suitable for RunE so the command exits nonzero.
func renderValidationErrors(errs validate.Errors) error {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n",
			color.New(color.FgRed).Sprint("✗"), field, errs[field])
	}
	return fmt.Errorf("employee record is not valid")
}

func checkmark() string {
	return color.New(color.FgGreen).Sprint("✓")
}
