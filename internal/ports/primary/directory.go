// Package primary defines the primary ports (driving interfaces) for the application.
// The presentation layer talks to the directory exclusively through these.
package primary

import (
	"strings"

	"github.com/example/empdir/internal/core/staff"
)

// DirectoryService defines the primary port for the employee directory.
// It is the single source of truth for the employee collection and the
// display view mode; no other component holds a copy of either.
//
// Lookup misses are reported through sentinel returns, never errors, and
// mutations are total: malformed input is normalized or ignored.
type DirectoryService interface {
	// All returns the full collection in insertion order.
	All() []*Employee

	// ByID retrieves an employee by exact id match.
	ByID(id string) (*Employee, bool)

	// Search returns employees matching the term case-insensitively
	// against name, full name, email, phone, position and department.
	// A blank term returns the full collection.
	Search(term string) []*Employee

	// Paginate slices items into the requested page. Out-of-range pages
	// yield an empty Data slice, not an error.
	Paginate(items []*Employee, page, pageSize int) Page

	// Add stores a new employee. The id and hire date are assigned by the
	// store; values supplied by the caller for them are ignored.
	Add(in EmployeeInput) *Employee

	// Update merges the non-blank fields of patch onto the stored record.
	// The record's identity survives any patch.
	Update(id string, patch EmployeeInput) (*Employee, bool)

	// Remove deletes an employee. False means the id was not present and
	// nothing changed.
	Remove(id string) bool

	// IsEmailUnique reports whether no record other than excludeID uses
	// the exact email. A blank email never conflicts.
	IsEmailUnique(email, excludeID string) bool

	// ViewMode returns the current display mode.
	ViewMode() staff.ViewMode

	// SetViewMode switches the display mode. Unknown modes fall back to
	// the list view.
	SetViewMode(mode staff.ViewMode)

	// Subscribe registers a callback invoked synchronously after every
	// successful mutation. The returned function deregisters exactly that
	// callback and is safe to call more than once.
	Subscribe(fn func()) (unsubscribe func())
}

// Employee is an employee as exposed to the presentation layer.
type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Department       string
	Position         string
	DateOfEmployment string
	DateOfBirth      string
	DateHired        string
}

// FullName returns "first last" the way listings display it.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeInput carries caller-supplied employee fields for Add, Update and
// validation. Blank fields are treated as absent.
type EmployeeInput struct {
	FirstName        string `json:"firstName" yaml:"firstName" validate:"required,staffname"`
	LastName         string `json:"lastName" yaml:"lastName" validate:"required,staffname"`
	Email            string `json:"email" yaml:"email" validate:"required,email,max=254"`
	Phone            string `json:"phone" yaml:"phone" validate:"required,trmobile"`
	Department       string `json:"department" yaml:"department" validate:"required,oneof=Analytics Tech"`
	Position         string `json:"position" yaml:"position" validate:"required,oneof=Junior Medior Senior"`
	DateOfEmployment string `json:"dateOfEmployment" yaml:"dateOfEmployment" validate:"required,calendardate"`
	DateOfBirth      string `json:"dateOfBirth" yaml:"dateOfBirth" validate:"omitempty,calendardate,notfuture,withinage"`
}

// Normalized returns a copy with surrounding whitespace stripped from every
// field, so that whitespace-only input counts as absent.
func (in EmployeeInput) Normalized() EmployeeInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Department = strings.TrimSpace(in.Department)
	in.Position = strings.TrimSpace(in.Position)
	in.DateOfEmployment = strings.TrimSpace(in.DateOfEmployment)
	in.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	return in
}

// Page is one slice of a paged listing.
type Page struct {
	Data        []*Employee
	Total       int
	CurrentPage int
	PageSize    int
	TotalPages  int
}
