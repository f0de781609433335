// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// StateRepository defines the secondary port for directory persistence.
// The whole directory travels as one snapshot under a fixed storage key;
// there is no per-record persistence.
type StateRepository interface {
	// Load retrieves the last saved snapshot. A nil snapshot with a nil
	// error means no prior state exists.
	Load(ctx context.Context) (*DirectorySnapshot, error)

	// Save persists the full snapshot, replacing any previous one.
	Save(ctx context.Context, snap *DirectorySnapshot) error
}

// DirectorySnapshot is the unit of persistence: the employee collection in
// insertion order plus the display view mode.
type DirectorySnapshot struct {
	Employees []EmployeeRecord `json:"employees"`
	ViewMode  string           `json:"viewMode"`
}

// EmployeeRecord represents an employee as stored in persistence.
// Dates are kept as the strings the caller supplied; DateHired is always
// ISO (YYYY-MM-DD) because the store assigns it.
type EmployeeRecord struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Department       string `json:"department"`
	Position         string `json:"position"`
	DateOfEmployment string `json:"dateOfEmployment"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	DateHired        string `json:"dateHired"`
}
