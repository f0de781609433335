// Package app implements the application services behind the primary ports.
package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/empdir/internal/core/pagination"
	"github.com/example/empdir/internal/core/staff"
	"github.com/example/empdir/internal/ports/primary"
	"github.com/example/empdir/internal/ports/secondary"
)

// Directory implements primary.DirectoryService. It owns the employee
// collection and the view mode exclusively; every mutation is followed by
// a snapshot write and a synchronous subscriber fan-out, in that order,
// within the mutating call. Single-writer, no locking.
type Directory struct {
	repo      secondary.StateRepository
	log       *slog.Logger
	employees []primary.Employee
	viewMode  staff.ViewMode
	subs      []subscriber
	lastID    int64
	now       func() time.Time
}

type subscriber struct {
	token string
	fn    func()
}

// NewDirectory loads the last saved snapshot and returns a ready store. A
// missing or unreadable snapshot yields an empty directory; construction
// never fails over a persistence problem.
func NewDirectory(repo secondary.StateRepository, log *slog.Logger) *Directory {
	if log == nil {
		log = slog.Default()
	}
	d := &Directory{
		repo:     repo,
		log:      log,
		viewMode: staff.ViewModeList,
		now:      time.Now,
	}
	if repo == nil {
		return d
	}
	snap, err := repo.Load(context.Background())
	switch {
	case err != nil:
		log.Warn("could not load directory state, starting empty", "error", err)
	case snap != nil:
		d.restore(snap)
	}
	return d
}

// All returns a copy of the collection in insertion order.
func (d *Directory) All() []*primary.Employee {
	out := make([]*primary.Employee, len(d.employees))
	for i := range d.employees {
		e := d.employees[i]
		out[i] = &e
	}
	return out
}

// ByID retrieves an employee by exact id match.
func (d *Directory) ByID(id string) (*primary.Employee, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	if i := d.indexOf(id); i >= 0 {
		e := d.employees[i]
		return &e, true
	}
	return nil, false
}

// Search filters the collection by a case-insensitive substring match over
// first name, last name, full name, email, phone, position and department.
// A blank term returns everything; collection order is preserved.
func (d *Directory) Search(term string) []*primary.Employee {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return d.All()
	}
	var out []*primary.Employee
	for i := range d.employees {
		e := d.employees[i]
		if matches(&e, term) {
			out = append(out, &e)
		}
	}
	return out
}

func matches(e *primary.Employee, term string) bool {
	for _, field := range []string{
		e.FirstName,
		e.LastName,
		e.FullName(),
		e.Email,
		e.Phone,
		e.Position,
		e.Department,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Paginate slices items into the requested page. An out-of-range page
// yields an empty Data slice with the page echoed back; TotalPages is at
// least 1 even for an empty collection.
func (d *Directory) Paginate(items []*primary.Employee, page, pageSize int) primary.Page {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	result := primary.Page{
		Data:        []*primary.Employee{},
		Total:       total,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  pagination.PageCount(total, pageSize),
	}
	if page < 1 {
		return result
	}
	start := (page - 1) * pageSize
	if start >= total {
		return result
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	result.Data = items[start:end]
	return result
}

// Add stores a new employee. The id and hire date are assigned here;
// whatever the caller had in mind for them is ignored. Add is total:
// blank or missing fields are stored as-is and left for validation at the
// form layer.
func (d *Directory) Add(in primary.EmployeeInput) *primary.Employee {
	in = in.Normalized()
	e := primary.Employee{
		ID:               d.nextID(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		Department:       in.Department,
		Position:         in.Position,
		DateOfEmployment: in.DateOfEmployment,
		DateOfBirth:      in.DateOfBirth,
		DateHired:        d.now().Format(staff.ISODate),
	}
	d.employees = append(d.employees, e)
	d.persist()
	d.notify()
	return &e
}

// Update merges the non-blank fields of patch onto the stored record. The
// id and hire date always survive a patch. A miss performs no mutation.
func (d *Directory) Update(id string, patch primary.EmployeeInput) (*primary.Employee, bool) {
	i := d.indexOf(strings.TrimSpace(id))
	if i < 0 {
		return nil, false
	}
	patch = patch.Normalized()
	e := &d.employees[i]
	if patch.FirstName != "" {
		e.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		e.LastName = patch.LastName
	}
	if patch.Email != "" {
		e.Email = patch.Email
	}
	if patch.Phone != "" {
		e.Phone = patch.Phone
	}
	if patch.Department != "" {
		e.Department = patch.Department
	}
	if patch.Position != "" {
		e.Position = patch.Position
	}
	if patch.DateOfEmployment != "" {
		e.DateOfEmployment = patch.DateOfEmployment
	}
	if patch.DateOfBirth != "" {
		e.DateOfBirth = patch.DateOfBirth
	}
	d.persist()
	d.notify()
	merged := *e
	return &merged, true
}

// Remove deletes an employee. False means the id was not present and
// nothing changed.
func (d *Directory) Remove(id string) bool {
	i := d.indexOf(strings.TrimSpace(id))
	if i < 0 {
		return false
	}
	d.employees = append(d.employees[:i], d.employees[i+1:]...)
	d.persist()
	d.notify()
	return true
}

// IsEmailUnique reports whether no record other than excludeID carries the
// exact email. Comparison is case-sensitive; a blank email never
// conflicts.
func (d *Directory) IsEmailUnique(email, excludeID string) bool {
	email = strings.TrimSpace(email)
	excludeID = strings.TrimSpace(excludeID)
	if email == "" {
		return true
	}
	for i := range d.employees {
		if d.employees[i].ID == excludeID {
			continue
		}
		if d.employees[i].Email == email {
			return false
		}
	}
	return true
}

// ViewMode returns the current display mode.
func (d *Directory) ViewMode() staff.ViewMode {
	return d.viewMode
}

// SetViewMode switches the display mode, normalizing unknown modes to the
// list view, with the same persistence and notification discipline as the
// record mutations.
func (d *Directory) SetViewMode(mode staff.ViewMode) {
	d.viewMode = staff.NormalizeViewMode(string(mode))
	d.persist()
	d.notify()
}

// Subscribe registers a callback invoked synchronously after every
// successful mutation. The returned function deregisters exactly that
// callback; calling it twice is harmless and other subscribers are
// unaffected.
func (d *Directory) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	token := uuid.NewString()
	d.subs = append(d.subs, subscriber{token: token, fn: fn})
	return func() {
		for i := range d.subs {
			if d.subs[i].token == token {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

func (d *Directory) notify() {
	// Iterate over a copy so a callback unsubscribing mid-fanout cannot
	// skip its neighbors.
	for _, s := range append([]subscriber(nil), d.subs...) {
		s.fn()
	}
}

// persist writes the full snapshot. Failures are logged and swallowed: a
// missed persist is recoverable, crashing the caller is not.
func (d *Directory) persist() {
	if d.repo == nil {
		return
	}
	snap := &secondary.DirectorySnapshot{
		Employees: make([]secondary.EmployeeRecord, len(d.employees)),
		ViewMode:  string(d.viewMode),
	}
	for i := range d.employees {
		snap.Employees[i] = employeeToRecord(&d.employees[i])
	}
	if err := d.repo.Save(context.Background(), snap); err != nil {
		d.log.Warn("could not save directory state", "error", err)
	}
}

func (d *Directory) restore(snap *secondary.DirectorySnapshot) {
	d.employees = make([]primary.Employee, 0, len(snap.Employees))
	for i := range snap.Employees {
		e := recordToEmployee(&snap.Employees[i])
		d.employees = append(d.employees, e)
		// Keep id generation monotonic across restarts for numeric ids.
		if n, err := strconv.ParseInt(e.ID, 10, 64); err == nil && n > d.lastID {
			d.lastID = n
		}
	}
	d.viewMode = staff.NormalizeViewMode(snap.ViewMode)
}

// nextID derives an id from the millisecond clock, bumped past the last
// issued id so that same-millisecond calls still get distinct values.
func (d *Directory) nextID() string {
	id := d.now().UnixMilli()
	if id <= d.lastID {
		id = d.lastID + 1
	}
	d.lastID = id
	return strconv.FormatInt(id, 10)
}

func (d *Directory) indexOf(id string) int {
	for i := range d.employees {
		if d.employees[i].ID == id {
			return i
		}
	}
	return -1
}

func employeeToRecord(e *primary.Employee) secondary.EmployeeRecord {
	return secondary.EmployeeRecord{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Email:            e.Email,
		Phone:            e.Phone,
		Department:       e.Department,
		Position:         e.Position,
		DateOfEmployment: e.DateOfEmployment,
		DateOfBirth:      e.DateOfBirth,
		DateHired:        e.DateHired,
	}
}

func recordToEmployee(r *secondary.EmployeeRecord) primary.Employee {
	return primary.Employee{
		ID:               r.ID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Department:       r.Department,
		Position:         r.Position,
		DateOfEmployment: r.DateOfEmployment,
		DateOfBirth:      r.DateOfBirth,
		DateHired:        r.DateHired,
	}
}
