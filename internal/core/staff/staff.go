// Package staff holds the employee domain vocabulary shared by the store,
// the validator and the presentation layer: the closed enum sets, the
// accepted phone and date shapes, and their normalization rules.
package staff

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Department is the organizational unit an employee belongs to.
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Position is the seniority level of an employee.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// ViewMode selects the display density of the directory listing.
type ViewMode string

const (
	ViewModeList  ViewMode = "list"
	ViewModeTable ViewMode = "table"
)

// ISODate is the storage layout for calendar dates.
const ISODate = "2006-01-02"

// dayFirstDate is the legacy layout still found in imported rosters.
const dayFirstDate = "02/01/2006"

// MaxAgeYears bounds how far in the past a date of birth may lie.
const MaxAgeYears = 100

// Departments lists the closed set of departments.
func Departments() []Department {
	return []Department{DepartmentAnalytics, DepartmentTech}
}

// Positions lists the closed set of positions.
func Positions() []Position {
	return []Position{PositionJunior, PositionMedior, PositionSenior}
}

// ValidDepartment reports whether s names a known department.
func ValidDepartment(s string) bool {
	for _, d := range Departments() {
		if string(d) == s {
			return true
		}
	}
	return false
}

// ValidPosition reports whether s names a known position.
func ValidPosition(s string) bool {
	for _, p := range Positions() {
		if string(p) == s {
			return true
		}
	}
	return false
}

// NormalizeViewMode maps s onto the closed view-mode set, falling back to
// the list view for anything unknown.
func NormalizeViewMode(s string) ViewMode {
	if ViewMode(s) == ViewModeTable {
		return ViewModeTable
	}
	return ViewModeList
}

// nameRe accepts letters (including accented ones), spaces, hyphens and
// apostrophes.
var nameRe = regexp.MustCompile(`^[\p{L}\s'-]+$`)

// ValidName reports whether s is an acceptable display name: 2-50
// characters from the name alphabet.
func ValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 2 || n > 50 {
		return false
	}
	return nameRe.MatchString(s)
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizeMobile reduces an accepted Turkish mobile form to its bare
// 10-digit subscriber number (leading 5). The country code, a leading zero
// and common separators are all optional; every accepted form of the same
// number normalizes to the same string. ok is false when the input matches
// no accepted form.
func NormalizeMobile(raw string) (subscriber string, ok bool) {
	s := phoneSeparators.Replace(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "+")
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	switch {
	case len(s) == 13 && strings.HasPrefix(s, "900"):
		s = s[3:]
	case len(s) == 12 && strings.HasPrefix(s, "90"):
		s = s[2:]
	case len(s) == 11 && strings.HasPrefix(s, "0"):
		s = s[1:]
	}
	if len(s) != 10 || s[0] != '5' {
		return "", false
	}
	return s, true
}

// ParseDate parses a calendar date in either the ISO layout or the
// day-first legacy layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range []string{ISODate, dayFirstDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
