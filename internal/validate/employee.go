// Package validate checks candidate employee records and reports problems
// as a field-keyed message map the presentation layer can render inline.
// Validation never panics and never mutates its input; an empty map means
// the record is acceptable for submission.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/example/empdir/internal/core/staff"
	"github.com/example/empdir/internal/ports/primary"
)

// Errors maps a form field name to a human-readable problem description.
type Errors map[string]string

// EmailDirectory is the single store query the validator needs for the
// uniqueness rule.
type EmailDirectory interface {
	IsEmailUnique(email, excludeID string) bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "staffname", func(fl validator.FieldLevel) bool {
		return staff.ValidName(fl.Field().String())
	})
	mustRegister(v, "trmobile", func(fl validator.FieldLevel) bool {
		_, ok := staff.NormalizeMobile(fl.Field().String())
		return ok
	})
	mustRegister(v, "calendardate", func(fl validator.FieldLevel) bool {
		_, ok := staff.ParseDate(fl.Field().String())
		return ok
	})
	mustRegister(v, "notfuture", func(fl validator.FieldLevel) bool {
		date, ok := staff.ParseDate(fl.Field().String())
		return !ok || !date.After(time.Now())
	})
	mustRegister(v, "withinage", func(fl validator.FieldLevel) bool {
		date, ok := staff.ParseDate(fl.Field().String())
		return !ok || !date.Before(time.Now().AddDate(-staff.MaxAgeYears, 0, 0))
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Employee runs every field rule against in and returns the union of the
// produced errors. excludeID exempts the record being edited from the
// email-uniqueness rule; a nil dir skips that rule entirely.
func Employee(in primary.EmployeeInput, excludeID string, dir EmailDirectory) Errors {
	in = in.Normalized()

	errs := Errors{}
	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if _, seen := errs[fe.Field()]; !seen {
					errs[fe.Field()] = message(fe.Field(), fe.Tag())
				}
			}
		}
	}
	if _, bad := errs["email"]; !bad && dir != nil && !dir.IsEmailUnique(in.Email, excludeID) {
		errs["email"] = "This email address is already in use"
	}
	return errs
}

// message maps a failed field/tag pair to the text shown next to the
// field. Per field only the first failing rule is reported, so ordering of
// the struct tags decides precedence.
func message(field, tag string) string {
	switch field {
	case "firstName":
		if tag == "required" {
			return "First Name is required"
		}
		return "First Name must contain only letters and be 2-50 characters long"
	case "lastName":
		if tag == "required" {
			return "Last Name is required"
		}
		return "Last Name must contain only letters and be 2-50 characters long"
	case "email":
		if tag == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "phone":
		if tag == "required" {
			return "Phone is required"
		}
		return "Please enter a valid phone number"
	case "department":
		if tag == "required" {
			return "Department is required"
		}
		return "Department must be one of: Analytics, Tech"
	case "position":
		if tag == "required" {
			return "Position is required"
		}
		return "Position must be one of: Junior, Medior, Senior"
	case "dateOfEmployment":
		if tag == "required" {
			return "Date of Employment is required"
		}
		return "Please enter a valid Date of Employment"
	case "dateOfBirth":
		switch tag {
		case "notfuture":
			return "Date of birth cannot be in the future"
		case "withinage":
			return "Please enter a valid date of birth"
		}
		return "Please enter a valid Date of Birth"
	}
	return "Invalid value"
}
