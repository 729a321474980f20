// Package validation checks console forms and reports every failing field at once.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failing field
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Errors collects every failing field of a form
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Reason == ReasonRequired {
			parts = append(parts, f.Field)
			continue
		}
		parts = append(parts, f.Field+" ("+f.Reason+")")
	}
	return "Please complete or correct the following fields: " + strings.Join(parts, ", ")
}

// Names returns the failing field names in form order
func (e *Errors) Names() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Field)
	}
	return out
}

// Add appends a failing field
func (e *Errors) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Merge appends the fields of err when it is an *Errors and returns any other error unchanged
func (e *Errors) Merge(err error) error {
	if err == nil {
		return nil
	}
	var other *Errors
	if !errors.As(err, &other) {
		return err
	}
	e.Fields = append(e.Fields, other.Fields...)
	return nil
}

// OrNil returns nil when nothing failed
func (e *Errors) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Reasons
const (
	ReasonRequired = "required"
	ReasonInvalid  = "invalid format"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.com$`)

// Validator wraps go-playground/validator with the console's custom tags
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the dotcom_email and ph_mobile tags registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("dotcom_email", func(fl validator.FieldLevel) bool {
		return IsDotComEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("ph_mobile", func(fl validator.FieldLevel) bool {
		_, ok := NormalizeContact(fl.Field().String())
		return ok
	})
	return &Validator{v: v}
}

// Struct validates s and returns *Errors listing every failing field
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	out := &Errors{}
	for _, fe := range ves {
		reason := ReasonInvalid
		if fe.Tag() == "required" {
			reason = ReasonRequired
		}
		out.Add(fe.Field(), reason)
	}
	return out
}

// IsDotComEmail reports whether s looks like name@domain.com
func IsDotComEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}
