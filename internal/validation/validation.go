// Package validation checks a Person against the field rules that must
// hold before it is stored.
//
// The rules live in an explicit, ordered table rather than in struct tags.
// go-playground/validator still performs every individual check (via
// Var), but the order in which failures are reported is the table order,
// so the aggregated message is stable: name, then age, then email.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/people-api/internal/types"
)

// rule is one (field, check, message) entry.
type rule struct {
	field   string
	tag     string // validator tag, e.g. "min=2,max=30"
	message string
	value   func(p types.Person) any
}

func name(p types.Person) any  { return p.Name }
func age(p types.Person) any   { return p.Age }
func email(p types.Person) any { return p.Email }

// rules is evaluated top to bottom and never short-circuits: an empty
// name breaks both of its rules and both are reported, whether "name" was
// sent as "" or left out of the body. An empty email only breaks
// "required" since the format check skips empty values.
var rules = []rule{
	{field: "name", tag: "required", message: "Name shouldn't be empty!", value: name},
	{field: "name", tag: "min=2,max=30", message: "Name should be between 2 and 30 characters", value: name},
	{field: "age", tag: "min=0", message: "Age should be greater than 0", value: age},
	{field: "email", tag: "required", message: "Email shouldn't be empty!", value: email},
	{field: "email", tag: "omitempty,email", message: "must be a well-formed email address", value: email},
}

// FieldError is a single broken rule.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + " - " + e.Message + ";"
}

// Errors is the ordered list of broken rules. A nil or empty Errors means
// the person is valid.
type Errors []FieldError

// Message concatenates every failure as "<field> - <message>;".
func (errs Errors) Message() string {
	var b strings.Builder
	for _, e := range errs {
		b.WriteString(e.String())
	}
	return b.String()
}

// Fields returns the names of the failing fields, each once, in order.
func (errs Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, e := range errs {
		if !seen[e.Field] {
			seen[e.Field] = true
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Validator runs the rule table. The zero value is not usable; call New.
// A Validator is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator backed by a single go-playground validator.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate returns every rule p breaks, or nil if p is valid.
func (val *Validator) Validate(p types.Person) Errors {
	var errs Errors
	for _, r := range rules {
		if err := val.v.Var(r.value(p), r.tag); err != nil {
			errs = append(errs, FieldError{Field: r.field, Message: r.message})
		}
	}
	return errs
}
