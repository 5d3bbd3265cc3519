package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

var validate = newValidator()

// newValidator registers the "decimal" tag, which accepts anything decimal.NewFromString
// parses (".5", "1e3", "-2") unlike the built-in numeric tag.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// FieldRule declares the checks for one form field.
type FieldRule struct {
	Field       string
	Label       string
	Required    bool
	Numeric     bool
	NonNegative bool
	Date        bool
	OneOf       []string
}

func (r FieldRule) label() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Field
}

// tag compiles the rule into a validator tag. Optional fields skip every check when blank.
func (r FieldRule) tag() string {
	parts := []string{"omitempty"}
	if r.Required {
		parts = []string{"required"}
	}
	if r.Numeric {
		parts = append(parts, "decimal")
	}
	if r.Date {
		parts = append(parts, "datetime="+types.DateLayout)
	}
	if len(r.OneOf) > 0 {
		parts = append(parts, "oneof="+strings.Join(r.OneOf, " "))
	}
	return strings.Join(parts, ",")
}

func (r FieldRule) message(tag string) string {
	switch tag {
	case "required":
		return r.label() + " is required"
	case "decimal":
		return r.label() + " must be a number"
	case "datetime":
		return r.label() + " must be a valid date (YYYY-MM-DD)"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", r.label(), strings.Join(r.OneOf, ", "))
	case "nonnegative":
		return r.label() + " cannot be negative"
	}
	return r.label() + " is invalid"
}

func (r FieldRule) check(value string) string {
	value = strings.TrimSpace(value)
	if err := validate.Var(value, r.tag()); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return r.message(errs[0].Tag())
		}
		return r.message("")
	}
	if r.NonNegative && value != "" {
		if d, err := decimal.NewFromString(value); err == nil && d.IsNegative() {
			return r.message("nonnegative")
		}
	}
	return ""
}

// RuleSet is the declarative validation contract of one entity form.
type RuleSet struct {
	Rules []FieldRule
}

// Fields lists the field names in declaration order.
func (rs RuleSet) Fields() []string {
	out := make([]string, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		out = append(out, r.Field)
	}
	return out
}

// Knows reports whether field is part of the form.
func (rs RuleSet) Knows(field string) bool {
	for _, r := range rs.Rules {
		if r.Field == field {
			return true
		}
	}
	return false
}

// Validate returns one message per invalid field; an empty map means the draft is acceptable.
func (rs RuleSet) Validate(d Draft) map[string]string {
	errs := map[string]string{}
	for _, r := range rs.Rules {
		if msg := r.check(d[r.Field]); msg != "" {
			errs[r.Field] = msg
		}
	}
	return errs
}

// Normalize trims every known field and drops unknown keys.
func (rs RuleSet) Normalize(d Draft) Draft {
	out := make(Draft, len(rs.Rules))
	for _, r := range rs.Rules {
		out[r.Field] = strings.TrimSpace(d[r.Field])
	}
	return out
}
