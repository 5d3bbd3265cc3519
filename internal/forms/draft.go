package forms

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Draft holds raw, unvalidated form values keyed by field name.
type Draft map[string]string

// Clone returns an independent copy. A nil draft stays nil.
func (d Draft) Clone() Draft {
	if d == nil {
		return nil
	}
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Get returns the trimmed value of field.
func (d Draft) Get(field string) string {
	return strings.TrimSpace(d[field])
}

// Has reports whether field carries a non-blank value.
func (d Draft) Has(field string) bool {
	return d.Get(field) != ""
}

// Merge layers drafts left to right: a later draft wins for every field it sets to a
// non-blank value, blanks never erase an earlier value.
func Merge(layers ...Draft) Draft {
	out := Draft{}
	for _, layer := range layers {
		for k, v := range layer {
			if strings.TrimSpace(v) == "" {
				if _, ok := out[k]; !ok {
					out[k] = ""
				}
				continue
			}
			out[k] = v
		}
	}
	return out
}

// DraftFromJSON converts a decoded JSON object into raw form values. Numbers keep their
// literal text so numeric coercion happens in validation, not in decoding.
func DraftFromJSON(body map[string]any) (Draft, error) {
	out := make(Draft, len(body))
	for key, raw := range body {
		switch v := raw.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = v
		case json.Number:
			out[key] = v.String()
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[key] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("field %q must be a scalar value", key)
		}
	}
	return out, nil
}

// Optional returns a pointer to the trimmed value, or nil when blank.
func (d Draft) Optional(field string) *string {
	v := d.Get(field)
	if v == "" {
		return nil
	}
	return &v
}

// Decimal parses field as a decimal, returning nil when blank or malformed.
// Callers validate numeric fields before reading them.
func (d Draft) Decimal(field string) *decimal.Decimal {
	v := d.Get(field)
	if v == "" {
		return nil
	}
	parsed, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &parsed
}

// PutString writes *v into field when v is set.
func (d Draft) PutString(field string, v *string) {
	if v != nil {
		d[field] = *v
	}
}

// PutDecimal writes v into field when v is set.
func (d Draft) PutDecimal(field string, v *decimal.Decimal) {
	if v != nil {
		d[field] = v.String()
	}
}
