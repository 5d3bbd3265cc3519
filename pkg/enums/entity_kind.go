package enums

import "fmt"

// EntityKind names one of the managed collections.
type EntityKind string

const (
	EntityKindVegetable EntityKind = "vegetable"
	EntityKindSeller    EntityKind = "seller"
	EntityKindInvoice   EntityKind = "invoice"
	EntityKindExpense   EntityKind = "expense"
)

var validEntityKinds = []EntityKind{
	EntityKindVegetable,
	EntityKindSeller,
	EntityKindInvoice,
	EntityKindExpense,
}

// String implements fmt.Stringer.
func (k EntityKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known EntityKind.
func (k EntityKind) IsValid() bool {
	for _, candidate := range validEntityKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseEntityKind converts raw input into an EntityKind.
func ParseEntityKind(value string) (EntityKind, error) {
	for _, candidate := range validEntityKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid entity kind %q", value)
}
