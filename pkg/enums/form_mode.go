package enums

import "fmt"

// FormMode distinguishes a create dialog from an edit dialog.
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

var validFormModes = []FormMode{
	FormModeCreate,
	FormModeEdit,
}

// String implements fmt.Stringer.
func (m FormMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known FormMode.
func (m FormMode) IsValid() bool {
	for _, candidate := range validFormModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseFormMode converts raw input into a FormMode.
func ParseFormMode(value string) (FormMode, error) {
	for _, candidate := range validFormModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid form mode %q", value)
}
