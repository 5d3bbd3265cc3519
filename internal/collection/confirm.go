package collection

import (
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

// Confirmation is the user's answer to a destructive-action prompt.
type Confirmation int

const (
	// Unanswered means the prompt has not been shown yet.
	Unanswered Confirmation = iota
	Confirmed
	Declined
)

// ParseConfirmation reads the confirm query flag: empty is Unanswered.
func ParseConfirmation(raw string) (Confirmation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unanswered, nil
	}
	ok, err := strconv.ParseBool(raw)
	if err != nil {
		return Unanswered, pkgerrors.Validation("confirm must be true or false", map[string]string{"confirm": "must be true or false"})
	}
	if ok {
		return Confirmed, nil
	}
	return Declined, nil
}

// ConfirmationRequired builds the error that asks the client to show prompt and retry.
func ConfirmationRequired(id, prompt string) error {
	return pkgerrors.New(pkgerrors.CodeConfirmationRequired, prompt).
		WithDetails(map[string]string{"id": id, "prompt": prompt})
}
