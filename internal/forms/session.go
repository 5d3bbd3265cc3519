// Package forms implements the modal create/edit dialogs shared by every entity page:
// a draft, a declarative rule set, and the closed → open → validating → closed lifecycle.
package forms

import (
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

// State is the lifecycle position of a Session.
type State string

const (
	StateClosed     State = "closed"
	StateCreating   State = "creating"
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateAccepted   State = "accepted"
	StateRejected   State = "rejected"
)

// Submission is the validated draft handed to the owning page on accept.
type Submission struct {
	Mode     enums.FormMode
	TargetID string
	Values   Draft
}

// Session is one modal dialog. It is not safe for concurrent use; Registry serialises access.
type Session struct {
	id       string
	kind     enums.EntityKind
	rules    RuleSet
	state    State
	mode     enums.FormMode
	targetID string
	draft    Draft
	errors   map[string]string
}

// NewSession returns a closed session for the given form.
func NewSession(id string, kind enums.EntityKind, rules RuleSet) *Session {
	return &Session{id: id, kind: kind, rules: rules, state: StateClosed}
}

// View is a read-only snapshot of a session.
type View struct {
	ID       string            `json:"id"`
	Kind     enums.EntityKind  `json:"kind"`
	Mode     enums.FormMode    `json:"mode,omitempty"`
	TargetID string            `json:"target_id,omitempty"`
	State    State             `json:"state"`
	Draft    Draft             `json:"draft"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func (s *Session) View() View {
	v := View{
		ID:       s.id,
		Kind:     s.kind,
		Mode:     s.mode,
		TargetID: s.targetID,
		State:    s.state,
		Draft:    s.draft.Clone(),
	}
	if len(s.errors) > 0 {
		v.Errors = make(map[string]string, len(s.errors))
		for k, msg := range s.errors {
			v.Errors[k] = msg
		}
	}
	return v
}

func (s *Session) State() State {
	return s.state
}

// IsOpen reports whether the dialog is showing.
func (s *Session) IsOpen() bool {
	switch s.state {
	case StateCreating, StateEditing, StateRejected:
		return true
	}
	return false
}

// OpenCreate resets the draft to defaults and enters creating.
func (s *Session) OpenCreate(defaults Draft) error {
	if s.state != StateClosed {
		return s.stateConflict("open")
	}
	s.mode = enums.FormModeCreate
	s.targetID = ""
	s.draft = s.rules.Normalize(defaults)
	s.errors = nil
	s.state = StateCreating
	return nil
}

// OpenEdit prefills the draft from record; defaults only fill fields the record leaves blank.
func (s *Session) OpenEdit(targetID string, record, defaults Draft) error {
	if s.state != StateClosed {
		return s.stateConflict("open")
	}
	if targetID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "target id required to edit")
	}
	s.mode = enums.FormModeEdit
	s.targetID = targetID
	s.draft = s.rules.Normalize(Merge(defaults, record))
	s.errors = nil
	s.state = StateEditing
	return nil
}

// Set writes one draft field. Unlike Merge, a blank value clears the field.
func (s *Session) Set(field, value string) error {
	if !s.IsOpen() {
		return s.stateConflict("edit")
	}
	if !s.rules.Knows(field) {
		return pkgerrors.Validation("unknown form field", map[string]string{field: "unknown field"})
	}
	s.draft[field] = value
	delete(s.errors, field)
	s.state = s.openState()
	return nil
}

// SetAll writes every field of values, rejecting the whole batch on an unknown field.
func (s *Session) SetAll(values Draft) error {
	if !s.IsOpen() {
		return s.stateConflict("edit")
	}
	unknown := map[string]string{}
	for field := range values {
		if !s.rules.Knows(field) {
			unknown[field] = "unknown field"
		}
	}
	if len(unknown) > 0 {
		return pkgerrors.Validation("unknown form field", unknown)
	}
	for field, value := range values {
		if err := s.Set(field, value); err != nil {
			return err
		}
	}
	return nil
}

// Submit validates the draft. On failure the session stays open as rejected and the error
// carries one message per invalid field. On success commit receives the validated draft; if
// commit succeeds the session closes and clears, if it fails the session stays open.
func (s *Session) Submit(commit func(Submission) error) error {
	if !s.IsOpen() {
		return s.stateConflict("submit")
	}
	open := s.openState()
	s.state = StateValidating

	if errs := s.rules.Validate(s.draft); len(errs) > 0 {
		s.errors = errs
		s.state = StateRejected
		return pkgerrors.Validation("validation failed", errs)
	}

	s.state = StateAccepted
	sub := Submission{Mode: s.mode, TargetID: s.targetID, Values: s.rules.Normalize(s.draft)}
	if commit != nil {
		if err := commit(sub); err != nil {
			s.state = open
			return err
		}
	}
	s.reset()
	return nil
}

// Cancel discards the draft unconditionally.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.state = StateClosed
	s.mode = ""
	s.targetID = ""
	s.draft = nil
	s.errors = nil
}

func (s *Session) openState() State {
	if s.mode == enums.FormModeEdit {
		return StateEditing
	}
	return StateCreating
}

func (s *Session) stateConflict(action string) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "form session cannot "+action+" while "+string(s.state)).
		WithDetails(map[string]any{"session_id": s.id, "state": s.state})
}

// RunCreate drives a throwaway session through open, fill and submit. It is the one-shot
// path used by JSON create endpoints so they share the dialog's validation.
func RunCreate(kind enums.EntityKind, rules RuleSet, defaults, values Draft, commit func(Submission) error) error {
	s := NewSession("", kind, rules)
	if err := s.OpenCreate(defaults); err != nil {
		return err
	}
	if err := s.SetAll(values); err != nil {
		return err
	}
	return s.Submit(commit)
}

// RunEdit is RunCreate for edits: values patch the prefilled record draft.
func RunEdit(kind enums.EntityKind, rules RuleSet, targetID string, record, defaults, values Draft, commit func(Submission) error) error {
	s := NewSession("", kind, rules)
	if err := s.OpenEdit(targetID, record, defaults); err != nil {
		return err
	}
	if err := s.SetAll(values); err != nil {
		return err
	}
	return s.Submit(commit)
}
