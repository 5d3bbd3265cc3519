package forms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

// Backend connects a form kind to the service that owns its collection.
type Backend interface {
	RuleSet() RuleSet
	Defaults() Draft
	DraftOf(ctx context.Context, id string) (Draft, error)
	ApplySubmission(ctx context.Context, sub Submission) (any, error)
}

// OpenParams selects which dialog to open.
type OpenParams struct {
	Kind     enums.EntityKind
	Mode     enums.FormMode
	TargetID string
}

// SubmitResult is returned by Registry.Submit. Record is set only when the session accepted.
type SubmitResult struct {
	Session View `json:"session"`
	Record  any  `json:"record,omitempty"`
}

// Registry keeps the open dialogs, one per client, keyed by a generated id. Closed
// sessions are dropped immediately; sessions left untouched for longer than the idle
// timeout are dropped on the next registry call.
type Registry struct {
	mu       sync.Mutex
	backends map[enums.EntityKind]Backend
	sessions map[string]*Session
	lastSeen map[string]time.Time
	maxOpen  int
	idleTTL  time.Duration
	now      func() time.Time
	newID    func() string
	observe  func(kind enums.EntityKind, accepted bool)
}

// DefaultIdleTimeout is how long an untouched session survives.
const DefaultIdleTimeout = 30 * time.Minute

// NewRegistry builds a registry over the given backends. maxOpen <= 0 disables the cap.
func NewRegistry(backends map[enums.EntityKind]Backend, maxOpen int) *Registry {
	copied := make(map[enums.EntityKind]Backend, len(backends))
	for k, b := range backends {
		if b != nil {
			copied[k] = b
		}
	}
	return &Registry{
		backends: copied,
		sessions: map[string]*Session{},
		lastSeen: map[string]time.Time{},
		maxOpen:  maxOpen,
		idleTTL:  DefaultIdleTimeout,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// SetIdleTimeout changes how long an untouched session stays open. ttl <= 0 keeps
// sessions until they are submitted or cancelled.
func (r *Registry) SetIdleTimeout(ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idleTTL = ttl
}

// ObserveSubmissions registers fn to be told about every validated submit.
func (r *Registry) ObserveSubmissions(fn func(kind enums.EntityKind, accepted bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observe = fn
}

// Open creates a session in creating or editing state.
func (r *Registry) Open(ctx context.Context, params OpenParams) (View, error) {
	backend, err := r.backend(params.Kind)
	if err != nil {
		return View{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked(r.now())

	if r.maxOpen > 0 && len(r.sessions) >= r.maxOpen {
		return View{}, pkgerrors.New(pkgerrors.CodeConflict, "too many open forms")
	}

	s := NewSession(r.newID(), params.Kind, backend.RuleSet())
	switch params.Mode {
	case enums.FormModeCreate:
		err = s.OpenCreate(backend.Defaults())
	case enums.FormModeEdit:
		var record Draft
		record, err = backend.DraftOf(ctx, params.TargetID)
		if err == nil {
			err = s.OpenEdit(params.TargetID, record, backend.Defaults())
		}
	default:
		err = pkgerrors.Validation("invalid form mode", map[string]string{"mode": "must be create or edit"})
	}
	if err != nil {
		return View{}, err
	}

	r.sessions[s.id] = s
	r.lastSeen[s.id] = r.now()
	return s.View(), nil
}

// Get returns the current snapshot of an open session.
func (r *Registry) Get(id string) (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.session(id)
	if err != nil {
		return View{}, err
	}
	return s.View(), nil
}

// Update writes draft fields of an open session.
func (r *Registry) Update(id string, values Draft) (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.session(id)
	if err != nil {
		return View{}, err
	}
	if err := s.SetAll(values); err != nil {
		return s.View(), err
	}
	return s.View(), nil
}

// Submit validates the session and, when accepted, applies it through the backend.
// A rejected submit returns the validation error together with the still-open session.
func (r *Registry) Submit(ctx context.Context, id string) (SubmitResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.session(id)
	if err != nil {
		return SubmitResult{}, err
	}
	backend, err := r.backend(s.kind)
	if err != nil {
		return SubmitResult{}, err
	}

	var record any
	err = s.Submit(func(sub Submission) error {
		var applyErr error
		record, applyErr = backend.ApplySubmission(ctx, sub)
		return applyErr
	})
	if !s.IsOpen() {
		r.drop(id)
	}
	if r.observe != nil {
		switch {
		case err == nil:
			r.observe(s.kind, true)
		case s.State() == StateRejected:
			r.observe(s.kind, false)
		}
	}
	if err != nil {
		return SubmitResult{Session: s.View()}, err
	}
	return SubmitResult{Session: s.View(), Record: record}, nil
}

// Cancel discards the session.
func (r *Registry) Cancel(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.session(id)
	if err != nil {
		return err
	}
	s.Cancel()
	r.drop(id)
	return nil
}

// OpenCount reports how many dialogs are currently open.
func (r *Registry) OpenCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked(r.now())
	return len(r.sessions)
}

// session prunes idle sessions, then looks id up and marks it as touched.
func (r *Registry) session(id string) (*Session, error) {
	now := r.now()
	r.pruneLocked(now)
	s, ok := r.sessions[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "form session not found")
	}
	r.lastSeen[id] = now
	return s, nil
}

func (r *Registry) pruneLocked(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	for id, seen := range r.lastSeen {
		if now.Sub(seen) >= r.idleTTL {
			if s, ok := r.sessions[id]; ok {
				s.Cancel()
			}
			r.drop(id)
		}
	}
}

func (r *Registry) drop(id string) {
	delete(r.sessions, id)
	delete(r.lastSeen, id)
}

func (r *Registry) backend(kind enums.EntityKind) (Backend, error) {
	b, ok := r.backends[kind]
	if !ok {
		return nil, pkgerrors.Validation(fmt.Sprintf("%s records have no form", kind), map[string]string{"kind": "no form for " + string(kind)})
	}
	return b, nil
}
