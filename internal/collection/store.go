// Package collection holds the ordered, in-memory record lists backing each entity page.
package collection

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/multierr"

	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

const maxIDAttempts = 8

// Options wires a Store to its record type.
type Options[T any] struct {
	// Kind names the entity in error messages, e.g. "vegetable".
	Kind  string
	IDOf  func(T) string
	SetID func(*T, string)
	IDs   IDGenerator
}

// Store is an insertion-ordered list of records with unique, immutable identifiers.
// The mutex only serialises concurrent HTTP handlers; nothing runs in the background.
type Store[T any] struct {
	mu      sync.RWMutex
	kind    string
	records []T
	index   map[string]int
	idOf    func(T) string
	setID   func(*T, string)
	ids     IDGenerator
}

// New builds an empty store.
func New[T any](opts Options[T]) (*Store[T], error) {
	if opts.IDOf == nil || opts.SetID == nil {
		return nil, fmt.Errorf("collection %q: id accessors required", opts.Kind)
	}
	if opts.IDs == nil {
		opts.IDs = UUIDGenerator{}
	}
	kind := opts.Kind
	if kind == "" {
		kind = "record"
	}
	return &Store[T]{
		kind:  kind,
		index: map[string]int{},
		idOf:  opts.IDOf,
		setID: opts.SetID,
		ids:   opts.IDs,
	}, nil
}

// Kind returns the entity name the store was built for.
func (s *Store[T]) Kind() string {
	return s.kind
}

// IDOf returns the identifier of record.
func (s *Store[T]) IDOf(record T) string {
	return s.idOf(record)
}

// Seed loads fixture records keeping their identifiers. Either every record is accepted
// or none is.
func (s *Store[T]) Seed(records ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs error
	seen := map[string]struct{}{}
	for i, rec := range records {
		id := s.idOf(rec)
		switch {
		case strings.TrimSpace(id) == "":
			errs = multierr.Append(errs, fmt.Errorf("%s fixture %d: empty id", s.kind, i))
		case strings.TrimSpace(id) != id:
			errs = multierr.Append(errs, fmt.Errorf("%s fixture %d: id %q has surrounding whitespace", s.kind, i, id))
		case s.has(id):
			errs = multierr.Append(errs, fmt.Errorf("%s fixture %d: id %q already present", s.kind, i, id))
		default:
			if _, dup := seen[id]; dup {
				errs = multierr.Append(errs, fmt.Errorf("%s fixture %d: duplicate id %q", s.kind, i, id))
			}
			seen[id] = struct{}{}
		}
	}
	if errs != nil {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, errs, "invalid "+s.kind+" fixtures")
	}

	obs, _ := s.ids.(idObserver)
	for _, rec := range records {
		id := s.idOf(rec)
		s.index[id] = len(s.records)
		s.records = append(s.records, rec)
		if obs != nil {
			obs.Observe(id)
		}
	}
	return nil
}

// Insert assigns a fresh identifier to record and appends it.
func (s *Store[T]) Insert(record T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextFreeID()
	if err != nil {
		var zero T
		return zero, err
	}
	s.setID(&record, id)
	s.index[id] = len(s.records)
	s.records = append(s.records, record)
	return record, nil
}

// Replace applies patch to a copy of the record with the given id and swaps it in place.
// The identifier is restored after the patch so it can never change.
func (s *Store[T]) Replace(id string, patch func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	updated := s.records[pos]
	if patch != nil {
		patch(&updated)
	}
	s.setID(&updated, id)
	s.records[pos] = updated
	return updated, nil
}

// Remove deletes the record with the given id, keeping the order of the rest.
func (s *Store[T]) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return s.notFound(id)
	}
	s.records = append(s.records[:pos], s.records[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.records); i++ {
		s.index[s.idOf(s.records[i])] = i
	}
	return nil
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	return s.records[pos], nil
}

// List returns a copy of every record in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T]) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) nextFreeID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NextID()
		if id != "" && !s.has(id) {
			return id, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeConflict, "could not allocate a unique "+s.kind+" id")
}

func (s *Store[T]) notFound(id string) error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "%s not found", s.kind).WithDetails(map[string]any{"id": id})
}
