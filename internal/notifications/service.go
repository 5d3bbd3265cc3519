package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

// Service defines the toast feed shown after create/update/delete actions.
type Service interface {
	Push(ctx context.Context, input PushInput) Notice
	List(ctx context.Context) []Notice
	Dismiss(ctx context.Context, id string) error
}

// PushInput is the content of a new toast.
type PushInput struct {
	Title       string
	Description string
	Variant     enums.NotificationVariant
}

// Notice is one transient toast.
type Notice struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Variant     enums.NotificationVariant `json:"variant"`
	CreatedAt   time.Time                 `json:"created_at"`
	ExpiresAt   time.Time                 `json:"expires_at"`
}

// Params configures the feed.
type Params struct {
	TTL      time.Duration
	MaxItems int
	Now      func() time.Time
}

type service struct {
	mu     sync.Mutex
	items  []Notice
	ttl    time.Duration
	max    int
	now    func() time.Time
	nextID func() string
}

const (
	defaultTTL      = 5 * time.Second
	defaultMaxItems = 20
)

// NewService builds an in-process feed. Expired notices are dropped whenever the feed is
// touched, so no timer goroutine is needed for auto-dismiss.
func NewService(params Params) Service {
	if params.TTL <= 0 {
		params.TTL = defaultTTL
	}
	if params.MaxItems <= 0 {
		params.MaxItems = defaultMaxItems
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		ttl:    params.TTL,
		max:    params.MaxItems,
		now:    params.Now,
		nextID: uuid.NewString,
	}
}

func (s *service) Push(_ context.Context, input PushInput) Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	variant := input.Variant
	if !variant.IsValid() {
		variant = enums.NotificationVariantDefault
	}
	now := s.now().UTC()
	n := Notice{
		ID:          s.nextID(),
		Title:       input.Title,
		Description: input.Description,
		Variant:     variant,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	s.pruneLocked(now)
	s.items = append(s.items, n)
	if over := len(s.items) - s.max; over > 0 {
		s.items = append([]Notice(nil), s.items[over:]...)
	}
	return n
}

func (s *service) List(_ context.Context) []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now().UTC())
	out := make([]Notice, len(s.items))
	copy(out, s.items)
	return out
}

func (s *service) Dismiss(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now().UTC())
	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
}

func (s *service) pruneLocked(now time.Time) {
	kept := s.items[:0]
	for _, n := range s.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	s.items = kept
}

// Success pushes a default-styled toast.
func Success(ctx context.Context, svc Service, title, description string) *Notice {
	if svc == nil {
		return nil
	}
	n := svc.Push(ctx, PushInput{Title: title, Description: description, Variant: enums.NotificationVariantDefault})
	return &n
}

// Failure pushes a destructive toast.
func Failure(ctx context.Context, svc Service, title, description string) *Notice {
	if svc == nil {
		return nil
	}
	n := svc.Push(ctx, PushInput{Title: title, Description: description, Variant: enums.NotificationVariantDestructive})
	return &n
}
