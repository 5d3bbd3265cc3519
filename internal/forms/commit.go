package forms

import (
	"context"

	"github.com/angelmondragon/vegmart-backend/internal/collection"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
	"github.com/angelmondragon/vegmart-backend/pkg/metrics"
)

// Mutation is the record written by an accepted submit and the toast that announced it.
type Mutation[T any] struct {
	Record       T                     `json:"record"`
	Notification *notifications.Notice `json:"notification,omitempty"`
}

// Removal reports whether a confirmed delete removed the record.
type Removal struct {
	ID           string                `json:"id"`
	Deleted      bool                  `json:"deleted"`
	Notification *notifications.Notice `json:"notification,omitempty"`
}

// Messages holds the toast texts for one collection.
type Messages struct {
	Created      string
	Updated      string
	DeletedTitle string
	DeletedBody  string
	DeletePrompt string
}

// Committer writes form submits and confirmed deletes to one collection. Every
// committed change raises a toast and is recorded in the collection metrics.
type Committer[T any] struct {
	Kind     enums.EntityKind
	Store    *collection.Store[T]
	Rules    RuleSet
	Defaults func() Draft
	Encode   func(T) Draft
	Decode   func(Draft) T
	// Keep copies fields the form does not edit from the stored record onto the edited one.
	Keep     func(stored T, edited *T)
	Messages Messages
	Notices  notifications.Service
	Metrics  *metrics.CollectionMetrics
	Logger   *logger.Logger
}

// Create runs a one-shot create dialog.
func (c *Committer[T]) Create(ctx context.Context, values Draft) (Mutation[T], error) {
	var out Mutation[T]
	err := RunCreate(c.Kind, c.Rules, c.defaults(), values, func(sub Submission) error {
		var applyErr error
		out, applyErr = c.Apply(ctx, sub)
		return applyErr
	})
	c.observe(err)
	if err != nil {
		return Mutation[T]{}, err
	}
	return out, nil
}

// Update runs a one-shot edit dialog against the stored record.
func (c *Committer[T]) Update(ctx context.Context, id string, values Draft) (Mutation[T], error) {
	current, err := c.Store.Get(id)
	if err != nil {
		return Mutation[T]{}, err
	}
	var out Mutation[T]
	err = RunEdit(c.Kind, c.Rules, id, c.Encode(current), c.defaults(), values, func(sub Submission) error {
		var applyErr error
		out, applyErr = c.Apply(ctx, sub)
		return applyErr
	})
	c.observe(err)
	if err != nil {
		return Mutation[T]{}, err
	}
	return out, nil
}

// Apply commits an accepted submission: edits replace the target, anything else inserts.
func (c *Committer[T]) Apply(ctx context.Context, sub Submission) (Mutation[T], error) {
	var (
		record T
		err    error
		op     string
		desc   string
	)
	next := c.Decode(sub.Values)
	switch sub.Mode {
	case enums.FormModeEdit:
		op, desc = "replace", c.Messages.Updated
		record, err = c.Store.Replace(sub.TargetID, func(current *T) {
			if c.Keep != nil {
				c.Keep(*current, &next)
			}
			*current = next
		})
	default:
		op, desc = "insert", c.Messages.Created
		record, err = c.Store.Insert(next)
	}
	if err != nil {
		if !pkgerrors.Is(err, pkgerrors.CodeNotFound) {
			notifications.Failure(ctx, c.Notices, "Error", "Something went wrong. Please try again.")
		}
		return Mutation[T]{}, err
	}

	c.recordMutation(ctx, op, c.Store.IDOf(record))
	return Mutation[T]{
		Record:       record,
		Notification: notifications.Success(ctx, c.Notices, "Success", desc),
	}, nil
}

// Delete removes a record once the user confirms. Declining leaves everything untouched;
// an unanswered prompt comes back as a confirmation-required error.
func (c *Committer[T]) Delete(ctx context.Context, id string, confirm collection.Confirmation) (Removal, error) {
	switch confirm {
	case collection.Declined:
		return Removal{ID: id}, nil
	case collection.Confirmed:
	default:
		if _, err := c.Store.Get(id); err != nil {
			return Removal{}, err
		}
		return Removal{}, collection.ConfirmationRequired(id, c.Messages.DeletePrompt)
	}

	if err := c.Store.Remove(id); err != nil {
		return Removal{}, err
	}
	c.recordMutation(ctx, "remove", id)
	return Removal{
		ID:           id,
		Deleted:      true,
		Notification: notifications.Success(ctx, c.Notices, c.Messages.DeletedTitle, c.Messages.DeletedBody),
	}, nil
}

func (c *Committer[T]) defaults() Draft {
	if c.Defaults == nil {
		return Draft{}
	}
	return c.Defaults()
}

func (c *Committer[T]) recordMutation(ctx context.Context, op, id string) {
	c.Metrics.IncMutation(c.Kind.String(), op)
	c.Metrics.SetSize(c.Kind.String(), c.Store.Len())
	logg := c.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	ctx = logg.WithRecord(ctx, c.Kind.String(), id)
	logg.Info(logg.WithField(ctx, "op", op), c.Kind.String()+" mutated")
}

// observe counts validated submits; failures past validation are not submissions.
func (c *Committer[T]) observe(err error) {
	switch {
	case err == nil:
		c.Metrics.IncSubmission(c.Kind.String(), true)
	case pkgerrors.Is(err, pkgerrors.CodeValidation):
		c.Metrics.IncSubmission(c.Kind.String(), false)
	}
}
