package vegetables

import (
	"context"

	"github.com/angelmondragon/vegmart-backend/internal/collection"
	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
	"github.com/angelmondragon/vegmart-backend/pkg/metrics"
)

const (
	kind = enums.EntityKindVegetable

	// DeletePrompt is shown before a vegetable is removed.
	DeletePrompt = "Are you sure you want to delete this vegetable?"
)

// ServiceParams groups dependencies for the vegetable service.
type ServiceParams struct {
	Repo          *Repository
	Notifications notifications.Service
	Metrics       *metrics.CollectionMetrics
	Logger        *logger.Logger
}

// Service exposes the inventory page operations. It also backs the vegetable form dialog.
type Service interface {
	forms.Backend
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id string) (Vegetable, error)
	Categories(ctx context.Context) []string
	Create(ctx context.Context, values forms.Draft) (MutationResult, error)
	Update(ctx context.Context, id string, values forms.Draft) (MutationResult, error)
	Delete(ctx context.Context, id string, confirm collection.Confirmation) (DeleteResult, error)
}

type service struct {
	repo    *Repository
	metrics *metrics.CollectionMetrics
	commit  *forms.Committer[Vegetable]
}

// NewService builds a vegetable service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vegetable repo is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	svc := &service{
		repo:    params.Repo,
		metrics: params.Metrics,
	}
	svc.commit = &forms.Committer[Vegetable]{
		Kind:     kind,
		Store:    params.Repo,
		Rules:    Rules,
		Defaults: svc.Defaults,
		Encode:   toDraft,
		Decode:   fromDraft,
		Messages: forms.Messages{
			Created:      "Vegetable added successfully",
			Updated:      "Vegetable updated successfully",
			DeletedTitle: "Vegetable deleted",
			DeletedBody:  "The vegetable has been removed successfully.",
			DeletePrompt: DeletePrompt,
		},
		Notices: params.Notifications,
		Metrics: params.Metrics,
		Logger:  logg,
	}
	svc.metrics.SetSize(kind.String(), svc.repo.Len())
	return svc, nil
}

// Predicate matches name or description against the search text and the category chip.
func Predicate(q filter.Query) filter.Predicate[Vegetable] {
	return func(v Vegetable) bool {
		description := ""
		if v.Description != nil {
			description = *v.Description
		}
		return filter.Matches(q.Text, v.Name, description) && filter.CategoryMatches(q.Category, v.CategoryName())
	}
}

func (s *service) List(_ context.Context, input ListInput) (*ListResult, error) {
	all := s.repo.List()
	return &ListResult{
		Page:       filter.Select(all, input.Query, Predicate(input.Query), input.Page),
		Categories: categoriesOf(all),
	}, nil
}

func (s *service) Get(_ context.Context, id string) (Vegetable, error) {
	return s.repo.Get(id)
}

// Categories returns the All chip followed by every category in use.
func (s *service) Categories(_ context.Context) []string {
	return categoriesOf(s.repo.List())
}

func categoriesOf(all []Vegetable) []string {
	values := make([]string, 0, len(all))
	for _, v := range all {
		values = append(values, v.CategoryName())
	}
	return filter.Categories(values)
}

func (s *service) RuleSet() forms.RuleSet {
	return Rules
}

func (s *service) Defaults() forms.Draft {
	return forms.Draft{}
}

func (s *service) DraftOf(_ context.Context, id string) (forms.Draft, error) {
	v, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return toDraft(v), nil
}

func (s *service) Create(ctx context.Context, values forms.Draft) (MutationResult, error) {
	return s.commit.Create(ctx, values)
}

func (s *service) Update(ctx context.Context, id string, values forms.Draft) (MutationResult, error) {
	return s.commit.Update(ctx, id, values)
}

// ApplySubmission commits an accepted dialog.
func (s *service) ApplySubmission(ctx context.Context, sub forms.Submission) (any, error) {
	return s.commit.Apply(ctx, sub)
}

// Delete removes a vegetable once the user confirms. Declining leaves everything untouched.
func (s *service) Delete(ctx context.Context, id string, confirm collection.Confirmation) (DeleteResult, error) {
	return s.commit.Delete(ctx, id, confirm)
}
