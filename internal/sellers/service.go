package sellers

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
	kind = enums.EntityKindSeller

	DeletePrompt = "Are you sure you want to delete this seller?"
)

// ServiceParams groups dependencies for the seller service.
type ServiceParams struct {
	Repo          *Repository
	Notifications notifications.Service
	Metrics       *metrics.CollectionMetrics
	Logger        *logger.Logger
}

// Service exposes the sellers page operations and backs the seller form dialog.
type Service interface {
	forms.Backend
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id string) (Seller, error)
	Create(ctx context.Context, values forms.Draft) (MutationResult, error)
	Update(ctx context.Context, id string, values forms.Draft) (MutationResult, error)
	Delete(ctx context.Context, id string, confirm collection.Confirmation) (DeleteResult, error)
}

type service struct {
	repo    *Repository
	metrics *metrics.CollectionMetrics
	commit  *forms.Committer[Seller]
}

// NewService builds a seller service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller repo is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	svc := &service{
		repo:    params.Repo,
		metrics: params.Metrics,
	}
	svc.commit = &forms.Committer[Seller]{
		Kind:     kind,
		Store:    params.Repo,
		Rules:    Rules,
		Defaults: svc.Defaults,
		Encode:   toDraft,
		Decode:   fromDraft,
		Keep: func(stored Seller, edited *Seller) {
			edited.TotalSales = stored.TotalSales
		},
		Messages: forms.Messages{
			Created:      "Seller added successfully",
			Updated:      "Seller updated successfully",
			DeletedTitle: "Seller deleted",
			DeletedBody:  "The seller has been removed successfully.",
			DeletePrompt: DeletePrompt,
		},
		Notices: params.Notifications,
		Metrics: params.Metrics,
		Logger:  logg,
	}
	svc.metrics.SetSize(kind.String(), svc.repo.Len())
	return svc, nil
}

// Predicate matches shop name, seller name or contact, ignoring case, and the status chip.
func Predicate(q filter.Query) filter.Predicate[Seller] {
	return func(s Seller) bool {
		return filter.Matches(q.Text, s.ShopName, s.SellerName, s.Contact) &&
			filter.CategoryMatches(q.Category, s.Status.String())
	}
}

func (s *service) List(_ context.Context, input ListInput) (*ListResult, error) {
	all := s.repo.List()
	res := &ListResult{Page: filter.Select(all, input.Query, Predicate(input.Query), input.Page)}
	for _, seller := range all {
		if seller.IsActive() {
			res.Active++
		} else {
			res.Inactive++
		}
	}
	return res, nil
}

func (s *service) Get(_ context.Context, id string) (Seller, error) {
	return s.repo.Get(id)
}

func (s *service) RuleSet() forms.RuleSet {
	return Rules
}

func (s *service) Defaults() forms.Draft {
	return defaults()
}

func (s *service) DraftOf(_ context.Context, id string) (forms.Draft, error) {
	seller, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return toDraft(seller), nil
}

func (s *service) Create(ctx context.Context, values forms.Draft) (MutationResult, error) {
	return s.commit.Create(ctx, values)
}

func (s *service) Update(ctx context.Context, id string, values forms.Draft) (MutationResult, error) {
	return s.commit.Update(ctx, id, values)
}

func (s *service) ApplySubmission(ctx context.Context, sub forms.Submission) (any, error) {
	return s.commit.Apply(ctx, sub)
}

func (s *service) Delete(ctx context.Context, id string, confirm collection.Confirmation) (DeleteResult, error) {
	return s.commit.Delete(ctx, id, confirm)
}
