package expenses

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/metrics"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

// ServiceParams groups dependencies for the expense service.
type ServiceParams struct {
	Repo    *Repository
	Metrics *metrics.CollectionMetrics
	// Today anchors the monthly summary. Defaults to the local calendar day.
	Today func() types.Date
}

// Service exposes the read-only expenses page.
type Service interface {
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id string) (Expense, error)
	Total(ctx context.Context) Summary
}

type service struct {
	repo  *Repository
	today func() types.Date
}

// NewService builds an expense service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expense repo is required")
	}
	today := params.Today
	if today == nil {
		today = func() types.Date { return types.DateOf(time.Now()) }
	}
	params.Metrics.SetSize(enums.EntityKindExpense.String(), params.Repo.Len())
	return &service{repo: params.Repo, today: today}, nil
}

// Predicate matches detail or category text and the category chip.
func Predicate(q filter.Query) filter.Predicate[Expense] {
	return func(e Expense) bool {
		return filter.Matches(q.Text, e.Detail, e.Category) && filter.CategoryMatches(q.Category, e.Category)
	}
}

func (s *service) List(_ context.Context, input ListInput) (*ListResult, error) {
	all := s.repo.List()
	categories := make([]string, 0, len(all))
	for _, e := range all {
		categories = append(categories, e.Category)
	}
	return &ListResult{
		Page:       filter.Select(all, input.Query, Predicate(input.Query), input.Page),
		Categories: filter.Categories(categories),
		Summary:    summarize(all, s.today()),
	}, nil
}

func (s *service) Get(_ context.Context, id string) (Expense, error) {
	return s.repo.Get(id)
}

// Total sums every expense and the subset dated in the current month.
func (s *service) Total(_ context.Context) Summary {
	return summarize(s.repo.List(), s.today())
}

func summarize(all []Expense, today types.Date) Summary {
	sum := Summary{Total: decimal.Zero, ThisMonth: decimal.Zero}
	for _, e := range all {
		sum.Total = sum.Total.Add(e.Amount)
		if e.Date.SameMonth(today) {
			sum.ThisMonth = sum.ThisMonth.Add(e.Amount)
		}
	}
	return sum
}
