package invoices

import (
	"context"
	"time"

	"github.com/angelmondragon/vegmart-backend/internal/collection"
	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
	"github.com/angelmondragon/vegmart-backend/pkg/metrics"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

const (
	kind = enums.EntityKindInvoice

	DeletePrompt = "Are you sure you want to delete this invoice?"
)

// ServiceParams groups dependencies for the invoice service.
type ServiceParams struct {
	Repo          *Repository
	Notifications notifications.Service
	Metrics       *metrics.CollectionMetrics
	Logger        *logger.Logger
	// Today supplies the default invoice date. Defaults to the local calendar day.
	Today func() types.Date
}

// Service exposes the invoices page operations and backs the invoice form dialog.
type Service interface {
	forms.Backend
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Get(ctx context.Context, id string) (Invoice, error)
	View(ctx context.Context, id string) (Invoice, error)
	Print(ctx context.Context, id string) (PrintResult, error)
	Create(ctx context.Context, values forms.Draft) (MutationResult, error)
	Update(ctx context.Context, id string, values forms.Draft) (MutationResult, error)
	Delete(ctx context.Context, id string, confirm collection.Confirmation) (DeleteResult, error)
}

type service struct {
	repo    *Repository
	notices notifications.Service
	metrics *metrics.CollectionMetrics
	logg    *logger.Logger
	today   func() types.Date
	commit  *forms.Committer[Invoice]
}

// NewService builds an invoice service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invoice repo is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	today := params.Today
	if today == nil {
		today = func() types.Date { return types.DateOf(time.Now()) }
	}
	svc := &service{
		repo:    params.Repo,
		notices: params.Notifications,
		metrics: params.Metrics,
		logg:    logg,
		today:   today,
	}
	svc.commit = &forms.Committer[Invoice]{
		Kind:     kind,
		Store:    params.Repo,
		Rules:    Rules,
		Defaults: svc.Defaults,
		Encode:   toDraft,
		Decode:   fromDraft,
		Messages: forms.Messages{
			Created:      "Invoice created successfully",
			Updated:      "Invoice updated successfully",
			DeletedTitle: "Invoice deleted",
			DeletedBody:  "The invoice has been removed successfully.",
			DeletePrompt: DeletePrompt,
		},
		Notices: params.Notifications,
		Metrics: params.Metrics,
		Logger:  logg,
	}
	svc.metrics.SetSize(kind.String(), svc.repo.Len())
	return svc, nil
}

// Predicate matches invoice tag, bill number, seller or buyer and the status chip.
func Predicate(q filter.Query) filter.Predicate[Invoice] {
	return func(inv Invoice) bool {
		return filter.Matches(q.Text, inv.ID, inv.BillNumber, inv.Seller, inv.Buyer) &&
			filter.CategoryMatches(q.Category, inv.Status.String())
	}
}

func (s *service) List(_ context.Context, input ListInput) (*ListResult, error) {
	all := s.repo.List()
	return &ListResult{
		Page:   filter.Select(all, input.Query, Predicate(input.Query), input.Page),
		Totals: TotalsOf(all),
	}, nil
}

// TotalsOf sums amounts overall and per status.
func TotalsOf(all []Invoice) Totals {
	var t Totals
	for _, inv := range all {
		t.Amount = t.Amount.Add(inv.Amount)
		switch inv.Status {
		case enums.InvoiceStatusPaid:
			t.Paid = t.Paid.Add(inv.Amount)
		case enums.InvoiceStatusPending:
			t.Pending = t.Pending.Add(inv.Amount)
		}
	}
	return t
}

func (s *service) Get(_ context.Context, id string) (Invoice, error) {
	return s.repo.Get(id)
}

// View returns the read-only detail shown by the invoice viewer.
func (s *service) View(ctx context.Context, id string) (Invoice, error) {
	return s.Get(ctx, id)
}

// Print only announces the request; the document itself is produced by the browser.
func (s *service) Print(ctx context.Context, id string) (PrintResult, error) {
	inv, err := s.repo.Get(id)
	if err != nil {
		return PrintResult{}, err
	}
	s.logg.Info(s.logg.WithRecord(ctx, kind.String(), id), "invoice print requested")
	return PrintResult{
		Invoice:      inv,
		Notification: notifications.Success(ctx, s.notices, "Print", "Printing invoice "+inv.BillNumber),
	}, nil
}

func (s *service) RuleSet() forms.RuleSet {
	return Rules
}

// Defaults opens new invoices as pending and dated today.
func (s *service) Defaults() forms.Draft {
	return defaults(s.today())
}

func (s *service) DraftOf(_ context.Context, id string) (forms.Draft, error) {
	inv, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return toDraft(inv), nil
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
