package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/vegmart-backend/api/validators"
	"github.com/angelmondragon/vegmart-backend/internal/dashboard"
	"github.com/angelmondragon/vegmart-backend/internal/expenses"
	"github.com/angelmondragon/vegmart-backend/internal/invoices"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/internal/sellers"
	"github.com/angelmondragon/vegmart-backend/internal/vegetables"
	"github.com/angelmondragon/vegmart-backend/internal/views"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
)

// Pages serves the server-rendered screens. Each page reads the same search parameters as
// its JSON list endpoint so links and API calls agree.
type Pages struct {
	Builder       *views.Builder
	Renderer      *views.Renderer
	Vegetables    vegetables.Service
	Sellers       sellers.Service
	Invoices      invoices.Service
	Expenses      expenses.Service
	Dashboard     dashboard.Service
	Notifications notifications.Service
	Logger        *logger.Logger
}

func (p *Pages) DashboardPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p.Dashboard == nil {
			p.fail(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		ov, err := p.Dashboard.Overview(r.Context())
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		p.render(w, r, views.PageDashboard, p.Builder.Dashboard(ov, p.notices(r.Context())))
	}
}

func (p *Pages) VegetablesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p.Vegetables == nil {
			p.fail(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "vegetable service unavailable"))
			return
		}
		q, page, err := validators.ParseListQuery(r)
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		res, err := p.Vegetables.List(r.Context(), vegetables.ListInput{Query: q, Page: page})
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		mode := views.ParseViewMode(r.URL.Query().Get("view"))
		p.render(w, r, views.PageVegetables, p.Builder.Vegetables(res, q, mode, p.notices(r.Context())))
	}
}

func (p *Pages) SellersPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p.Sellers == nil {
			p.fail(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "seller service unavailable"))
			return
		}
		q, page, err := validators.ParseListQuery(r)
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		res, err := p.Sellers.List(r.Context(), sellers.ListInput{Query: q, Page: page})
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		p.render(w, r, views.PageSellers, p.Builder.Sellers(res, q, p.notices(r.Context())))
	}
}

func (p *Pages) InvoicesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p.Invoices == nil {
			p.fail(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "invoice service unavailable"))
			return
		}
		q, page, err := validators.ParseListQuery(r)
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		res, err := p.Invoices.List(r.Context(), invoices.ListInput{Query: q, Page: page})
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		p.render(w, r, views.PageInvoices, p.Builder.Invoices(res, q, p.notices(r.Context())))
	}
}

func (p *Pages) ExpensesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p.Expenses == nil {
			p.fail(r.Context(), w, pkgerrors.New(pkgerrors.CodeInternal, "expense service unavailable"))
			return
		}
		q, page, err := validators.ParseListQuery(r)
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		res, err := p.Expenses.List(r.Context(), expenses.ListInput{Query: q, Page: page})
		if err != nil {
			p.fail(r.Context(), w, err)
			return
		}
		p.render(w, r, views.PageExpenses, p.Builder.Expenses(res, q, p.notices(r.Context())))
	}
}

func (p *Pages) notices(ctx context.Context) []notifications.Notice {
	if p.Notifications == nil {
		return nil
	}
	return p.Notifications.List(ctx)
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.Renderer.Render(w, page, data); err != nil {
		p.fail(r.Context(), w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render page"))
	}
}

func (p *Pages) fail(ctx context.Context, w http.ResponseWriter, err error) {
	code := pkgerrors.CodeInternal
	if typed := pkgerrors.As(err); typed != nil {
		code = typed.Code()
	}
	meta := pkgerrors.MetadataFor(code)
	if p.Logger != nil {
		ctx = p.Logger.WithFields(ctx, map[string]any{"error_code": code, "status": meta.HTTPStatus})
		if meta.HTTPStatus >= http.StatusInternalServerError {
			p.Logger.Error(ctx, "page.error", err)
		} else {
			p.Logger.Warn(ctx, "page.rejected")
		}
	}
	w.Header().Del("Content-Type")
	http.Error(w, meta.PublicMessage, meta.HTTPStatus)
}
