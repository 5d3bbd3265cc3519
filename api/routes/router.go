package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/vegmart-backend/api/controllers"
	"github.com/angelmondragon/vegmart-backend/api/middleware"
	"github.com/angelmondragon/vegmart-backend/internal/dashboard"
	"github.com/angelmondragon/vegmart-backend/internal/expenses"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/internal/invoices"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/internal/sellers"
	"github.com/angelmondragon/vegmart-backend/internal/vegetables"
	"github.com/angelmondragon/vegmart-backend/internal/views"
	"github.com/angelmondragon/vegmart-backend/pkg/config"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
	"github.com/angelmondragon/vegmart-backend/pkg/metrics"
)

// Dependencies are the services the router dispatches to. Gatherer and HTTPMetrics may be
// nil when metrics are disabled.
type Dependencies struct {
	Vegetables    vegetables.Service
	Sellers       sellers.Service
	Invoices      invoices.Service
	Expenses      expenses.Service
	Dashboard     dashboard.Service
	Notifications notifications.Service
	Forms         *forms.Registry
	Builder       *views.Builder
	Renderer      *views.Renderer
	Readiness     map[string]controllers.ReadinessCheck
	Gatherer      prometheus.Gatherer
	HTTPMetrics   *metrics.HTTPMetrics
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Readiness))
	})
	if cfg.Metrics.Enabled && deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	pages := &controllers.Pages{
		Builder:       deps.Builder,
		Renderer:      deps.Renderer,
		Vegetables:    deps.Vegetables,
		Sellers:       deps.Sellers,
		Invoices:      deps.Invoices,
		Expenses:      deps.Expenses,
		Dashboard:     deps.Dashboard,
		Notifications: deps.Notifications,
		Logger:        logg,
	}
	r.Get("/", pages.DashboardPage())
	r.Get("/vegetables", pages.VegetablesPage())
	r.Get("/sellers", pages.SellersPage())
	r.Get("/invoices", pages.InvoicesPage())
	r.Get("/expenses", pages.ExpensesPage())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", controllers.Dashboard(deps.Dashboard, logg))

		r.Route("/vegetables", func(r chi.Router) {
			r.Get("/", controllers.ListVegetables(deps.Vegetables, logg))
			r.Post("/", controllers.CreateVegetable(deps.Vegetables, logg))
			r.Get("/categories", controllers.VegetableCategories(deps.Vegetables, logg))
			r.Get("/{id}", controllers.GetVegetable(deps.Vegetables, logg))
			r.Put("/{id}", controllers.UpdateVegetable(deps.Vegetables, logg))
			r.Delete("/{id}", controllers.DeleteVegetable(deps.Vegetables, logg))
		})

		r.Route("/sellers", func(r chi.Router) {
			r.Get("/", controllers.ListSellers(deps.Sellers, logg))
			r.Post("/", controllers.CreateSeller(deps.Sellers, logg))
			r.Get("/{id}", controllers.GetSeller(deps.Sellers, logg))
			r.Put("/{id}", controllers.UpdateSeller(deps.Sellers, logg))
			r.Delete("/{id}", controllers.DeleteSeller(deps.Sellers, logg))
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", controllers.ListInvoices(deps.Invoices, logg))
			r.Post("/", controllers.CreateInvoice(deps.Invoices, logg))
			r.Get("/{id}", controllers.GetInvoice(deps.Invoices, logg))
			r.Put("/{id}", controllers.UpdateInvoice(deps.Invoices, logg))
			r.Delete("/{id}", controllers.DeleteInvoice(deps.Invoices, logg))
			r.Post("/{id}/print", controllers.PrintInvoice(deps.Invoices, logg))
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", controllers.ListExpenses(deps.Expenses, logg))
			r.Get("/{id}", controllers.GetExpense(deps.Expenses, logg))
		})

		r.Route("/forms", func(r chi.Router) {
			r.Post("/", controllers.OpenForm(deps.Forms, logg))
			r.Get("/{id}", controllers.GetForm(deps.Forms, logg))
			r.Patch("/{id}", controllers.UpdateForm(deps.Forms, logg))
			r.Post("/{id}/submit", controllers.SubmitForm(deps.Forms, logg))
			r.Delete("/{id}", controllers.CancelForm(deps.Forms, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(deps.Notifications, logg))
			r.Delete("/{id}", controllers.DismissNotification(deps.Notifications, logg))
		})
	})

	return r
}
