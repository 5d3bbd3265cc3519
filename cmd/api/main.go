package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/vegmart-backend/api/controllers"
	"github.com/angelmondragon/vegmart-backend/api/routes"
	"github.com/angelmondragon/vegmart-backend/internal/dashboard"
	"github.com/angelmondragon/vegmart-backend/internal/expenses"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/internal/invoices"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/internal/sellers"
	"github.com/angelmondragon/vegmart-backend/internal/vegetables"
	"github.com/angelmondragon/vegmart-backend/internal/views"
	"github.com/angelmondragon/vegmart-backend/pkg/config"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	"github.com/angelmondragon/vegmart-backend/pkg/instance"
	"github.com/angelmondragon/vegmart-backend/pkg/locale"
	"github.com/angelmondragon/vegmart-backend/pkg/logger"
	"github.com/angelmondragon/vegmart-backend/pkg/metrics"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	deps, err := bootstrap(cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap api", err)
		os.Exit(1)
	}

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

// bootstrap builds the collections, services and view layer the router needs.
func bootstrap(cfg *config.Config, logg *logger.Logger) (routes.Dependencies, error) {
	var deps routes.Dependencies

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collectionMetrics := metrics.NewCollectionMetrics(reg)

	format := locale.New(cfg.Locale)
	today := func() types.Date { return format.Today(time.Now()) }

	vegRepo, err := vegetables.NewRepository(nil)
	if err != nil {
		return deps, fmt.Errorf("vegetable repository: %w", err)
	}
	sellerRepo, err := sellers.NewRepository(nil)
	if err != nil {
		return deps, fmt.Errorf("seller repository: %w", err)
	}
	invoiceRepo, err := invoices.NewRepository()
	if err != nil {
		return deps, fmt.Errorf("invoice repository: %w", err)
	}
	expenseRepo, err := expenses.NewRepository()
	if err != nil {
		return deps, fmt.Errorf("expense repository: %w", err)
	}

	if cfg.Seed.Enabled {
		var seedErr error
		seedErr = multierr.Append(seedErr, vegRepo.Seed(vegetables.Fixtures()...))
		seedErr = multierr.Append(seedErr, sellerRepo.Seed(sellers.Fixtures()...))
		seedErr = multierr.Append(seedErr, invoiceRepo.Seed(invoices.Fixtures()...))
		seedErr = multierr.Append(seedErr, expenseRepo.Seed(expenses.Fixtures()...))
		if seedErr != nil {
			return deps, fmt.Errorf("seed collections: %w", seedErr)
		}
		logg.Info(logg.WithFields(context.Background(), map[string]any{
			"vegetables": vegRepo.Len(),
			"sellers":    sellerRepo.Len(),
			"invoices":   invoiceRepo.Len(),
			"expenses":   expenseRepo.Len(),
		}), "collections seeded")
	}
	collectionMetrics.SetSize(enums.EntityKindVegetable.String(), vegRepo.Len())
	collectionMetrics.SetSize(enums.EntityKindSeller.String(), sellerRepo.Len())
	collectionMetrics.SetSize(enums.EntityKindInvoice.String(), invoiceRepo.Len())
	collectionMetrics.SetSize(enums.EntityKindExpense.String(), expenseRepo.Len())

	notices := notifications.NewService(notifications.Params{
		TTL:      cfg.Notifications.TTL,
		MaxItems: cfg.Notifications.MaxItems,
	})

	vegSvc, err := vegetables.NewService(vegetables.ServiceParams{
		Repo:          vegRepo,
		Notifications: notices,
		Metrics:       collectionMetrics,
		Logger:        logg,
	})
	if err != nil {
		return deps, fmt.Errorf("vegetable service: %w", err)
	}
	sellerSvc, err := sellers.NewService(sellers.ServiceParams{
		Repo:          sellerRepo,
		Notifications: notices,
		Metrics:       collectionMetrics,
		Logger:        logg,
	})
	if err != nil {
		return deps, fmt.Errorf("seller service: %w", err)
	}
	invoiceSvc, err := invoices.NewService(invoices.ServiceParams{
		Repo:          invoiceRepo,
		Notifications: notices,
		Metrics:       collectionMetrics,
		Logger:        logg,
		Today:         today,
	})
	if err != nil {
		return deps, fmt.Errorf("invoice service: %w", err)
	}
	expenseSvc, err := expenses.NewService(expenses.ServiceParams{
		Repo:    expenseRepo,
		Metrics: collectionMetrics,
		Today:   today,
	})
	if err != nil {
		return deps, fmt.Errorf("expense service: %w", err)
	}
	dash, err := dashboard.NewService(dashboard.ServiceParams{
		Vegetables: vegSvc,
		Sellers:    sellerSvc,
		Invoices:   invoiceSvc,
		Expenses:   expenseSvc,
		Today:      today,
	})
	if err != nil {
		return deps, fmt.Errorf("dashboard service: %w", err)
	}

	registry := forms.NewRegistry(map[enums.EntityKind]forms.Backend{
		enums.EntityKindVegetable: vegSvc,
		enums.EntityKindSeller:    sellerSvc,
		enums.EntityKindInvoice:   invoiceSvc,
	}, cfg.Forms.MaxOpenSessions)
	registry.SetIdleTimeout(cfg.Forms.IdleTimeout)
	registry.ObserveSubmissions(func(kind enums.EntityKind, accepted bool) {
		collectionMetrics.IncSubmission(kind.String(), accepted)
	})

	renderer, err := views.NewRenderer()
	if err != nil {
		return deps, fmt.Errorf("view templates: %w", err)
	}

	deps = routes.Dependencies{
		Vegetables:    vegSvc,
		Sellers:       sellerSvc,
		Invoices:      invoiceSvc,
		Expenses:      expenseSvc,
		Dashboard:     dash,
		Notifications: notices,
		Forms:         registry,
		Builder:       views.NewBuilder(format),
		Renderer:      renderer,
		Readiness: map[string]controllers.ReadinessCheck{
			"forms": formsCapacity(registry, cfg.Forms.MaxOpenSessions),
		},
	}
	if cfg.Metrics.Enabled {
		deps.Gatherer = reg
		deps.HTTPMetrics = metrics.NewHTTPMetrics(reg)
	}
	return deps, nil
}

// formsCapacity fails readiness once every form slot is taken.
func formsCapacity(registry *forms.Registry, limit int) controllers.ReadinessCheck {
	return func(context.Context) error {
		if limit > 0 && registry.OpenCount() >= limit {
			return fmt.Errorf("%d form sessions open", limit)
		}
		return nil
	}
}
