package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/vegmart-backend/internal/invoices"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/internal/sellers"
	"github.com/angelmondragon/vegmart-backend/internal/vegetables"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

type fixture struct {
	notices    notifications.Service
	vegetables vegetables.Service
	sellers    sellers.Service
	invoices   invoices.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	notices := notifications.NewService(notifications.Params{})

	vegRepo, err := vegetables.NewRepository(nil)
	if err != nil {
		t.Fatalf("vegetable repo: %v", err)
	}
	if err := vegRepo.Seed(vegetables.Fixtures()...); err != nil {
		t.Fatalf("seed vegetables: %v", err)
	}
	vegSvc, err := vegetables.NewService(vegetables.ServiceParams{Repo: vegRepo, Notifications: notices})
	if err != nil {
		t.Fatalf("vegetable service: %v", err)
	}

	sellerRepo, err := sellers.NewRepository(nil)
	if err != nil {
		t.Fatalf("seller repo: %v", err)
	}
	if err := sellerRepo.Seed(sellers.Fixtures()...); err != nil {
		t.Fatalf("seed sellers: %v", err)
	}
	sellerSvc, err := sellers.NewService(sellers.ServiceParams{Repo: sellerRepo, Notifications: notices})
	if err != nil {
		t.Fatalf("seller service: %v", err)
	}

	invoiceRepo, err := invoices.NewRepository()
	if err != nil {
		t.Fatalf("invoice repo: %v", err)
	}
	if err := invoiceRepo.Seed(invoices.Fixtures()...); err != nil {
		t.Fatalf("seed invoices: %v", err)
	}
	invoiceSvc, err := invoices.NewService(invoices.ServiceParams{Repo: invoiceRepo, Notifications: notices})
	if err != nil {
		t.Fatalf("invoice service: %v", err)
	}

	return fixture{notices: notices, vegetables: vegSvc, sellers: sellerSvc, invoices: invoiceSvc}
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	envelope := struct {
		Data any `json:"data"`
	}{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return envelope.Error
}
