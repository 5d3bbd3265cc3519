package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/vegmart-backend/internal/vegetables"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

func TestListVegetablesFiltersByQuery(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/?q=crisp&category=Vegetables", nil)
	resp := httptest.NewRecorder()
	ListVegetables(f.vegetables, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var res vegetables.ListResult
	decodeData(t, resp, &res)
	if len(res.Items) != 2 || res.Items[0].Name != "Green Peppers" || res.Items[1].Name != "Cucumber" {
		t.Fatalf("unexpected items %+v", res.Items)
	}
	if res.Total != 6 {
		t.Fatalf("expected total 6 got %d", res.Total)
	}
}

func TestListVegetablesRejectsBadPage(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/?page=zero", nil)
	resp := httptest.NewRecorder()
	ListVegetables(f.vegetables, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCreateVegetableReturnsCreated(t *testing.T) {
	f := newFixture(t)

	body := `{"name":"Kale","category":"Leafy Greens","price":"50","stock":"40"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	CreateVegetable(f.vegetables, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	var res vegetables.MutationResult
	decodeData(t, resp, &res)
	if res.Record.Name != "Kale" || res.Record.ID == "" {
		t.Fatalf("unexpected record %+v", res.Record)
	}
	if res.Notification == nil || res.Notification.Description != "Vegetable added successfully" {
		t.Fatalf("expected success notice, got %+v", res.Notification)
	}
}

func TestCreateVegetableRequiresName(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price":"10"}`))
	resp := httptest.NewRecorder()
	CreateVegetable(f.vegetables, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	apiErr := decodeError(t, resp)
	if apiErr.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code %s", apiErr.Code)
	}
	details, ok := apiErr.Details.(map[string]any)
	if !ok || details["name"] != "Name is required" {
		t.Fatalf("expected name message, got %#v", apiErr.Details)
	}
}

func TestGetVegetableNotFound(t *testing.T) {
	f := newFixture(t)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "missing")
	resp := httptest.NewRecorder()
	GetVegetable(f.vegetables, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestDeleteVegetableConfirmation(t *testing.T) {
	f := newFixture(t)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", "1")
	resp := httptest.NewRecorder()
	DeleteVegetable(f.vegetables, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428 got %d", resp.Code)
	}
	apiErr := decodeError(t, resp)
	if apiErr.Code != string(pkgerrors.CodeConfirmationRequired) {
		t.Fatalf("unexpected code %s", apiErr.Code)
	}

	req = withURLParam(httptest.NewRequest(http.MethodDelete, "/?confirm=false", nil), "id", "1")
	resp = httptest.NewRecorder()
	DeleteVegetable(f.vegetables, nil).ServeHTTP(resp, req)
	var declined vegetables.DeleteResult
	decodeData(t, resp, &declined)
	if declined.Deleted {
		t.Fatalf("declined delete removed the record")
	}

	req = withURLParam(httptest.NewRequest(http.MethodDelete, "/?confirm=true", nil), "id", "1")
	resp = httptest.NewRecorder()
	DeleteVegetable(f.vegetables, nil).ServeHTTP(resp, req)
	var confirmed vegetables.DeleteResult
	decodeData(t, resp, &confirmed)
	if !confirmed.Deleted || confirmed.Notification == nil {
		t.Fatalf("unexpected delete result %+v", confirmed)
	}

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "1")
	resp = httptest.NewRecorder()
	GetVegetable(f.vegetables, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected record gone, got %d", resp.Code)
	}
}
