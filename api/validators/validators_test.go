package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/vegmart-backend/internal/forms"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

func TestDecodeDraftKeepsNumberText(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kale","price":40.50,"stock":null,"organic":true}`))
	draft, err := DecodeDraft(req)
	require.NoError(t, err)
	assert.Equal(t, forms.Draft{"name": "Kale", "price": "40.50", "stock": "", "organic": "true"}, draft)
}

func TestDecodeDraftRejectsNesting(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":{"first":"Kale"}}`))
	_, err := DecodeDraft(req)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1,2]`))
	_, err = DecodeDraft(req)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))
}

func TestDecodeDraftEmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(" "))
	draft, err := DecodeDraft(req)
	require.NoError(t, err)
	assert.Empty(t, draft)
}

type openBody struct {
	Kind string `json:"kind" validate:"required,oneof=vegetable seller"`
}

func TestDecodeJSONBodyUsesJSONNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"kind":"expense"}`))
	var body openBody
	err := DecodeJSONBody(req, &body)
	assert.Equal(t, map[string]string{"kind": "must be one of: vegetable, seller"}, pkgerrors.FieldErrors(err))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"kind":"seller","extra":1}`))
	err = DecodeJSONBody(req, &body)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))
}

func TestParseListQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?q=+Tomato+&category=Fruits&page=2&per_page=10", nil)
	q, page, err := ParseListQuery(req)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", q.Text)
	assert.Equal(t, "Fruits", q.Category)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PerPage)

	req = httptest.NewRequest(http.MethodGet, "/?per_page=1000", nil)
	_, _, err = ParseListQuery(req)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	req = httptest.NewRequest(http.MethodGet, "/?page=abc", nil)
	_, _, err = ParseListQuery(req)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "abc", SanitizeString("  abcdef ", 3))
	assert.Equal(t, "abc", SanitizeString("abc", 0))
	assert.Equal(t, "tomato", SanitizeString("to\x00ma\tto", 0))
	assert.Equal(t, "₹45", SanitizeString("₹45/kg", 3))
}
