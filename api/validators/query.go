package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/pagination"
)

const maxSearchLen = 100

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseListQuery reads q, category, page and per_page. per_page defaults to 0, one page
// holding every match.
func ParseListQuery(r *http.Request) (filter.Query, pagination.Params, error) {
	values := r.URL.Query()
	q := filter.Query{
		Text:     SanitizeString(values.Get("q"), maxSearchLen),
		Category: SanitizeString(values.Get("category"), maxSearchLen),
	}
	page, err := ParseQueryInt(r, "page", 1, 1, 1<<20)
	if err != nil {
		return filter.Query{}, pagination.Params{}, err
	}
	perPage, err := ParseQueryInt(r, "per_page", 0, 0, pagination.MaxPerPage)
	if err != nil {
		return filter.Query{}, pagination.Params{}, err
	}
	return q, pagination.Params{Page: page, PerPage: perPage}, nil
}
