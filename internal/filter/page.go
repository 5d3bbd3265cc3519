package filter

import "github.com/angelmondragon/vegmart-backend/pkg/pagination"

// Page is one list-page worth of a filtered collection.
type Page[T any] struct {
	Items      []T             `json:"items"`
	Total      int             `json:"total"`
	Matched    int             `json:"matched"`
	Pagination pagination.Meta `json:"pagination"`
	EmptyState EmptyState      `json:"empty_state,omitempty"`
}

// Select filters all with pred, cuts the requested page and classifies the empty state
// against the unpaged match count.
func Select[T any](all []T, q Query, pred Predicate[T], params pagination.Params) Page[T] {
	matched := Apply(all, pred)
	items, meta := pagination.Slice(matched, params)
	return Page[T]{
		Items:      items,
		Total:      len(all),
		Matched:    len(matched),
		Pagination: meta,
		EmptyState: EmptyStateOf(len(all), len(matched), q),
	}
}
