package pagination

const (
	// MaxPerPage caps how many rows a single page may carry.
	MaxPerPage = 100
)

// Params holds page-based pagination inputs from controllers or services.
// A zero PerPage means "everything on one page".
type Params struct {
	Page    int
	PerPage int
}

// Meta describes the page that was cut from a visible subset.
type Meta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Normalize clamps the page to >= 1 and the page size to MaxPerPage.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage < 0 {
		p.PerPage = 0
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Slice returns the requested page of items plus its metadata. The input is never mutated.
func Slice[T any](items []T, params Params) ([]T, Meta) {
	params = params.Normalize()
	total := len(items)

	if params.PerPage == 0 {
		out := make([]T, total)
		copy(out, items)
		pages := 1
		if total == 0 {
			pages = 0
		}
		return out, Meta{Page: 1, PerPage: total, TotalItems: total, TotalPages: pages}
	}

	pages := (total + params.PerPage - 1) / params.PerPage
	meta := Meta{Page: params.Page, PerPage: params.PerPage, TotalItems: total, TotalPages: pages}

	start := (params.Page - 1) * params.PerPage
	if start >= total {
		return []T{}, meta
	}
	end := start + params.PerPage
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, meta
}
