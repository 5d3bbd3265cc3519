// Package views turns service results into page models and renders them with html/template.
// Builders are pure: the same inputs always yield the same model.
package views

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/pkg/pagination"
)

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

var navigation = []NavItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Vegetables", Path: "/vegetables"},
	{Label: "Sellers", Path: "/sellers"},
	{Label: "Invoices", Path: "/invoices"},
	{Label: "Expenses", Path: "/expenses"},
}

// Nav returns the navigation with the entry for path marked active.
func Nav(path string) []NavItem {
	out := make([]NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Path == path
		out[i] = item
	}
	return out
}

// Layout is shared by every page.
type Layout struct {
	Title   string
	Path    string
	Nav     []NavItem
	Notices []notifications.Notice
}

func newLayout(title, path string, notices []notifications.Notice) Layout {
	return Layout{Title: title, Path: path, Nav: Nav(path), Notices: notices}
}

// EmptyState is the placeholder shown instead of an empty list. CTA is blank when the
// emptiness comes from the filter.
type EmptyState struct {
	Title   string
	Message string
	CTA     string
}

type emptyCopy struct {
	title     string
	noMatches string
	noRecords string
	cta       string
}

func (c emptyCopy) build(state filter.EmptyState) *EmptyState {
	switch state {
	case filter.EmptyStateNoRecords:
		return &EmptyState{Title: c.title, Message: c.noRecords, CTA: c.cta}
	case filter.EmptyStateNoMatches:
		return &EmptyState{Title: c.title, Message: c.noMatches}
	default:
		return nil
	}
}

// Chip is a selectable filter value.
type Chip struct {
	Label  string
	Href   string
	Active bool
}

func chips(path string, values []string, q filter.Query, extra url.Values) []Chip {
	selected := q.Category
	if !q.HasCategory() {
		selected = filter.AllCategories
	}
	out := make([]Chip, 0, len(values))
	for _, v := range values {
		params := searchParams(filter.Query{Text: q.Text}, extra)
		if v != filter.AllCategories {
			params.Set("category", v)
		}
		out = append(out, Chip{Label: v, Href: withQuery(path, params), Active: v == selected})
	}
	return out
}

// Pager links to the neighbouring pages of a list.
type Pager struct {
	Meta pagination.Meta
	Prev string
	Next string
}

func pager(path string, meta pagination.Meta, q filter.Query, extra url.Values) *Pager {
	if meta.TotalPages <= 1 {
		return nil
	}
	link := func(page int) string {
		params := searchParams(q, extra)
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(meta.PerPage))
		return withQuery(path, params)
	}
	p := &Pager{Meta: meta}
	if meta.Page > 1 {
		p.Prev = link(meta.Page - 1)
	}
	if meta.Page < meta.TotalPages {
		p.Next = link(meta.Page + 1)
	}
	return p
}

// searchParams encodes the search state plus any extra parameters.
func searchParams(q filter.Query, extra url.Values) url.Values {
	params := url.Values{}
	for k, vs := range extra {
		params[k] = vs
	}
	if q.Text != "" {
		params.Set("q", q.Text)
	}
	if q.HasCategory() {
		params.Set("category", q.Category)
	}
	return params
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func counter(visible, total int, noun string) string {
	return fmt.Sprintf("Showing %d of %d %s", visible, total, noun)
}
