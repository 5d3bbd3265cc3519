// Package filter derives the visible subset of a collection from the current search state.
// Every call scans the full list; nothing is cached between requests.
package filter

import "strings"

// AllCategories is the chip that clears the category filter.
const AllCategories = "All"

// Query is the search state of a list page.
type Query struct {
	Text     string
	Category string
}

// IsZero reports whether the query filters nothing.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Text) == "" && !q.HasCategory()
}

// HasCategory reports whether a concrete category (not the All sentinel) is selected.
func (q Query) HasCategory() bool {
	c := strings.TrimSpace(q.Category)
	return c != "" && c != AllCategories
}

// Predicate decides whether a record belongs to the visible subset.
type Predicate[T any] func(T) bool

// Apply keeps the records accepted by pred in their original order.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether any field contains text, ignoring case. Empty text matches everything.
func Matches(text string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// CategoryMatches reports whether category passes the selector.
func CategoryMatches(selector, category string) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" || selector == AllCategories {
		return true
	}
	return selector == category
}

// Categories returns the All chip followed by distinct non-empty values in first-seen order.
func Categories(values []string) []string {
	out := []string{AllCategories}
	seen := map[string]struct{}{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// EmptyState tells a list page which empty-state copy to show.
type EmptyState string

const (
	// EmptyStateNone means the visible subset has records.
	EmptyStateNone EmptyState = ""
	// EmptyStateNoRecords means the collection itself is empty.
	EmptyStateNoRecords EmptyState = "no_records"
	// EmptyStateNoMatches means records exist but the filter hides all of them.
	EmptyStateNoMatches EmptyState = "no_matches"
)

// EmptyStateOf classifies an empty visible subset. A filter that matches nothing in an empty
// collection still reports no_matches, so the page can offer to clear the search.
func EmptyStateOf(total, visible int, q Query) EmptyState {
	if visible > 0 {
		return EmptyStateNone
	}
	if total == 0 && q.IsZero() {
		return EmptyStateNoRecords
	}
	return EmptyStateNoMatches
}
