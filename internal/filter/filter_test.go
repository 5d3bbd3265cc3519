package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angelmondragon/vegmart-backend/pkg/pagination"
)

type produce struct {
	Name     string
	Category string
}

var basket = []produce{
	{Name: "Organic Tomatoes", Category: "Fruits"},
	{Name: "Fresh Spinach", Category: "Leafy Greens"},
	{Name: "Red Onions", Category: "Root Vegetables"},
	{Name: "Carrots", Category: "Root Vegetables"},
}

func byQuery(q Query) Predicate[produce] {
	return func(p produce) bool {
		return Matches(q.Text, p.Name) && CategoryMatches(q.Category, p.Category)
	}
}

func TestMatchesIsCaseInsensitive(t *testing.T) {
	assert.True(t, Matches("SPIN", "Fresh Spinach"))
	assert.True(t, Matches("  ", "anything"))
	assert.True(t, Matches("", ""))
	assert.False(t, Matches("kale", "Fresh Spinach", "leafy"))
	assert.True(t, Matches("leafy", "Fresh Spinach", "Nutrient-rich leafy greens"))
}

func TestCategoryMatches(t *testing.T) {
	assert.True(t, CategoryMatches("", "Fruits"))
	assert.True(t, CategoryMatches(AllCategories, ""))
	assert.True(t, CategoryMatches("Fruits", "Fruits"))
	assert.False(t, CategoryMatches("Fruits", "fruits"))
	assert.False(t, CategoryMatches("Fruits", ""))
}

func TestApplyEmptyQueryReturnsEverythingInOrder(t *testing.T) {
	got := Apply(basket, byQuery(Query{}))
	assert.Equal(t, basket, got)

	got = Apply(basket, byQuery(Query{Category: AllCategories}))
	assert.Equal(t, basket, got)
}

func TestApplyIsIdempotent(t *testing.T) {
	q := Query{Text: "o", Category: "Root Vegetables"}
	once := Apply(basket, byQuery(q))
	twice := Apply(once, byQuery(q))
	assert.Equal(t, once, twice)
	assert.Equal(t, once, Apply(basket, byQuery(q)))
	assert.Equal(t, []produce{basket[2], basket[3]}, once)
}

func TestApplyDoesNotAlias(t *testing.T) {
	got := Apply(basket, nil)
	got[0].Name = "changed"
	assert.Equal(t, "Organic Tomatoes", basket[0].Name)
}

func TestQueryState(t *testing.T) {
	assert.True(t, Query{}.IsZero())
	assert.True(t, Query{Category: AllCategories}.IsZero())
	assert.False(t, Query{Text: "x"}.IsZero())
	assert.True(t, Query{Category: "Fruits"}.HasCategory())
}

func TestCategories(t *testing.T) {
	got := Categories([]string{"Fruits", "", "Leafy Greens", "Fruits", "Root Vegetables"})
	assert.Equal(t, []string{AllCategories, "Fruits", "Leafy Greens", "Root Vegetables"}, got)
	assert.Equal(t, []string{AllCategories}, Categories(nil))
}

func TestEmptyStateOf(t *testing.T) {
	assert.Equal(t, EmptyStateNone, EmptyStateOf(4, 2, Query{Text: "o"}))
	assert.Equal(t, EmptyStateNoRecords, EmptyStateOf(0, 0, Query{}))
	assert.Equal(t, EmptyStateNoRecords, EmptyStateOf(0, 0, Query{Category: AllCategories}))
	assert.Equal(t, EmptyStateNoMatches, EmptyStateOf(4, 0, Query{Text: "kale"}))
	assert.Equal(t, EmptyStateNoMatches, EmptyStateOf(0, 0, Query{Category: "Fruits"}))
}

func TestSelect(t *testing.T) {
	all := []string{"Tomato", "Spinach", "Onion", "Carrot"}
	q := Query{Text: "o"}
	pred := func(v string) bool { return Matches(q.Text, v) }

	page := Select(all, q, pred, pagination.Params{Page: 2, PerPage: 2})
	assert.Equal(t, []string{"Carrot"}, page.Items)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 3, page.Matched)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, EmptyStateNone, page.EmptyState)

	miss := Query{Text: "kale"}
	page = Select(all, miss, func(v string) bool { return Matches(miss.Text, v) }, pagination.Params{})
	assert.Empty(t, page.Items)
	assert.Equal(t, EmptyStateNoMatches, page.EmptyState)

	page = Select([]string{}, Query{}, nil, pagination.Params{})
	assert.Equal(t, EmptyStateNoRecords, page.EmptyState)
}
