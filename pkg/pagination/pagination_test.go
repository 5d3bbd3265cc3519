package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceUnpagedReturnsEverything(t *testing.T) {
	items := []string{"a", "b", "c"}
	out, meta := Slice(items, Params{})
	assert.Equal(t, items, out)
	assert.Equal(t, Meta{Page: 1, PerPage: 3, TotalItems: 3, TotalPages: 1}, meta)

	out[0] = "z"
	assert.Equal(t, "a", items[0], "slice must not alias the input")
}

func TestSlicePages(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	out, meta := Slice(items, Params{Page: 2, PerPage: 2})
	assert.Equal(t, []int{3, 4}, out)
	assert.Equal(t, 3, meta.TotalPages)

	out, _ = Slice(items, Params{Page: 3, PerPage: 2})
	assert.Equal(t, []int{5}, out)

	out, meta = Slice(items, Params{Page: 9, PerPage: 2})
	assert.Empty(t, out)
	assert.Equal(t, 9, meta.Page)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Params{Page: 1, PerPage: 0}, Params{Page: -3, PerPage: -1}.Normalize())
	assert.Equal(t, Params{Page: 2, PerPage: MaxPerPage}, Params{Page: 2, PerPage: 1000}.Normalize())
}

func TestSliceEmpty(t *testing.T) {
	out, meta := Slice([]int{}, Params{})
	assert.Empty(t, out)
	assert.Equal(t, 0, meta.TotalPages)
}
