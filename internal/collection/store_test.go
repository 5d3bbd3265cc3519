package collection

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
)

type crate struct {
	ID    string
	Name  string
	Stock int
}

func newCrateStore(t *testing.T, ids IDGenerator) *Store[crate] {
	t.Helper()
	store, err := New(Options[crate]{
		Kind:  "crate",
		IDOf:  func(c crate) string { return c.ID },
		SetID: func(c *crate, id string) { c.ID = id },
		IDs:   ids,
	})
	require.NoError(t, err)
	return store
}

func TestNewRequiresAccessors(t *testing.T) {
	_, err := New(Options[crate]{Kind: "crate"})
	require.Error(t, err)
}

func TestInsertAssignsUniqueID(t *testing.T) {
	store := newCrateStore(t, UUIDGenerator{})
	require.NoError(t, store.Seed(crate{ID: "1", Name: "tomato"}, crate{ID: "2", Name: "onion"}))

	existing := map[string]struct{}{}
	for _, c := range store.List() {
		existing[c.ID] = struct{}{}
	}

	created, err := store.Insert(crate{ID: "ignored", Name: "kale"})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", created.ID)
	_, clash := existing[created.ID]
	assert.False(t, clash)

	count := 0
	for _, c := range store.List() {
		if c.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, "kale", store.List()[2].Name, "insert appends in order")
}

func TestInsertSkipsTakenIDs(t *testing.T) {
	store := newCrateStore(t, &fixedIDs{ids: []string{"1", "1", "2"}})
	require.NoError(t, store.Seed(crate{ID: "1"}))

	created, err := store.Insert(crate{Name: "carrot"})
	require.NoError(t, err)
	assert.Equal(t, "2", created.ID)
}

func TestInsertGivesUpAfterRepeatedCollisions(t *testing.T) {
	store := newCrateStore(t, &fixedIDs{ids: []string{"1"}})
	require.NoError(t, store.Seed(crate{ID: "1"}))

	_, err := store.Insert(crate{Name: "carrot"})
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeConflict))
	assert.Equal(t, 1, store.Len())
}

func TestReplacePreservesIDAndLength(t *testing.T) {
	store := newCrateStore(t, UUIDGenerator{})
	require.NoError(t, store.Seed(
		crate{ID: "a", Name: "tomato", Stock: 250},
		crate{ID: "b", Name: "spinach", Stock: 120},
	))

	updated, err := store.Replace("a", func(c *crate) {
		c.ID = "hijack"
		c.Stock = 10
	})
	require.NoError(t, err)
	assert.Equal(t, "a", updated.ID)
	assert.Equal(t, "tomato", updated.Name, "unpatched fields are kept")
	assert.Equal(t, 10, updated.Stock)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, updated, list[0], "position is preserved")

	_, err = store.Get("hijack")
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}

func TestReplaceUnknownID(t *testing.T) {
	store := newCrateStore(t, UUIDGenerator{})
	_, err := store.Replace("missing", func(c *crate) {})
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}

func TestRemove(t *testing.T) {
	store := newCrateStore(t, UUIDGenerator{})
	require.NoError(t, store.Seed(crate{ID: "a"}, crate{ID: "b"}, crate{ID: "c"}))

	require.NoError(t, store.Remove("b"))
	assert.Equal(t, 2, store.Len())
	_, err := store.Get("b")
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))

	// index of the trailing record must follow the shift
	c, err := store.Get("c")
	require.NoError(t, err)
	assert.Equal(t, "c", c.ID)

	before := store.List()
	err = store.Remove("b")
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
	assert.Equal(t, before, store.List())
}

func TestListReturnsCopy(t *testing.T) {
	store := newCrateStore(t, UUIDGenerator{})
	require.NoError(t, store.Seed(crate{ID: "a", Name: "tomato"}))

	list := store.List()
	list[0].Name = "mutated"
	got, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "tomato", got.Name)
}

func TestSeedRejectsBadFixturesAtomically(t *testing.T) {
	store := newCrateStore(t, UUIDGenerator{})
	err := store.Seed(crate{ID: "a"}, crate{ID: ""}, crate{ID: "a"})
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeConflict))
	assert.Equal(t, 0, store.Len())
}

func TestSeedRejectsPaddedIDs(t *testing.T) {
	store := newCrateStore(t, UUIDGenerator{})
	err := store.Seed(crate{ID: " a"}, crate{ID: "b "})
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeConflict))
	assert.Contains(t, err.Error(), "invalid crate fixtures")
	assert.ErrorContains(t, errors.Unwrap(err), "surrounding whitespace")
	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.Seed(crate{ID: "a"}))
	_, err = store.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, "a", store.IDOf(store.List()[0]))
}

func TestSequenceGeneratorContinuesAfterSeed(t *testing.T) {
	seq := NewSequenceGenerator("INV-", 3)
	store := newCrateStore(t, seq)
	require.NoError(t, store.Seed(crate{ID: "INV-001"}, crate{ID: "INV-002"}, crate{ID: "INV-003"}))

	require.NoError(t, store.Remove("INV-003"))
	created, err := store.Insert(crate{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "INV-004", created.ID, "tags are never reused")

	seq.Observe("OTHER-99")
	seq.Observe("INV-x")
	assert.Equal(t, "INV-005", seq.NextID())
}

func TestSequenceGeneratorPadding(t *testing.T) {
	seq := NewSequenceGenerator("B-", 0)
	assert.Equal(t, "B-1", seq.NextID())
	seq = NewSequenceGenerator("INV-", 3)
	seq.Observe("INV-999")
	assert.Equal(t, "INV-1000", seq.NextID())
}

type fixedIDs struct {
	ids []string
	i   int
}

func (f *fixedIDs) NextID() string {
	if len(f.ids) == 0 {
		return ""
	}
	id := f.ids[f.i%len(f.ids)]
	f.i++
	return id
}

func ExampleStore() {
	store, _ := New(Options[crate]{
		Kind:  "crate",
		IDOf:  func(c crate) string { return c.ID },
		SetID: func(c *crate, id string) { c.ID = id },
		IDs:   NewSequenceGenerator("C-", 2),
	})
	first, _ := store.Insert(crate{Name: "tomato"})
	second, _ := store.Insert(crate{Name: "onion"})
	fmt.Println(first.ID, second.ID, store.Len())
	// Output: C-01 C-02 2
}
