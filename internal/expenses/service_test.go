package expenses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

func newSeededService(t *testing.T, today string) Service {
	t.Helper()
	repo, err := NewRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Seed(Fixtures()...))
	svc, err := NewService(ServiceParams{Repo: repo, Today: func() types.Date { return types.MustDate(today) }})
	require.NoError(t, err)
	return svc
}

func TestTotal(t *testing.T) {
	svc := newSeededService(t, "2024-01-20")
	sum := svc.Total(context.Background())
	assert.Equal(t, "8000", sum.Total.String())
	assert.Equal(t, "8000", sum.ThisMonth.String())

	svc = newSeededService(t, "2024-02-01")
	sum = svc.Total(context.Background())
	assert.Equal(t, "8000", sum.Total.String())
	assert.True(t, sum.ThisMonth.IsZero())
}

func TestListSearch(t *testing.T) {
	svc := newSeededService(t, "2024-01-20")
	ctx := context.Background()

	res, err := svc.List(ctx, ListInput{Query: filter.Query{Text: "STORAGE"}})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Utilities", res.Items[0].Category)
	assert.Equal(t, []string{"All", "Transportation", "Rent", "Supplies", "Utilities"}, res.Categories)

	res, err = svc.List(ctx, ListInput{Query: filter.Query{Category: "Rent"}})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "2", res.Items[0].ID)
}

func TestGet(t *testing.T) {
	svc := newSeededService(t, "2024-01-20")
	e, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Packaging materials and bags", e.Detail)

	_, err = svc.Get(context.Background(), "9")
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}
