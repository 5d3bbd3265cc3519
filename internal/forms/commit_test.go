package forms

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/vegmart-backend/internal/collection"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/metrics"
)

type crate struct {
	ID      string
	Name    string
	Price   string
	Date    string
	Status  string
	Shipped int
}

type crateCommitter struct {
	commit  *Committer[crate]
	store   *collection.Store[crate]
	notices notifications.Service
	reg     *prometheus.Registry
}

func newCrateCommitter(t *testing.T) crateCommitter {
	t.Helper()
	store, err := collection.New(collection.Options[crate]{
		Kind:  "crate",
		IDOf:  func(c crate) string { return c.ID },
		SetID: func(c *crate, id string) { c.ID = id },
	})
	require.NoError(t, err)
	require.NoError(t, store.Seed(crate{ID: "c1", Name: "Tomato", Date: "2024-01-10", Status: "paid", Shipped: 4}))

	notices := notifications.NewService(notifications.Params{})
	reg := prometheus.NewRegistry()
	return crateCommitter{
		commit: &Committer[crate]{
			Kind:     enums.EntityKindInvoice,
			Store:    store,
			Rules:    crateRules,
			Defaults: crateDefaults.Clone,
			Encode: func(c crate) Draft {
				return Draft{"name": c.Name, "price": c.Price, "date": c.Date, "status": c.Status}
			},
			Decode: func(d Draft) crate {
				return crate{Name: d.Get("name"), Price: d.Get("price"), Date: d.Get("date"), Status: d.Get("status")}
			},
			Keep: func(stored crate, edited *crate) {
				edited.Shipped = stored.Shipped
			},
			Messages: Messages{
				Created:      "Crate added",
				Updated:      "Crate updated",
				DeletedTitle: "Crate deleted",
				DeletedBody:  "The crate has been removed.",
				DeletePrompt: "Delete this crate?",
			},
			Notices: notices,
			Metrics: metrics.NewCollectionMetrics(reg),
		},
		store:   store,
		notices: notices,
		reg:     reg,
	}
}

func TestCommitterCreateAppliesDefaults(t *testing.T) {
	h := newCrateCommitter(t)
	ctx := context.Background()

	res, err := h.commit.Create(ctx, Draft{"name": "Kale"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Record.ID)
	assert.Equal(t, "pending", res.Record.Status)
	assert.Equal(t, "2024-01-15", res.Record.Date)
	require.NotNil(t, res.Notification)
	assert.Equal(t, "Crate added", res.Notification.Description)
	assert.Equal(t, 2, h.store.Len())

	_, err = h.commit.Create(ctx, Draft{"name": " "})
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))
	assert.Equal(t, 2, h.store.Len())
	mfs, err := h.reg.Gather()
	require.NoError(t, err)
	series := 0
	for _, mf := range mfs {
		if mf.GetName() == "form_submissions_total" {
			series = len(mf.GetMetric())
		}
	}
	assert.Equal(t, 2, series, "one accepted and one rejected series")
}

func TestCommitterUpdateKeepsFieldsOutsideTheForm(t *testing.T) {
	h := newCrateCommitter(t)
	ctx := context.Background()

	res, err := h.commit.Update(ctx, "c1", Draft{"name": "Cherry tomato"})
	require.NoError(t, err)
	assert.Equal(t, "c1", res.Record.ID)
	assert.Equal(t, "Cherry tomato", res.Record.Name)
	assert.Equal(t, "paid", res.Record.Status)
	assert.Equal(t, 4, res.Record.Shipped)

	_, err = h.commit.Update(ctx, "missing", Draft{"name": "x"})
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}

func TestCommitterDeleteAsksFirst(t *testing.T) {
	h := newCrateCommitter(t)
	ctx := context.Background()

	_, err := h.commit.Delete(ctx, "c1", collection.Unanswered)
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeConfirmationRequired))
	assert.Equal(t, 1, h.store.Len())

	declined, err := h.commit.Delete(ctx, "c1", collection.Declined)
	require.NoError(t, err)
	assert.False(t, declined.Deleted)
	assert.Equal(t, 1, h.store.Len())

	removed, err := h.commit.Delete(ctx, "c1", collection.Confirmed)
	require.NoError(t, err)
	assert.True(t, removed.Deleted)
	require.NotNil(t, removed.Notification)
	assert.Equal(t, "Crate deleted", removed.Notification.Title)
	assert.Equal(t, 0, h.store.Len())

	_, err = h.commit.Delete(ctx, "c1", collection.Confirmed)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}

func TestCommitterApplyEditOfMissingRecordIsQuiet(t *testing.T) {
	h := newCrateCommitter(t)
	ctx := context.Background()

	_, err := h.commit.Apply(ctx, Submission{Mode: enums.FormModeEdit, TargetID: "gone", Values: Draft{"name": "x"}})
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
	assert.Empty(t, h.notices.List(ctx))
}
