package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSellerStatus(t *testing.T) {
	status, err := ParseSellerStatus("inactive")
	require.NoError(t, err)
	assert.Equal(t, SellerStatusInactive, status)
	assert.True(t, status.IsValid())

	_, err = ParseSellerStatus("Active")
	assert.Error(t, err)
	assert.Equal(t, []string{"active", "inactive"}, SellerStatusValues())
}

func TestParseInvoiceStatus(t *testing.T) {
	status, err := ParseInvoiceStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusPaid, status)

	_, err = ParseInvoiceStatus("overdue")
	assert.Error(t, err)
	assert.False(t, InvoiceStatus("overdue").IsValid())
	assert.Equal(t, []string{"paid", "pending"}, InvoiceStatusValues())
}

func TestParseEntityKindAndFormMode(t *testing.T) {
	kind, err := ParseEntityKind("expense")
	require.NoError(t, err)
	assert.Equal(t, EntityKindExpense, kind)

	mode, err := ParseFormMode("edit")
	require.NoError(t, err)
	assert.Equal(t, FormModeEdit, mode)

	_, err = ParseFormMode("view")
	assert.Error(t, err)

	variant, err := ParseNotificationVariant("destructive")
	require.NoError(t, err)
	assert.Equal(t, NotificationVariantDestructive, variant)
}
