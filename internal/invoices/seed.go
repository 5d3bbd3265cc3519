package invoices

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

// Fixtures returns the demo invoices loaded at startup.
func Fixtures() []Invoice {
	return []Invoice{
		fixture("INV-001", "B-2024-001", "2024-01-15", "Green Valley Farms", "Fresh Market Co.", 15750, enums.InvoiceStatusPaid),
		fixture("INV-002", "B-2024-002", "2024-01-16", "Organic Gardens", "City Grocers", 8900, enums.InvoiceStatusPending),
		fixture("INV-003", "B-2024-003", "2024-01-17", "Fresh Produce Co.", "Supermart Ltd.", 22400, enums.InvoiceStatusPaid),
	}
}

func fixture(id, bill, date, seller, buyer string, amount int64, status enums.InvoiceStatus) Invoice {
	return Invoice{
		ID:         id,
		BillNumber: bill,
		Date:       types.MustDate(date),
		Seller:     seller,
		Buyer:      buyer,
		Amount:     decimal.NewFromInt(amount),
		Status:     status,
	}
}
