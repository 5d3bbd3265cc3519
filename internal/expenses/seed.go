package expenses

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

// Fixtures returns the demo ledger loaded at startup.
func Fixtures() []Expense {
	return []Expense{
		fixture("1", "2024-01-15", "Transportation costs for vegetable delivery", 1500, "Transportation"),
		fixture("2", "2024-01-16", "Market stall rental fee", 2500, "Rent"),
		fixture("3", "2024-01-17", "Packaging materials and bags", 800, "Supplies"),
		fixture("4", "2024-01-18", "Electricity bill for cold storage", 3200, "Utilities"),
	}
}

func fixture(id, date, detail string, amount int64, category string) Expense {
	return Expense{
		ID:       id,
		Date:     types.MustDate(date),
		Detail:   detail,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
	}
}
