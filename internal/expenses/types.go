package expenses

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/pkg/pagination"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

// Expense is an operating cost of the marketplace.
type Expense struct {
	ID       string          `json:"id"`
	Date     types.Date      `json:"date"`
	Detail   string          `json:"detail"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

type ListInput struct {
	Query filter.Query
	Page  pagination.Params
}

// Summary totals the whole ledger and the current month.
type Summary struct {
	Total     decimal.Decimal `json:"total"`
	ThisMonth decimal.Decimal `json:"this_month"`
}

type ListResult struct {
	filter.Page[Expense]
	Categories []string `json:"categories"`
	Summary    Summary  `json:"summary"`
}
