package invoices

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	"github.com/angelmondragon/vegmart-backend/pkg/pagination"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

// Invoice is a bill between a seller and a buyer. IDs are sequential tags like INV-001.
type Invoice struct {
	ID         string              `json:"id"`
	BillNumber string              `json:"bill_number"`
	Date       types.Date          `json:"date"`
	Seller     string              `json:"seller"`
	Buyer      string              `json:"buyer"`
	Amount     decimal.Decimal     `json:"amount"`
	Status     enums.InvoiceStatus `json:"status"`
}

// ListInput carries the search state of the invoices page. Query.Category selects a status.
type ListInput struct {
	Query filter.Query
	Page  pagination.Params
}

// Totals sums invoice amounts over the whole collection.
type Totals struct {
	Amount  decimal.Decimal `json:"amount"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

type ListResult struct {
	filter.Page[Invoice]
	Totals Totals `json:"totals"`
}

// MutationResult is returned by create and update.
type MutationResult = forms.Mutation[Invoice]

// DeleteResult reports whether a confirmed delete removed the record.
type DeleteResult = forms.Removal

// PrintResult acknowledges a print request. Nothing is rendered server side.
type PrintResult struct {
	Invoice      Invoice               `json:"invoice"`
	Notification *notifications.Notice `json:"notification,omitempty"`
}
