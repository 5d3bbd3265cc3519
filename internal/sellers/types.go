package sellers

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	"github.com/angelmondragon/vegmart-backend/pkg/pagination"
)

// Seller is a registered vendor. TotalSales is reporting data and is not editable from the form.
type Seller struct {
	ID         string             `json:"id"`
	ShopName   string             `json:"shop_name"`
	SellerName string             `json:"seller_name"`
	Address    *string            `json:"address,omitempty"`
	Contact    string             `json:"contact"`
	Status     enums.SellerStatus `json:"status"`
	TotalSales *decimal.Decimal   `json:"total_sales,omitempty"`
}

// IsActive reports whether the seller currently trades.
func (s Seller) IsActive() bool {
	return s.Status == enums.SellerStatusActive
}

// ListInput carries the search state of the sellers page. Query.Category selects a status.
type ListInput struct {
	Query filter.Query
	Page  pagination.Params
}

// ListResult is the visible subset plus status counts over the whole collection.
type ListResult struct {
	filter.Page[Seller]
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// MutationResult is returned by create and update.
type MutationResult = forms.Mutation[Seller]

// DeleteResult reports whether a confirmed delete removed the record.
type DeleteResult = forms.Removal
