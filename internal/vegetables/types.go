package vegetables

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/pkg/pagination"
)

// Vegetable is one inventory line. Optional attributes are nil when the form left them blank.
type Vegetable struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *decimal.Decimal `json:"stock,omitempty"`
}

// CategoryName returns the category or "" when unset.
func (v Vegetable) CategoryName() string {
	if v.Category == nil {
		return ""
	}
	return *v.Category
}

// ListInput carries the search state of the vegetables page.
type ListInput struct {
	Query filter.Query
	Page  pagination.Params
}

// ListResult is the visible subset plus the category chips derived from the full collection.
type ListResult struct {
	filter.Page[Vegetable]
	Categories []string `json:"categories"`
}

// MutationResult is returned by create and update.
type MutationResult = forms.Mutation[Vegetable]

// DeleteResult reports whether a confirmed delete removed the record.
type DeleteResult = forms.Removal
