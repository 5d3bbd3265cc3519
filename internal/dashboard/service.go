// Package dashboard computes the landing page summary from the live collections.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/expenses"
	"github.com/angelmondragon/vegmart-backend/internal/invoices"
	"github.com/angelmondragon/vegmart-backend/internal/sellers"
	"github.com/angelmondragon/vegmart-backend/internal/vegetables"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vegmart-backend/pkg/errors"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

const (
	recentLimit = 4
	topLimit    = 3
)

// Stat is one summary card.
type Stat struct {
	Key         string          `json:"key"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Currency    bool            `json:"currency"`
}

// QuickAction links to a page where the named dialog can be opened.
type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Overview is everything the dashboard renders.
type Overview struct {
	Stats            []Stat                 `json:"stats"`
	QuickActions     []QuickAction          `json:"quick_actions"`
	RecentVegetables []vegetables.Vegetable `json:"recent_vegetables"`
	TopSellers       []sellers.Seller       `json:"top_sellers"`
	Expenses         expenses.Summary       `json:"expenses"`
}

// QuickActions is the fixed shortcut list.
var QuickActions = []QuickAction{
	{Title: "Add Vegetable", Description: "Register new vegetable variety", Path: "/vegetables"},
	{Title: "New Seller", Description: "Add vendor to marketplace", Path: "/sellers"},
	{Title: "Create Invoice", Description: "Generate sales invoice", Path: "/invoices"},
	{Title: "Record Expense", Description: "Track business expenses", Path: "/expenses"},
}

// ServiceParams groups the collections the dashboard reads.
type ServiceParams struct {
	Vegetables vegetables.Service
	Sellers    sellers.Service
	Invoices   invoices.Service
	Expenses   expenses.Service
	Today      func() types.Date
}

type Service interface {
	Overview(ctx context.Context) (Overview, error)
}

type service struct {
	vegetables vegetables.Service
	sellers    sellers.Service
	invoices   invoices.Service
	expenses   expenses.Service
	today      func() types.Date
}

func NewService(params ServiceParams) (Service, error) {
	if params.Vegetables == nil || params.Sellers == nil || params.Invoices == nil || params.Expenses == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dashboard requires every collection service")
	}
	today := params.Today
	if today == nil {
		today = func() types.Date { return types.DateOf(time.Now()) }
	}
	return &service{
		vegetables: params.Vegetables,
		sellers:    params.Sellers,
		invoices:   params.Invoices,
		expenses:   params.Expenses,
		today:      today,
	}, nil
}

// Overview reads every collection once. Monthly revenue counts paid invoices dated in the
// current calendar month.
func (s *service) Overview(ctx context.Context) (Overview, error) {
	vegs, err := s.vegetables.List(ctx, vegetables.ListInput{})
	if err != nil {
		return Overview{}, err
	}
	sellerList, err := s.sellers.List(ctx, sellers.ListInput{})
	if err != nil {
		return Overview{}, err
	}
	invoiceList, err := s.invoices.List(ctx, invoices.ListInput{})
	if err != nil {
		return Overview{}, err
	}

	today := s.today()
	revenue := decimal.Zero
	for _, inv := range invoiceList.Items {
		if inv.Status == enums.InvoiceStatusPaid && inv.Date.SameMonth(today) {
			revenue = revenue.Add(inv.Amount)
		}
	}

	return Overview{
		Stats: []Stat{
			{Key: "vegetables", Title: "Total Vegetables", Description: "Active varieties", Value: decimal.NewFromInt(int64(vegs.Total))},
			{Key: "sellers", Title: "Registered Sellers", Description: "Verified vendors", Value: decimal.NewFromInt(int64(sellerList.Total))},
			{Key: "revenue", Title: "Monthly Revenue", Description: "This month", Value: revenue, Currency: true},
			{Key: "invoices", Title: "Total Invoices", Description: "All time", Value: decimal.NewFromInt(int64(invoiceList.Total))},
		},
		QuickActions:     QuickActions,
		RecentVegetables: recent(vegs.Items, recentLimit),
		TopSellers:       topSellers(sellerList.Items, topLimit),
		Expenses:         s.expenses.Total(ctx),
	}, nil
}

// recent returns the newest n records, newest first.
func recent(items []vegetables.Vegetable, n int) []vegetables.Vegetable {
	out := make([]vegetables.Vegetable, 0, n)
	for i := len(items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, items[i])
	}
	return out
}

func topSellers(items []sellers.Seller, n int) []sellers.Seller {
	ranked := make([]sellers.Seller, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return salesOf(ranked[i]).GreaterThan(salesOf(ranked[j]))
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func salesOf(s sellers.Seller) decimal.Decimal {
	if s.TotalSales == nil {
		return decimal.Zero
	}
	return *s.TotalSales
}
