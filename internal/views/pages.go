package views

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/dashboard"
	"github.com/angelmondragon/vegmart-backend/internal/expenses"
	"github.com/angelmondragon/vegmart-backend/internal/filter"
	"github.com/angelmondragon/vegmart-backend/internal/invoices"
	"github.com/angelmondragon/vegmart-backend/internal/notifications"
	"github.com/angelmondragon/vegmart-backend/internal/sellers"
	"github.com/angelmondragon/vegmart-backend/internal/vegetables"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	"github.com/angelmondragon/vegmart-backend/pkg/locale"
)

var (
	vegetablesEmpty = emptyCopy{
		title:     "No vegetables found",
		noMatches: "Try adjusting your search or filter criteria",
		noRecords: "Start by adding your first vegetable to the inventory",
		cta:       "Add First Vegetable",
	}
	sellersEmpty = emptyCopy{
		title:     "No sellers found",
		noMatches: "Try adjusting your search criteria",
		noRecords: "Start by adding your first seller to the system",
		cta:       "Add First Seller",
	}
	invoicesEmpty = emptyCopy{
		title:     "No invoices found",
		noMatches: "Try adjusting your search criteria",
		noRecords: "Start by creating your first invoice",
		cta:       "Create First Invoice",
	}
	expensesEmpty = emptyCopy{
		title:     "No expenses found",
		noMatches: "Try adjusting your search criteria",
		noRecords: "No expenses have been recorded yet",
	}
)

// Builder formats service results for display.
type Builder struct {
	format *locale.Formatter
}

func NewBuilder(format *locale.Formatter) *Builder {
	return &Builder{format: format}
}

type VegetableCard struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       string
	Stock       string
	InStock     bool
}

type VegetablesPage struct {
	Layout
	Query    filter.Query
	ViewMode ViewMode
	GridHref string
	ListHref string
	Chips    []Chip
	Counter  string
	Cards    []VegetableCard
	Empty    *EmptyState
	Pager    *Pager
}

func (b *Builder) Vegetables(res *vegetables.ListResult, q filter.Query, mode ViewMode, notices []notifications.Notice) VegetablesPage {
	const path = "/vegetables"
	modeParams := url.Values{}
	if mode == ViewModeList {
		modeParams.Set("view", string(ViewModeList))
	}
	page := VegetablesPage{
		Layout:   newLayout("Vegetables", path, notices),
		Query:    q,
		ViewMode: mode,
		GridHref: withQuery(path, searchParams(q, nil)),
		ListHref: withQuery(path, searchParams(q, url.Values{"view": {string(ViewModeList)}})),
		Chips:    chips(path, res.Categories, q, modeParams),
		Counter:  counter(res.Matched, res.Total, "vegetables"),
		Empty:    vegetablesEmpty.build(res.EmptyState),
		Pager:    pager(path, res.Pagination, q, modeParams),
	}
	for _, v := range res.Items {
		card := VegetableCard{ID: v.ID, Name: v.Name, Category: v.CategoryName()}
		if v.Description != nil {
			card.Description = *v.Description
		}
		if v.Price != nil && v.Price.IsPositive() {
			card.Price = b.format.Currency(*v.Price) + "/kg"
		}
		if v.Stock != nil {
			card.Stock = b.format.Number(*v.Stock) + " kg"
			card.InStock = v.Stock.IsPositive()
		}
		page.Cards = append(page.Cards, card)
	}
	return page
}

type SellerRow struct {
	ID         string
	ShopName   string
	SellerName string
	Address    string
	Contact    string
	Status     string
	Active     bool
	TotalSales string
}

type SellersPage struct {
	Layout
	Query    filter.Query
	Counter  string
	Active   int
	Inactive int
	Rows     []SellerRow
	Empty    *EmptyState
	Pager    *Pager
}

func (b *Builder) Sellers(res *sellers.ListResult, q filter.Query, notices []notifications.Notice) SellersPage {
	const path = "/sellers"
	page := SellersPage{
		Layout:   newLayout("Sellers", path, notices),
		Query:    q,
		Counter:  counter(res.Matched, res.Total, "sellers"),
		Active:   res.Active,
		Inactive: res.Inactive,
		Empty:    sellersEmpty.build(res.EmptyState),
		Pager:    pager(path, res.Pagination, q, nil),
	}
	for _, s := range res.Items {
		row := SellerRow{
			ID:         s.ID,
			ShopName:   s.ShopName,
			SellerName: s.SellerName,
			Contact:    s.Contact,
			Status:     s.Status.String(),
			Active:     s.IsActive(),
		}
		if s.Address != nil {
			row.Address = *s.Address
		}
		if s.TotalSales != nil {
			row.TotalSales = b.format.Currency(*s.TotalSales)
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}

type InvoiceRow struct {
	ID         string
	BillNumber string
	Date       string
	Seller     string
	Buyer      string
	Amount     string
	Status     string
	Paid       bool
}

type InvoicesPage struct {
	Layout
	Query   filter.Query
	Counter string
	Total   string
	Paid    string
	Pending string
	Rows    []InvoiceRow
	Empty   *EmptyState
	Pager   *Pager
}

func (b *Builder) Invoices(res *invoices.ListResult, q filter.Query, notices []notifications.Notice) InvoicesPage {
	const path = "/invoices"
	page := InvoicesPage{
		Layout:  newLayout("Invoices", path, notices),
		Query:   q,
		Counter: counter(res.Matched, res.Total, "invoices"),
		Total:   b.format.Currency(res.Totals.Amount),
		Paid:    b.format.Currency(res.Totals.Paid),
		Pending: b.format.Currency(res.Totals.Pending),
		Empty:   invoicesEmpty.build(res.EmptyState),
		Pager:   pager(path, res.Pagination, q, nil),
	}
	for _, inv := range res.Items {
		page.Rows = append(page.Rows, InvoiceRow{
			ID:         inv.ID,
			BillNumber: inv.BillNumber,
			Date:       b.format.Date(inv.Date),
			Seller:     inv.Seller,
			Buyer:      inv.Buyer,
			Amount:     b.format.Currency(inv.Amount),
			Status:     inv.Status.String(),
			Paid:       inv.Status == enums.InvoiceStatusPaid,
		})
	}
	return page
}

type ExpenseRow struct {
	ID       string
	Date     string
	Detail   string
	Category string
	Amount   string
}

type ExpensesPage struct {
	Layout
	Query     filter.Query
	Chips     []Chip
	Counter   string
	ThisMonth string
	Total     string
	Rows      []ExpenseRow
	Empty     *EmptyState
	Pager     *Pager
}

func (b *Builder) Expenses(res *expenses.ListResult, q filter.Query, notices []notifications.Notice) ExpensesPage {
	const path = "/expenses"
	page := ExpensesPage{
		Layout:    newLayout("Expenses", path, notices),
		Query:     q,
		Chips:     chips(path, res.Categories, q, nil),
		Counter:   counter(res.Matched, res.Total, "expenses"),
		ThisMonth: b.format.Currency(res.Summary.ThisMonth),
		Total:     b.format.Currency(res.Summary.Total),
		Empty:     expensesEmpty.build(res.EmptyState),
		Pager:     pager(path, res.Pagination, q, nil),
	}
	for _, e := range res.Items {
		page.Rows = append(page.Rows, ExpenseRow{
			ID:       e.ID,
			Date:     b.format.Date(e.Date),
			Detail:   e.Detail,
			Category: e.Category,
			Amount:   b.format.Currency(e.Amount),
		})
	}
	return page
}

type StatCard struct {
	Title       string
	Value       string
	Description string
}

type SellerSummary struct {
	ShopName   string
	TotalSales string
}

type DashboardPage struct {
	Layout
	Stats            []StatCard
	QuickActions     []dashboard.QuickAction
	RecentVegetables []string
	TopSellers       []SellerSummary
	ExpensesTotal    string
}

func (b *Builder) Dashboard(ov dashboard.Overview, notices []notifications.Notice) DashboardPage {
	page := DashboardPage{
		Layout:        newLayout("Dashboard", "/", notices),
		QuickActions:  ov.QuickActions,
		ExpensesTotal: b.format.Currency(ov.Expenses.Total),
	}
	for _, s := range ov.Stats {
		page.Stats = append(page.Stats, StatCard{Title: s.Title, Value: b.statValue(s), Description: s.Description})
	}
	for _, v := range ov.RecentVegetables {
		page.RecentVegetables = append(page.RecentVegetables, v.Name)
	}
	for _, s := range ov.TopSellers {
		sales := decimal.Zero
		if s.TotalSales != nil {
			sales = *s.TotalSales
		}
		page.TopSellers = append(page.TopSellers, SellerSummary{ShopName: s.ShopName, TotalSales: b.format.Currency(sales)})
	}
	return page
}

func (b *Builder) statValue(s dashboard.Stat) string {
	if s.Currency {
		return b.format.Currency(s.Value)
	}
	return b.format.Number(s.Value)
}
