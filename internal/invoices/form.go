package invoices

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

const (
	fieldBillNumber = "bill_number"
	fieldDate       = "date"
	fieldSeller     = "seller"
	fieldBuyer      = "buyer"
	fieldAmount     = "amount"
	fieldStatus     = "status"
)

// Rules is the create/edit invoice dialog.
var Rules = forms.RuleSet{Rules: []forms.FieldRule{
	{Field: fieldBillNumber, Label: "Bill number", Required: true},
	{Field: fieldDate, Label: "Date", Required: true, Date: true},
	{Field: fieldSeller, Label: "Seller", Required: true},
	{Field: fieldBuyer, Label: "Buyer", Required: true},
	{Field: fieldAmount, Label: "Amount", Required: true, Numeric: true, NonNegative: true},
	{Field: fieldStatus, Label: "Status", Required: true, OneOf: enums.InvoiceStatusValues()},
}}

func defaults(today types.Date) forms.Draft {
	return forms.Draft{
		fieldStatus: enums.InvoiceStatusPending.String(),
		fieldDate:   today.String(),
	}
}

func toDraft(inv Invoice) forms.Draft {
	return forms.Draft{
		fieldBillNumber: inv.BillNumber,
		fieldDate:       inv.Date.String(),
		fieldSeller:     inv.Seller,
		fieldBuyer:      inv.Buyer,
		fieldAmount:     inv.Amount.String(),
		fieldStatus:     inv.Status.String(),
	}
}

func fromDraft(d forms.Draft) Invoice {
	inv := Invoice{
		BillNumber: d.Get(fieldBillNumber),
		Seller:     d.Get(fieldSeller),
		Buyer:      d.Get(fieldBuyer),
		Status:     enums.InvoiceStatusPending,
	}
	if date, err := types.ParseDate(d.Get(fieldDate)); err == nil {
		inv.Date = date
	}
	if amount := d.Decimal(fieldAmount); amount != nil {
		inv.Amount = *amount
	} else {
		inv.Amount = decimal.Zero
	}
	if status, err := enums.ParseInvoiceStatus(d.Get(fieldStatus)); err == nil {
		inv.Status = status
	}
	return inv
}
