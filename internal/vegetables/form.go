package vegetables

import "github.com/angelmondragon/vegmart-backend/internal/forms"

const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldCategory    = "category"
	fieldPrice       = "price"
	fieldStock       = "stock"
)

// Rules is the add/edit vegetable dialog.
var Rules = forms.RuleSet{Rules: []forms.FieldRule{
	{Field: fieldName, Label: "Name", Required: true},
	{Field: fieldDescription, Label: "Description"},
	{Field: fieldCategory, Label: "Category"},
	{Field: fieldPrice, Label: "Price", Numeric: true, NonNegative: true},
	{Field: fieldStock, Label: "Stock", Numeric: true, NonNegative: true},
}}

func toDraft(v Vegetable) forms.Draft {
	d := forms.Draft{fieldName: v.Name}
	d.PutString(fieldDescription, v.Description)
	d.PutString(fieldCategory, v.Category)
	d.PutDecimal(fieldPrice, v.Price)
	d.PutDecimal(fieldStock, v.Stock)
	return d
}

// fromDraft expects a draft that already passed Rules.
func fromDraft(d forms.Draft) Vegetable {
	return Vegetable{
		Name:        d.Get(fieldName),
		Description: d.Optional(fieldDescription),
		Category:    d.Optional(fieldCategory),
		Price:       d.Decimal(fieldPrice),
		Stock:       d.Decimal(fieldStock),
	}
}
