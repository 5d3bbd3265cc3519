package sellers

import (
	"github.com/angelmondragon/vegmart-backend/internal/forms"
	"github.com/angelmondragon/vegmart-backend/pkg/enums"
)

const (
	fieldShopName   = "shop_name"
	fieldSellerName = "seller_name"
	fieldContact    = "contact"
	fieldAddress    = "address"
	fieldStatus     = "status"
)

// Rules is the add/edit seller dialog.
var Rules = forms.RuleSet{Rules: []forms.FieldRule{
	{Field: fieldShopName, Label: "Shop name", Required: true},
	{Field: fieldSellerName, Label: "Seller name", Required: true},
	{Field: fieldContact, Label: "Contact", Required: true},
	{Field: fieldAddress, Label: "Address"},
	{Field: fieldStatus, Label: "Status", Required: true, OneOf: enums.SellerStatusValues()},
}}

// defaults opens new sellers as active.
func defaults() forms.Draft {
	return forms.Draft{fieldStatus: enums.SellerStatusActive.String()}
}

func toDraft(s Seller) forms.Draft {
	d := forms.Draft{
		fieldShopName:   s.ShopName,
		fieldSellerName: s.SellerName,
		fieldContact:    s.Contact,
		fieldStatus:     s.Status.String(),
	}
	d.PutString(fieldAddress, s.Address)
	return d
}

func fromDraft(d forms.Draft) Seller {
	status, err := enums.ParseSellerStatus(d.Get(fieldStatus))
	if err != nil {
		status = enums.SellerStatusActive
	}
	return Seller{
		ShopName:   d.Get(fieldShopName),
		SellerName: d.Get(fieldSellerName),
		Contact:    d.Get(fieldContact),
		Address:    d.Optional(fieldAddress),
		Status:     status,
	}
}
