package sellers

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vegmart-backend/pkg/enums"
)

// Fixtures returns the demo sellers loaded at startup.
func Fixtures() []Seller {
	return []Seller{
		fixture("1", "Green Valley Farms", "Rajesh Kumar", "123 Market Street, Delhi", "+91 98765 43210", enums.SellerStatusActive, 45000),
		fixture("2", "Fresh Produce Co.", "Priya Sharma", "456 Farm Road, Mumbai", "+91 87654 32109", enums.SellerStatusActive, 38500),
		fixture("3", "Organic Gardens", "Amit Patel", "789 Green Lane, Bangalore", "+91 76543 21098", enums.SellerStatusActive, 29200),
		fixture("4", "Farm Fresh Ltd.", "Sunita Reddy", "321 Harvest Avenue, Hyderabad", "+91 65432 10987", enums.SellerStatusInactive, 25800),
	}
}

func fixture(id, shop, seller, address, contact string, status enums.SellerStatus, sales int64) Seller {
	total := decimal.NewFromInt(sales)
	return Seller{
		ID:         id,
		ShopName:   shop,
		SellerName: seller,
		Address:    &address,
		Contact:    contact,
		Status:     status,
		TotalSales: &total,
	}
}
