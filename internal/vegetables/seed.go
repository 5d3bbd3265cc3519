package vegetables

import "github.com/shopspring/decimal"

// Fixtures returns the demo inventory loaded at startup.
func Fixtures() []Vegetable {
	return []Vegetable{
		fixture("1", "Organic Tomatoes", "Fresh, juicy organic tomatoes from local farms", "Fruits", 45, 250),
		fixture("2", "Fresh Spinach", "Nutrient-rich leafy green vegetables", "Leafy Greens", 30, 120),
		fixture("3", "Green Peppers", "Crisp and colorful bell peppers", "Vegetables", 60, 80),
		fixture("4", "Red Onions", "Sharp and flavorful red onions", "Root Vegetables", 25, 300),
		fixture("5", "Carrots", "Sweet and crunchy orange carrots", "Root Vegetables", 35, 200),
		fixture("6", "Cucumber", "Fresh and crisp cucumbers", "Vegetables", 20, 150),
	}
}

func fixture(id, name, description, category string, price, stock int64) Vegetable {
	p := decimal.NewFromInt(price)
	s := decimal.NewFromInt(stock)
	return Vegetable{
		ID:          id,
		Name:        name,
		Description: &description,
		Category:    &category,
		Price:       &p,
		Stock:       &s,
	}
}
