package order

import "fmt"

// Item is a snapshot of one ordered product at order time. Name and price are
// copied from the catalog so later edits never change order history.
type Item struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// NewItem creates an order line item
func NewItem(productID uint, name string, price float64, quantity int) (Item, error) {
	if name == "" {
		return Item{}, fmt.Errorf("item name is required")
	}
	if price < 0 {
		return Item{}, fmt.Errorf("item price cannot be negative")
	}
	if quantity <= 0 {
		return Item{}, fmt.Errorf("item quantity must be positive")
	}
	return Item{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  quantity,
	}, nil
}

// LineTotal returns price times quantity
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
