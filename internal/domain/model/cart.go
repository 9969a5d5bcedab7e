package model

// LineItem is one product with its ordered quantity.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// Cart is the snapshot of items a customer intends to buy.
type Cart struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	Items      []LineItem `json:"items"`
}

// ProductIDs returns the product ids of the cart, in item order.
func (c Cart) ProductIDs() []string {
	ids := make([]string, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.Product.ID
	}
	return ids
}

// Quantities returns the item quantities of the cart, aligned with ProductIDs.
func (c Cart) Quantities() []int64 {
	qty := make([]int64, len(c.Items))
	for i, item := range c.Items {
		qty[i] = item.Quantity
	}
	return qty
}
