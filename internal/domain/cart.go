package domain

import "fmt"

// CartItem is a product the visitor picked plus how many of it they want.
// Quantity is always at least 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the ordered collection of items a visitor has picked, unique per
// product ID. It lives in the visitor's session and is never persisted
// beyond it.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add inserts the product with quantity 1, or increments the quantity of the
// existing entry for the same product ID. Insertion order is preserved.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// Remove deletes the entry for the given product ID wholesale, regardless of
// quantity. It reports whether an entry was removed.
func (c *Cart) Remove(productID int64) bool {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Count is the total number of units across all items, shown on the cart
// badge.
func (c Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all items.
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// FormatTotal renders the total with exactly two decimal places.
func (c Cart) FormatTotal() string {
	return fmt.Sprintf("%.2f", c.Total())
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
