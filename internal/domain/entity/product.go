// Package entity contains the core business objects of the project.
package entity

// Product is an item in the agri-input catalog. Products are immutable
// reference data seeded at store creation.
type Product struct {
	ID       int64   `json:"id"`       // Unique, stable product identifier.
	Name     string  `json:"name"`     // Display name of the product.
	Category string  `json:"category"` // Catalog category (e.g., "Fungicides").
	Price    int64   `json:"price"`    // Price in whole rupees, never negative.
	Rating   float64 `json:"rating"`   // Average customer rating, 0 to 5.
	InStock  bool    `json:"inStock"`  // Whether the product can currently be ordered.
}

// CartItem is a product placed in the cart together with its quantity.
// The cart holds at most one entry per product id; adding an existing
// product increments the quantity instead of duplicating the entry.
type CartItem struct {
	Product
	Quantity int `json:"quantity"` // Always positive; the item is removed before it reaches zero.
}

// Subtotal returns the line total for this cart entry in whole rupees.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
