package domain

// Product is a catalog entry as served by the backend commerce API.
// Products are immutable once fetched; everything outside the catalog
// use case treats them as read-only.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}
