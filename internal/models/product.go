package models

// StockStatus indicates whether a product can currently be ordered
type StockStatus string

const (
	StockAvailable StockStatus = "AVAILABLE"
	StockOut       StockStatus = "OUT_OF_STOCK"
)

// Toggle returns the opposite stock status
func (s StockStatus) Toggle() StockStatus {
	if s == StockAvailable {
		return StockOut
	}
	return StockAvailable
}

// Product represents a catalog item in the storefront
// Price is the display string as shown to customers, e.g. "INR 449.00"
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       string      `json:"price"`
	Tag         string      `json:"tag"`
	Description string      `json:"description"`
	Dimensions  string      `json:"dimensions"`
	Stock       StockStatus `json:"stock"`
	Category    string      `json:"category"`
	Images      []string    `json:"images"`
	Reviews     []Review    `json:"reviews,omitempty"`
}

// Review is a customer review owned entirely by its product;
// it is never persisted on its own
type Review struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Category groups products; Name acts as the key
type Category struct {
	Name   string `json:"name"`
	Banner string `json:"banner"`
}
