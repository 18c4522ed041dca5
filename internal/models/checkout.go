package models

import "time"

// CartItem is a copy of a product taken at the moment it was added
// to the cart; the same product may occupy several positions
type CartItem struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"addedAt"`
}

// CheckoutDraft collects the customer's contact fields as they type.
// No format validation is applied to any field.
type CheckoutDraft struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Age     string `json:"age"`
	Pincode string `json:"pincode"`
}

// CheckoutConfig is the open-configuration handed to the external
// payment popup; the frontend passes it through unchanged
type CheckoutConfig struct {
	Key         string          `json:"key"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OrderID     string          `json:"order_id"`
	Prefill     CheckoutPrefill `json:"prefill"`
	Theme       CheckoutTheme   `json:"theme"`
}

// CheckoutPrefill pre-populates the payment popup's contact fields
type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutTheme styles the payment popup
type CheckoutTheme struct {
	Color string `json:"color"`
}
