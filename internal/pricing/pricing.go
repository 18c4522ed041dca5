// Package pricing reduces cart line items to a single total.
//
// Product prices are display strings ("INR 449.00") that may carry a
// currency label and punctuation; everything here works on the numeric
// portion only and treats an unparseable price as zero so a single
// malformed record never aborts a whole computation.
package pricing

import (
	"strings"

	"github.com/morph-studio/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// Amount extracts the numeric portion of a display price.
// Malformed or empty input yields zero, not an error.
func Amount(price string) decimal.Decimal {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Total sums the prices of all items in the cart
func Total(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(Amount(item.Product.Price))
	}
	return total
}

// Normalize renders a price input with exactly two decimal places
// ("150" becomes "150.00"). The second return is false when the input
// contains nothing numeric.
func Normalize(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	var b strings.Builder
	for _, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", false
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return "", false
	}
	return d.StringFixed(2), true
}
