// Package delivery maps postal codes to coarse shipping-time estimates.
package delivery

const (
	regionalEstimate = "Delivery in 3-4 Days (Karnataka Express)"
	nationalEstimate = "Delivery in 5-6 Days (National Shipping)"
)

// Karnataka pincodes start with 56, 57, 58 or 59
var regionalPrefixes = map[string]bool{
	"56": true,
	"57": true,
	"58": true,
	"59": true,
}

// Estimate returns a human-readable delivery estimate for a 6-character
// pincode. Shorter input means "not enough information yet" and yields
// an empty estimate. The trailing four characters are not validated.
func Estimate(pincode string) string {
	if len(pincode) != 6 {
		return ""
	}

	if regionalPrefixes[pincode[:2]] {
		return regionalEstimate
	}
	return nationalEstimate
}
