// Package pricing derives the order summary shown at checkout from the
// cart's line items. The calculation is pure and always starts from full
// item data rather than a cached total.
package pricing

import "github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"

const (
	// TaxRate is the flat tax applied to every order.
	TaxRate = 0.18
	// FreeShippingThreshold is the subtotal at which shipping is waived.
	FreeShippingThreshold = 50.0
	// ShippingFee is the flat fee below the threshold.
	ShippingFee = 2.0
)

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Calculate builds the summary for the given items and applied coupon
// discount. The discount is deliberately not clamped against the rest of
// the summary; an oversized coupon drives Total negative, matching the
// storefront's current behavior.
func Calculate(items []cart.LineItem, couponDiscount float64) Summary {
	subtotal := 0.0
	for _, it := range items {
		subtotal += float64(it.Quantity) * it.Price
	}

	tax := subtotal * TaxRate

	shipping := ShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}

	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: couponDiscount,
		Total:    subtotal + tax + shipping - couponDiscount,
	}
}
