package pricing

import (
	"math"
	"testing"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
)

func TestCalculate(t *testing.T) {
	tests := map[string]struct {
		items    []cart.LineItem
		discount float64
		want     Summary
	}{
		"empty cart still pays shipping": {
			want: Summary{Subtotal: 0, Tax: 0, Shipping: 2, Discount: 0, Total: 2},
		},
		"below threshold pays flat shipping": {
			items: []cart.LineItem{{Price: 20, Quantity: 2}},
			want:  Summary{Subtotal: 40, Tax: 7.20, Shipping: 2, Discount: 0, Total: 49.20},
		},
		"at threshold ships free": {
			items: []cart.LineItem{{Price: 25, Quantity: 2}},
			want:  Summary{Subtotal: 50, Tax: 9, Shipping: 0, Discount: 0, Total: 59},
		},
		"above threshold ships free": {
			items: []cart.LineItem{{Price: 20, Quantity: 3}},
			want:  Summary{Subtotal: 60, Tax: 10.80, Shipping: 0, Discount: 0, Total: 70.80},
		},
		"coupon discount subtracted": {
			items:    []cart.LineItem{{Price: 20, Quantity: 3}},
			discount: 10,
			want:     Summary{Subtotal: 60, Tax: 10.80, Shipping: 0, Discount: 10, Total: 60.80},
		},
		"oversized discount drives total negative": {
			items:    []cart.LineItem{{Price: 5, Quantity: 1}},
			discount: 20,
			want:     Summary{Subtotal: 5, Tax: 0.90, Shipping: 2, Discount: 20, Total: -12.10},
		},
		"multiple lines sum before tax": {
			items: []cart.LineItem{
				{Price: 10, Quantity: 2},
				{Price: 7.5, Quantity: 4},
			},
			want: Summary{Subtotal: 50, Tax: 9, Shipping: 0, Discount: 0, Total: 59},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Calculate(tc.items, tc.discount)

			assertMoney(t, "subtotal", got.Subtotal, tc.want.Subtotal)
			assertMoney(t, "tax", got.Tax, tc.want.Tax)
			assertMoney(t, "shipping", got.Shipping, tc.want.Shipping)
			assertMoney(t, "discount", got.Discount, tc.want.Discount)
			assertMoney(t, "total", got.Total, tc.want.Total)
		})
	}
}

// assertMoney compares at cent precision; internal values keep full
// float precision, display rounds to two decimals.
func assertMoney(t *testing.T, field string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.005 {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
}
