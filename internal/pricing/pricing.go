package pricing

import "math"

// Line is one cart position as priced at checkout time. Amounts are in
// integer cents so totals stay exact at minor-unit precision.
type Line struct {
	UnitPriceCents int64
	Quantity       int64
	FreeShipping   bool
}

type Quote struct {
	SubtotalCents int64
	ShippingCents int64
	TaxCents      int64
	TotalCents    int64
}

// Calculate prices a cart: subtotal is the sum of line amounts, shipping is
// zero only when every line qualifies for free shipping, and tax is applied
// to subtotal plus shipping, rounded to the nearest cent. An empty cart
// yields a zero quote; rejecting checkout on an empty cart is the caller's
// job.
func Calculate(lines []Line, flatShippingCents int64, taxRate float64) Quote {
	if len(lines) == 0 {
		return Quote{}
	}

	var subtotal int64
	allFreeShipping := true
	for _, line := range lines {
		subtotal += line.UnitPriceCents * line.Quantity
		if !line.FreeShipping {
			allFreeShipping = false
		}
	}

	var shipping int64
	if !allFreeShipping {
		shipping = flatShippingCents
	}

	tax := int64(math.Round(taxRate * float64(subtotal+shipping)))

	return Quote{
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotal + shipping + tax,
	}
}
