package paymentgateway

import (
	"testing"

	"github.com/plutov/paypal/v4"
	"github.com/stretchr/testify/assert"
)

func TestOrderAmountMatches(t *testing.T) {
	type TestCase struct {
		Name        string
		Order       *paypal.Order
		AmountCents int64
		Currency    string
		Expected    bool
	}

	approvedOrder := func(value, currency string) *paypal.Order {
		return &paypal.Order{
			PurchaseUnits: []paypal.PurchaseUnit{
				{Amount: &paypal.PurchaseUnitAmount{Value: value, Currency: currency}},
			},
		}
	}

	testCases := []TestCase{
		{
			Name:        "Amount and currency match",
			Order:       approvedOrder("16.94", "USD"),
			AmountCents: 1694,
			Currency:    "usd",
			Expected:    true,
		},
		{
			Name:        "Wallet order holds a stale amount",
			Order:       approvedOrder("9.99", "USD"),
			AmountCents: 1694,
			Currency:    "usd",
			Expected:    false,
		},
		{
			Name:        "Currency mismatch",
			Order:       approvedOrder("16.94", "CAD"),
			AmountCents: 1694,
			Currency:    "usd",
			Expected:    false,
		},
		{
			Name:        "No purchase units",
			Order:       &paypal.Order{},
			AmountCents: 1694,
			Currency:    "usd",
			Expected:    false,
		},
		{
			Name: "Purchase unit without amount",
			Order: &paypal.Order{
				PurchaseUnits: []paypal.PurchaseUnit{{}},
			},
			AmountCents: 1694,
			Currency:    "usd",
			Expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, orderAmountMatches(tc.Order, tc.AmountCents, tc.Currency))
		})
	}
}
