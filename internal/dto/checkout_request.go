package dto

type ShippingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (s ShippingAddress) Complete() bool {
	return s.FirstName != "" && s.LastName != "" && s.Address != "" &&
		s.City != "" && s.PostalCode != ""
}

// PaymentToken carries the processor-specific handle: a Stripe payment
// method id for card payments, an approved PayPal order id for wallet
// payments. Unused for manual transfers.
type CheckoutRequest struct {
	UserID          int64
	PaymentMethod   string          `json:"payment_method"`
	PaymentToken    string          `json:"payment_token"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}
