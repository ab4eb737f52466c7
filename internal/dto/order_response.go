package dto

type QuoteResponse struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	ShippingCents int64 `json:"shipping_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

type CheckoutResponse struct {
	OrderID           int64         `json:"order_id"`
	TransactionNumber string        `json:"transaction_number"`
	Status            string        `json:"status"`
	PaymentMethod     string        `json:"payment_method"`
	PaymentReference  string        `json:"payment_reference"`
	Instructions      string        `json:"instructions,omitempty"`
	Quote             QuoteResponse `json:"quote"`
}

type OrderItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	PriceCents  int64  `json:"price_cents"`
}

type OrderResponse struct {
	ID                int64               `json:"id"`
	TransactionNumber string              `json:"transaction_number"`
	AmountCents       int64               `json:"amount_cents"`
	Status            string              `json:"status"`
	PaymentMethod     string              `json:"payment_method"`
	CreatedAt         int64               `json:"created_at"`
	Items             []OrderItemResponse `json:"items"`
}
