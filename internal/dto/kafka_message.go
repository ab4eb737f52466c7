package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type OrderCreatedEvent struct {
	TransactionNumber string           `json:"transaction_number"`
	UserExternalID    string           `json:"user_external_id"`
	AmountCents       int64            `json:"amount_cents"`
	PaymentMethod     string           `json:"payment_method"`
	Items             []OrderEventItem `json:"items"`
}

type OrderEventItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}
