package domain

const (
	PaymentMethodCard     = "card"
	PaymentMethodPayPal   = "paypal"
	PaymentMethodTransfer = "transfer"
)

const (
	OrderStatusCompleted      = "completed"
	OrderStatusPendingPayment = "pending_payment"
)

type Order struct {
	ID                int64   `db:"id"`
	UserID            int64   `db:"user_id"`
	AmountCents       int64   `db:"amount_cents"`
	Status            string  `db:"status"`
	PaymentMethod     string  `db:"payment_method"`
	PaymentReference  string  `db:"payment_reference"`
	TransactionNumber string  `db:"transaction_number"`
	ShippingFirstName string  `db:"shipping_first_name"`
	ShippingLastName  string  `db:"shipping_last_name"`
	ShippingAddress   string  `db:"shipping_address"`
	ShippingCity      string  `db:"shipping_city"`
	ShippingPostal    string  `db:"shipping_postal_code"`
	ShippingCountry   string  `db:"shipping_country"`
	CreatedAt         int64   `db:"created_at"`
	UpdatedAt         int64   `db:"updated_at"`
	DeletedAt         *int64  `db:"deleted_at"`
	OrderItems        []OrderItem
}

type OrderItem struct {
	ID          int64  `db:"id"`
	OrderID     int64  `db:"order_id"`
	ProductID   int64  `db:"product_id"`
	ProductName string `db:"product_name"`
	Quantity    int64  `db:"quantity"`
	PriceCents  int64  `db:"price_cents"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
}
