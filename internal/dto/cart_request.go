package dto

type CartItemRequest struct {
	ID        int64
	UserID    int64
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}
