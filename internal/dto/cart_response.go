package dto

type CartItemResponse struct {
	ID       int64           `json:"id"`
	Quantity int64           `json:"quantity"`
	Product  ProductResponse `json:"product"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
}
