package dto

type ProductRequest struct {
	ID             int64
	Name           string  `json:"name" form:"name"`
	Description    string  `json:"description" form:"description"`
	PriceCents     int64   `json:"price_cents" form:"price_cents"`
	Category       string  `json:"category" form:"category"`
	Stock          int64   `json:"stock" form:"stock"`
	Rating         float64 `json:"rating" form:"rating"`
	IsFreeShipping bool    `json:"is_free_shipping" form:"is_free_shipping"`
	ImageURL       string  `json:"image_url" form:"image_url"`
}
