package dto

type ProductResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PriceCents     int64   `json:"price_cents"`
	ImageURL       string  `json:"image_url"`
	Category       string  `json:"category"`
	Stock          int64   `json:"stock"`
	Rating         float64 `json:"rating"`
	IsFreeShipping bool    `json:"is_free_shipping"`
	CreatedAt      int64   `json:"created_at"`
}
