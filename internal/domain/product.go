package domain

type Product struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	Description    *string `db:"description"`
	PriceCents     int64   `db:"price_cents"`
	ImageURL       *string `db:"image_url"`
	Category       string  `db:"category"`
	Stock          int64   `db:"stock"`
	Rating         float64 `db:"rating"`
	IsFreeShipping bool    `db:"is_free_shipping"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
	DeletedAt      *int64  `db:"deleted_at"`
}
