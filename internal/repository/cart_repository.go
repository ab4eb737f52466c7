package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ImperialKoi/Candit/internal/domain"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CartRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCartRepository(db *sqlx.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

const cartItemsWithProductQuery = `SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
	p.id AS "product.id", p.name AS "product.name", p.description AS "product.description",
	p.price_cents AS "product.price_cents", p.image_url AS "product.image_url",
	p.category AS "product.category", p.stock AS "product.stock", p.rating AS "product.rating",
	p.is_free_shipping AS "product.is_free_shipping", p.created_at AS "product.created_at",
	p.updated_at AS "product.updated_at", p.deleted_at AS "product.deleted_at"
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1 AND p.deleted_at IS NULL
ORDER BY ci.created_at`

func (r *CartRepositoryImpl) GetCartItems(ctx context.Context, userID int64) (data []domain.CartItem, err error) {
	err = r.db.SelectContext(ctx, &data, cartItemsWithProductQuery, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartItems").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) GetCartItemByID(ctx context.Context, id, userID int64) (data domain.CartItem, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, user_id, product_id, quantity, created_at, updated_at FROM cart_items WHERE id = $1 AND user_id = $2", id, userID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCartItemByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) GetCartItemByUserAndProduct(ctx context.Context, userID, productID int64) (data domain.CartItem, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, user_id, product_id, quantity, created_at, updated_at FROM cart_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCartItemByUserAndProduct").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO cart_items(user_id, product_id, quantity, created_at, updated_at) VALUES (:user_id, :product_id, :quantity, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return
	}

	return data.ID, nil
}

func (r *CartRepositoryImpl) UpdateCartItemQuantity(ctx context.Context, id, userID, quantity int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3 AND user_id = $4", quantity, time.Now().Unix(), id, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItemQuantity").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteCartItem(ctx context.Context, id, userID int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCartItem").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteStaleCartItems(ctx context.Context, olderThan int64) (count int64, err error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE updated_at < $1", olderThan)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteStaleCartItems").Msg("")
		return 0, err
	}

	count, err = res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return count, nil
}
