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

type OrderRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateOrderRepository(db *sqlx.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id int64, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.tx.PrepareNamedContext(ctx, "INSERT INTO orders(user_id, amount_cents, status, payment_method, payment_reference, transaction_number, shipping_first_name, shipping_last_name, shipping_address, shipping_city, shipping_postal_code, shipping_country, created_at, updated_at) VALUES (:user_id, :amount_cents, :status, :payment_method, :payment_reference, :transaction_number, :shipping_first_name, :shipping_last_name, :shipping_address, :shipping_city, :shipping_postal_code, :shipping_country, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return data.ID, nil
}

func (r *OrderRepositoryImpl) AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error) {
	_, err = r.tx.NamedExecContext(ctx, "INSERT INTO order_items(order_id, product_id, product_name, quantity, price_cents, created_at, updated_at) VALUES (:order_id, :product_id, :product_name, :quantity, :price_cents, :created_at, :updated_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrderItems").Msg("")
		return
	}

	return nil
}

func (r *OrderRepositoryImpl) ClearCart(ctx context.Context, userID int64) (err error) {
	_, err = r.tx.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "ClearCart").Msg("")
		return
	}

	return nil
}

// DecrementProductStock takes stock conditionally so two concurrent
// checkouts cannot both claim the same unit: zero rows affected means the
// remaining stock was below the purchased quantity.
func (r *OrderRepositoryImpl) DecrementProductStock(ctx context.Context, productID, quantity int64) (err error) {
	res, err := r.tx.ExecContext(ctx, "UPDATE products SET stock = stock - $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL AND stock >= $1", quantity, time.Now().Unix(), productID)
	if err != nil {
		log.Error().Err(err).Str("component", "DecrementProductStock").Msg("")
		return
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if rows == 0 {
		return errs.ErrInsufficientStock
	}

	return nil
}

func (r *OrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID int64) (data []domain.Order, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM orders WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *OrderRepositoryImpl) GetOrderItemsByOrderID(ctx context.Context, orderID int64) (data []domain.OrderItem, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Error().Err(err).Str("component", "GetOrderItemsByOrderID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *OrderRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &OrderRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, trxRepo)

	return err
}
