package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ImperialKoi/Candit/internal/domain"
	pkgdto "github.com/ImperialKoi/Candit/pkg/dto"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price_cents",
	"rating":     "rating",
	"created_at": "created_at",
}

func buildProductFilter(filter pkgdto.Filter, args map[string]interface{}) string {
	query := ""

	if filter.Q != "" {
		query += " AND name ILIKE :q"
		args["q"] = "%" + filter.Q + "%"
	}

	if filter.Category != "" {
		query += " AND category = :category"
		args["category"] = filter.Category
	}

	return query
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	query := "SELECT * FROM products WHERE deleted_at IS NULL"

	args := make(map[string]interface{})
	query += buildProductFilter(filter, args)

	sortColumn, ok := productSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "ASC"
	if filter.Order == "desc" || filter.SortBy == "" {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortColumn, direction)

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, err
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, err
	}

	return
}

func (r *ProductRepositoryImpl) CountProducts(ctx context.Context, filter pkgdto.Filter) (count int64, err error) {
	query := "SELECT COUNT(id) FROM products WHERE deleted_at IS NULL"

	args := make(map[string]interface{})
	query += buildProductFilter(filter, args)

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, err
	}

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, err
	}

	return
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrNotFound
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := time.Now().Unix()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(name, description, price_cents, image_url, category, stock, rating, is_free_shipping, created_at, updated_at) VALUES (:name, :description, :price_cents, :image_url, :category, :stock, :rating, :is_free_shipping, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return data.ID, nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	data.UpdatedAt = time.Now().Unix()

	_, err = r.db.NamedExecContext(ctx, "UPDATE products SET name=:name, description=:description, price_cents=:price_cents, image_url=:image_url, category=:category, stock=:stock, rating=:rating, is_free_shipping=:is_free_shipping, updated_at=:updated_at WHERE id=:id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE products SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now().Unix(), id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	return nil
}
