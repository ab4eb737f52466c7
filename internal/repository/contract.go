package repository

import (
	"context"

	"github.com/ImperialKoi/Candit/internal/domain"
	pkgdto "github.com/ImperialKoi/Candit/pkg/dto"
)

type ProductRepository interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type CartRepository interface {
	GetCartItems(ctx context.Context, userID int64) (data []domain.CartItem, err error)
	GetCartItemByID(ctx context.Context, id, userID int64) (data domain.CartItem, err error)
	GetCartItemByUserAndProduct(ctx context.Context, userID, productID int64) (data domain.CartItem, err error)
	AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error)
	UpdateCartItemQuantity(ctx context.Context, id, userID, quantity int64) (err error)
	DeleteCartItem(ctx context.Context, id, userID int64) (err error)
	DeleteStaleCartItems(ctx context.Context, olderThan int64) (count int64, err error)
}

// OrderRepository writes the order finalization effects. AddOrder,
// AddOrderItems, ClearCart and DecrementProductStock must run inside
// HandleTrx so the three-step write commits or rolls back as one unit.
type OrderRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error

	AddOrder(ctx context.Context, data domain.Order) (id int64, err error)
	AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error)
	ClearCart(ctx context.Context, userID int64) (err error)
	DecrementProductStock(ctx context.Context, productID, quantity int64) (err error)
	GetOrdersByUserID(ctx context.Context, userID int64) (data []domain.Order, err error)
	GetOrderItemsByOrderID(ctx context.Context, orderID int64) (data []domain.OrderItem, err error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	UpdateLastSignIn(ctx context.Context, id int64, signedInAt int64) (err error)
}
