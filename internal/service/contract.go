package service

import (
	"context"
	"io"

	"github.com/ImperialKoi/Candit/internal/dto"
	pkgdto "github.com/ImperialKoi/Candit/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (response pkgdto.PaginationResponse, err error)
	GetProduct(ctx context.Context, id int64) (response dto.ProductResponse, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest, image io.Reader, imageName string) (err error)
	UpdateProduct(ctx context.Context, req dto.ProductRequest, image io.Reader, imageName string) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type CartService interface {
	GetCart(ctx context.Context, userID int64) (response dto.CartResponse, err error)
	AddCartItem(ctx context.Context, req dto.CartItemRequest) (err error)
	UpdateCartItemQuantity(ctx context.Context, req dto.CartItemRequest) (err error)
	RemoveCartItem(ctx context.Context, id, userID int64) (err error)
	RemoveStaleCartItems()
}

type UserService interface {
	AddUser(ctx context.Context, req dto.UserRequest) (err error)
	Login(ctx context.Context, req dto.UserRequest) (response dto.LoginResponse, err error)
	GetProfile(ctx context.Context, userID int64) (response dto.UserResponse, err error)
	UpdateProfile(ctx context.Context, req dto.UserRequest) (err error)
}

type OrderService interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (response dto.CheckoutResponse, err error)
	GetOrders(ctx context.Context, userID int64) (response []dto.OrderResponse, err error)
}
