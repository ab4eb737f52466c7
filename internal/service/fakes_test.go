package service

import (
	"context"

	"github.com/ImperialKoi/Candit/internal/domain"
	paymentgateway "github.com/ImperialKoi/Candit/internal/infrastructure/payment-gateway"
	"github.com/ImperialKoi/Candit/internal/repository"
	pkgdto "github.com/ImperialKoi/Candit/pkg/dto"
	"github.com/ImperialKoi/Candit/pkg/errs"
)

type fakeCartRepository struct {
	items        []domain.CartItem
	getErr       error
	updatedID    int64
	updatedQty   int64
	deletedID    int64
	addedItem    *domain.CartItem
	staleCutoff  int64
	staleRemoved int64
}

func (f *fakeCartRepository) GetCartItems(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return f.items, f.getErr
}

func (f *fakeCartRepository) GetCartItemByID(ctx context.Context, id, userID int64) (domain.CartItem, error) {
	for _, item := range f.items {
		if item.ID == id && item.UserID == userID {
			return item, nil
		}
	}
	return domain.CartItem{}, nil
}

func (f *fakeCartRepository) GetCartItemByUserAndProduct(ctx context.Context, userID, productID int64) (domain.CartItem, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, nil
}

func (f *fakeCartRepository) AddCartItem(ctx context.Context, data domain.CartItem) (int64, error) {
	f.addedItem = &data
	return 1, nil
}

func (f *fakeCartRepository) UpdateCartItemQuantity(ctx context.Context, id, userID, quantity int64) error {
	f.updatedID = id
	f.updatedQty = quantity
	return nil
}

func (f *fakeCartRepository) DeleteCartItem(ctx context.Context, id, userID int64) error {
	f.deletedID = id
	return nil
}

func (f *fakeCartRepository) DeleteStaleCartItems(ctx context.Context, olderThan int64) (int64, error) {
	f.staleCutoff = olderThan
	return f.staleRemoved, nil
}

type fakeProductRepository struct {
	products map[int64]domain.Product
}

func (f *fakeProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepository) CountProducts(ctx context.Context, filter pkgdto.Filter) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepository) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (int64, error) {
	return 1, nil
}

func (f *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	return nil
}

func (f *fakeProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	return nil
}

type fakeUserRepository struct {
	user      domain.User
	err       error
	addedUser *domain.User
	updated   *domain.User
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	f.addedUser = &data
	return 1, nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	f.updated = &data
	return nil
}

func (f *fakeUserRepository) UpdateLastSignIn(ctx context.Context, id int64, signedInAt int64) error {
	return nil
}

// fakeOrderRepository applies the transactional writes against an in-memory
// stock table so insufficient stock surfaces the same way the conditional
// UPDATE does, and records every effect so tests can assert that a failed
// transaction left nothing behind.
type fakeOrderRepository struct {
	stock map[int64]int64

	orders      []domain.Order
	orderItems  []domain.OrderItem
	clearedUser int64
	trxErr      error

	existingOrders []domain.Order
	existingItems  map[int64][]domain.OrderItem
}

func (f *fakeOrderRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.OrderRepository) error) error {
	if f.trxErr != nil {
		return f.trxErr
	}

	snapshotOrders := len(f.orders)
	snapshotItems := len(f.orderItems)
	snapshotStock := make(map[int64]int64, len(f.stock))
	for id, qty := range f.stock {
		snapshotStock[id] = qty
	}
	clearedUser := f.clearedUser

	if err := fn(ctx, f); err != nil {
		f.orders = f.orders[:snapshotOrders]
		f.orderItems = f.orderItems[:snapshotItems]
		f.stock = snapshotStock
		f.clearedUser = clearedUser
		return err
	}

	return nil
}

func (f *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (int64, error) {
	data.ID = int64(len(f.orders) + 1)
	f.orders = append(f.orders, data)
	return data.ID, nil
}

func (f *fakeOrderRepository) AddOrderItems(ctx context.Context, data []domain.OrderItem) error {
	f.orderItems = append(f.orderItems, data...)
	return nil
}

func (f *fakeOrderRepository) ClearCart(ctx context.Context, userID int64) error {
	f.clearedUser = userID
	return nil
}

func (f *fakeOrderRepository) DecrementProductStock(ctx context.Context, productID, quantity int64) error {
	if f.stock[productID] < quantity {
		return errs.ErrInsufficientStock
	}
	f.stock[productID] -= quantity
	return nil
}

func (f *fakeOrderRepository) GetOrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	return f.existingOrders, nil
}

func (f *fakeOrderRepository) GetOrderItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	return f.existingItems[orderID], nil
}

type fakeProcessor struct {
	result   paymentgateway.CaptureResult
	err      error
	captured *paymentgateway.CaptureRequest
}

func (f *fakeProcessor) Capture(ctx context.Context, req paymentgateway.CaptureRequest) (paymentgateway.CaptureResult, error) {
	f.captured = &req
	if f.err != nil {
		return paymentgateway.CaptureResult{}, f.err
	}

	result := f.result
	if result.Reference == "" {
		result.Reference = req.Reference
	}
	return result, f.err
}
