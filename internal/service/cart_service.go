package service

import (
	"context"
	"time"

	"github.com/ImperialKoi/Candit/internal/domain"
	"github.com/ImperialKoi/Candit/internal/dto"
	"github.com/ImperialKoi/Candit/internal/repository"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cartTTLDays int
}

func CreateCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, cartTTLDays int) CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		cartTTLDays: cartTTLDays,
	}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID int64) (response dto.CartResponse, err error) {
	items, err := s.cartRepo.GetCartItems(ctx, userID)
	if err != nil {
		return
	}

	response.Items = make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		response.Items = append(response.Items, dto.CartItemResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product:  toProductResponse(item.Product),
		})
		response.TotalItems += item.Quantity
	}

	return
}

func (s *CartServiceImpl) AddCartItem(ctx context.Context, req dto.CartItemRequest) (err error) {
	if req.Quantity <= 0 {
		return errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return
	}

	existing, err := s.cartRepo.GetCartItemByUserAndProduct(ctx, req.UserID, req.ProductID)
	if err != nil {
		return
	}

	newQuantity := existing.Quantity + req.Quantity
	if newQuantity > product.Stock {
		return errs.ErrInsufficientStock
	}

	if existing.ID != 0 {
		return s.cartRepo.UpdateCartItemQuantity(ctx, existing.ID, req.UserID, newQuantity)
	}

	_, err = s.cartRepo.AddCartItem(ctx, domain.CartItem{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})

	return
}

func (s *CartServiceImpl) UpdateCartItemQuantity(ctx context.Context, req dto.CartItemRequest) (err error) {
	if req.Quantity <= 0 {
		return s.cartRepo.DeleteCartItem(ctx, req.ID, req.UserID)
	}

	// The stock cap validates against the line's own product; the payload
	// only decides the quantity.
	line, err := s.cartRepo.GetCartItemByID(ctx, req.ID, req.UserID)
	if err != nil {
		return
	}
	if line.ID == 0 {
		return errs.ErrNotFound
	}

	product, err := s.productRepo.GetProductByID(ctx, line.ProductID)
	if err != nil {
		return
	}
	if req.Quantity > product.Stock {
		return errs.ErrInsufficientStock
	}

	return s.cartRepo.UpdateCartItemQuantity(ctx, req.ID, req.UserID, req.Quantity)
}

func (s *CartServiceImpl) RemoveCartItem(ctx context.Context, id, userID int64) (err error) {
	return s.cartRepo.DeleteCartItem(ctx, id, userID)
}

// RemoveStaleCartItems runs from the scheduler and drops cart lines that
// have not been touched within the configured TTL.
func (s *CartServiceImpl) RemoveStaleCartItems() {
	log.Info().Str("component", "RemoveStaleCartItems").Msg("cron starts")

	cutoff := time.Now().AddDate(0, 0, -s.cartTTLDays).Unix()
	count, err := s.cartRepo.DeleteStaleCartItems(context.Background(), cutoff)
	if err != nil {
		log.Error().Err(err).Str("component", "RemoveStaleCartItems").Msg("")
		return
	}

	log.Info().Str("component", "RemoveStaleCartItems").Int64("removed", count).Msg("cron ends")
}
