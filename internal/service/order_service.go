package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ImperialKoi/Candit/config"
	"github.com/ImperialKoi/Candit/internal/domain"
	"github.com/ImperialKoi/Candit/internal/dto"
	paymentgateway "github.com/ImperialKoi/Candit/internal/infrastructure/payment-gateway"
	"github.com/ImperialKoi/Candit/internal/pricing"
	"github.com/ImperialKoi/Candit/internal/repository"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/ImperialKoi/Candit/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"gopkg.in/gomail.v2"
)

type OrderServiceImpl struct {
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	userRepo      repository.UserRepository
	processors    map[string]paymentgateway.Processor
	kafkaProducer *kafka.Conn
	config        *config.Config
}

func CreateOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, userRepo repository.UserRepository, processors map[string]paymentgateway.Processor, kafkaProducer *kafka.Conn, config *config.Config) OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		userRepo:      userRepo,
		processors:    processors,
		kafkaProducer: kafkaProducer,
		config:        config,
	}
}

// Checkout runs the order finalization workflow: price the cart, capture
// the payment through the selected processor, then record the order, clear
// the cart and take the stock in one transaction. The captured amount always
// comes from the pricing step, never from the request. A declined or
// cancelled capture leaves the store untouched; a write failure after a
// confirmed capture is surfaced as a partial-write error since funds have
// already moved.
func (s *OrderServiceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest) (response dto.CheckoutResponse, err error) {
	cs := newCheckout()

	cartItems, err := s.cartRepo.GetCartItems(ctx, req.UserID)
	if err != nil {
		return response, cs.fail(err)
	}

	if len(cartItems) == 0 {
		return response, cs.fail(errs.ErrEmptyCart)
	}

	if !req.ShippingAddress.Complete() {
		return response, cs.fail(errs.ErrIncompleteInput)
	}

	processor, ok := s.processors[req.PaymentMethod]
	if !ok {
		return response, cs.fail(errs.ErrUnknownPaymentKind)
	}

	lines := make([]pricing.Line, 0, len(cartItems))
	for _, item := range cartItems {
		lines = append(lines, pricing.Line{
			UnitPriceCents: item.Product.PriceCents,
			Quantity:       item.Quantity,
			FreeShipping:   item.Product.IsFreeShipping,
		})
	}

	if err = cs.advance(statePricingComputed); err != nil {
		return response, err
	}
	quote := pricing.Calculate(lines, s.config.CheckoutConfig.FlatShippingCents, s.config.CheckoutConfig.TaxRate)

	trxNumber, err := uuid.NewV7()
	if err != nil {
		return response, cs.fail(err)
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return response, cs.fail(err)
	}

	if err = cs.advance(statePaymentPending); err != nil {
		return response, err
	}

	captureResult, err := processor.Capture(ctx, paymentgateway.CaptureRequest{
		Reference:   trxNumber.String(),
		AmountCents: quote.TotalCents,
		Currency:    s.config.CheckoutConfig.Currency,
		Token:       req.PaymentToken,
		PayerEmail:  user.Email,
	})
	if err != nil {
		return response, cs.fail(err)
	}

	if !captureResult.Confirmed {
		reason := captureResult.FailureReason
		if reason == nil {
			reason = errs.ErrPaymentDeclined
		}
		return response, cs.fail(reason)
	}

	if err = cs.advance(statePaymentConfirmed); err != nil {
		return response, err
	}

	status := domain.OrderStatusCompleted
	if req.PaymentMethod == domain.PaymentMethodTransfer {
		// Manual transfers are not verified against received funds, so the
		// order stays pending until someone confirms the transfer.
		status = domain.OrderStatusPendingPayment
	}

	var orderID int64
	err = s.orderRepo.HandleTrx(ctx, func(ctx context.Context, repo repository.OrderRepository) error {
		timestamp := time.Now().Unix()

		orderID, err = repo.AddOrder(ctx, domain.Order{
			UserID:            req.UserID,
			AmountCents:       quote.TotalCents,
			Status:            status,
			PaymentMethod:     req.PaymentMethod,
			PaymentReference:  captureResult.Reference,
			TransactionNumber: trxNumber.String(),
			ShippingFirstName: req.ShippingAddress.FirstName,
			ShippingLastName:  req.ShippingAddress.LastName,
			ShippingAddress:   req.ShippingAddress.Address,
			ShippingCity:      req.ShippingAddress.City,
			ShippingPostal:    req.ShippingAddress.PostalCode,
			ShippingCountry:   req.ShippingAddress.Country,
		})
		if err != nil {
			return err
		}

		orderItems := make([]domain.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			orderItems = append(orderItems, domain.OrderItem{
				OrderID:     orderID,
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				PriceCents:  item.Product.PriceCents,
				CreatedAt:   timestamp,
				UpdatedAt:   timestamp,
			})
		}

		if err := repo.AddOrderItems(ctx, orderItems); err != nil {
			return err
		}

		if err := repo.ClearCart(ctx, req.UserID); err != nil {
			return err
		}

		for _, item := range cartItems {
			if err := repo.DecrementProductStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		// Funds already moved; nothing here retries or compensates the
		// capture, so the failure has to reach the user with a support path.
		log.Error().Err(err).Str("component", "Checkout").Str("transaction_number", trxNumber.String()).Msg("order write failed after confirmed capture")
		return response, cs.fail(errs.ErrPartialWrite)
	}

	if err = cs.advance(stateOrderWritten); err != nil {
		return response, err
	}

	s.publishOrderCreated(trxNumber.String(), user.ExternalID, req.PaymentMethod, quote.TotalCents, cartItems)

	if req.PaymentMethod == domain.PaymentMethodTransfer {
		go s.sendTransferInstructions(user.Email, captureResult.Instructions)
	}

	response = dto.CheckoutResponse{
		OrderID:           orderID,
		TransactionNumber: trxNumber.String(),
		Status:            status,
		PaymentMethod:     req.PaymentMethod,
		PaymentReference:  captureResult.Reference,
		Instructions:      captureResult.Instructions,
		Quote: dto.QuoteResponse{
			SubtotalCents: quote.SubtotalCents,
			ShippingCents: quote.ShippingCents,
			TaxCents:      quote.TaxCents,
			TotalCents:    quote.TotalCents,
		},
	}

	return response, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, userID int64) (response []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return
	}

	for _, order := range orders {
		items, err := s.orderRepo.GetOrderItemsByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}

		itemResponses := make([]dto.OrderItemResponse, 0, len(items))
		for _, item := range items {
			itemResponses = append(itemResponses, dto.OrderItemResponse{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				PriceCents:  item.PriceCents,
			})
		}

		response = append(response, dto.OrderResponse{
			ID:                order.ID,
			TransactionNumber: order.TransactionNumber,
			AmountCents:       order.AmountCents,
			Status:            order.Status,
			PaymentMethod:     order.PaymentMethod,
			CreatedAt:         order.CreatedAt,
			Items:             itemResponses,
		})
	}

	return
}

// publishOrderCreated is a single best-effort attempt; order finalization
// never fails over eventing.
func (s *OrderServiceImpl) publishOrderCreated(trxNumber, userExternalID, paymentMethod string, amountCents int64, cartItems []domain.CartItem) {
	if s.kafkaProducer == nil {
		return
	}

	eventItems := make([]dto.OrderEventItem, 0, len(cartItems))
	for _, item := range cartItems {
		eventItems = append(eventItems, dto.OrderEventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: "order_created",
		Data: dto.OrderCreatedEvent{
			TransactionNumber: trxNumber,
			UserExternalID:    userExternalID,
			AmountCents:       amountCents,
			PaymentMethod:     paymentMethod,
			Items:             eventItems,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishOrderCreated").Msg("")
		return
	}

	_, err = s.kafkaProducer.WriteMessages(kafka.Message{
		Key:   []byte(trxNumber),
		Value: jsonMsg,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "publishOrderCreated").Msg("")
	}
}

func (s *OrderServiceImpl) sendTransferInstructions(email, instructions string) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", email)
	message.SetHeader("Subject", "Your Candit order payment instructions")
	message.SetBody("text/plain", instructions)

	err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port)
	if err != nil {
		log.Error().Err(err).Str("component", "sendTransferInstructions").Msg("")
	}
}
