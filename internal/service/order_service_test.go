package service

import (
	"context"
	"testing"

	"github.com/ImperialKoi/Candit/config"
	"github.com/ImperialKoi/Candit/internal/domain"
	"github.com/ImperialKoi/Candit/internal/dto"
	paymentgateway "github.com/ImperialKoi/Candit/internal/infrastructure/payment-gateway"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func checkoutConfig() *config.Config {
	return &config.Config{
		CheckoutConfig: config.CheckoutConfig{
			Currency:          "usd",
			TaxRate:           0.13,
			FlatShippingCents: 500,
		},
	}
}

func validShippingAddress() dto.ShippingAddress {
	return dto.ShippingAddress{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Address:    "12 Analytical Way",
		City:       "Toronto",
		PostalCode: "M5V 2T6",
		Country:    "CA",
	}
}

func checkoutCart() []domain.CartItem {
	return []domain.CartItem{
		{
			ID:        1,
			UserID:    7,
			ProductID: 10,
			Quantity:  1,
			Product: domain.Product{
				ID:         10,
				Name:       "Walnut Phone Stand",
				PriceCents: 999,
				Stock:      5,
			},
		},
	}
}

func TestCheckoutCardSuccess(t *testing.T) {
	cartRepo := &fakeCartRepository{items: checkoutCart()}
	orderRepo := &fakeOrderRepository{stock: map[int64]int64{10: 5}}
	userRepo := &fakeUserRepository{user: domain.User{ID: 7, Email: "ada@example.com", ExternalID: "usr_1"}}
	processor := &fakeProcessor{result: paymentgateway.CaptureResult{Confirmed: true}}

	svc := CreateOrderService(orderRepo, cartRepo, userRepo, map[string]paymentgateway.Processor{
		domain.PaymentMethodCard: processor,
	}, nil, checkoutConfig())

	response, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		UserID:          7,
		PaymentMethod:   domain.PaymentMethodCard,
		PaymentToken:    "pm_test",
		ShippingAddress: validShippingAddress(),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, response.Status)
	assert.NotEmpty(t, response.TransactionNumber)

	// 999 subtotal + 500 shipping + 195 tax
	assert.Equal(t, int64(1694), response.Quote.TotalCents)

	// The captured amount comes from the computed quote.
	assert.NotNil(t, processor.captured)
	assert.Equal(t, int64(1694), processor.captured.AmountCents)
	assert.Equal(t, "usd", processor.captured.Currency)
	assert.Equal(t, response.TransactionNumber, processor.captured.Reference)

	assert.Len(t, orderRepo.orders, 1)
	assert.Equal(t, int64(1694), orderRepo.orders[0].AmountCents)
	assert.Len(t, orderRepo.orderItems, 1)
	assert.Equal(t, "Walnut Phone Stand", orderRepo.orderItems[0].ProductName)
	assert.Equal(t, int64(999), orderRepo.orderItems[0].PriceCents)
	assert.Equal(t, int64(7), orderRepo.clearedUser)
	assert.Equal(t, int64(4), orderRepo.stock[10])
}

func TestCheckoutTransferStaysPending(t *testing.T) {
	cartRepo := &fakeCartRepository{items: checkoutCart()}
	orderRepo := &fakeOrderRepository{stock: map[int64]int64{10: 5}}
	userRepo := &fakeUserRepository{user: domain.User{ID: 7, Email: "ada@example.com"}}
	processor := &fakeProcessor{result: paymentgateway.CaptureResult{
		Confirmed:    true,
		Instructions: "Send an Interac e-Transfer to payments@candit.com",
	}}

	svc := CreateOrderService(orderRepo, cartRepo, userRepo, map[string]paymentgateway.Processor{
		domain.PaymentMethodTransfer: processor,
	}, nil, checkoutConfig())

	response, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		UserID:          7,
		PaymentMethod:   domain.PaymentMethodTransfer,
		ShippingAddress: validShippingAddress(),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPendingPayment, response.Status)
	assert.Contains(t, response.Instructions, "Interac")
	assert.Len(t, orderRepo.orders, 1)
	assert.Equal(t, domain.OrderStatusPendingPayment, orderRepo.orders[0].Status)
}

func TestCheckoutRejections(t *testing.T) {
	type TestCase struct {
		Name          string
		CartItems     []domain.CartItem
		PaymentMethod string
		Address       dto.ShippingAddress
		ExpectedErr   error
	}

	testCases := []TestCase{
		{
			Name:          "Empty cart",
			CartItems:     nil,
			PaymentMethod: domain.PaymentMethodCard,
			Address:       validShippingAddress(),
			ExpectedErr:   errs.ErrEmptyCart,
		},
		{
			Name:          "Incomplete shipping address",
			CartItems:     checkoutCart(),
			PaymentMethod: domain.PaymentMethodCard,
			Address:       dto.ShippingAddress{FirstName: "Ada"},
			ExpectedErr:   errs.ErrIncompleteInput,
		},
		{
			Name:          "Unknown payment method",
			CartItems:     checkoutCart(),
			PaymentMethod: "crypto",
			Address:       validShippingAddress(),
			ExpectedErr:   errs.ErrUnknownPaymentKind,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cartRepo := &fakeCartRepository{items: tc.CartItems}
			orderRepo := &fakeOrderRepository{stock: map[int64]int64{10: 5}}
			userRepo := &fakeUserRepository{user: domain.User{ID: 7}}
			processor := &fakeProcessor{result: paymentgateway.CaptureResult{Confirmed: true}}

			svc := CreateOrderService(orderRepo, cartRepo, userRepo, map[string]paymentgateway.Processor{
				domain.PaymentMethodCard: processor,
			}, nil, checkoutConfig())

			_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
				UserID:          7,
				PaymentMethod:   tc.PaymentMethod,
				ShippingAddress: tc.Address,
			})

			assert.ErrorIs(t, err, tc.ExpectedErr)
			assert.Nil(t, processor.captured)
			assert.Empty(t, orderRepo.orders)
		})
	}
}

func TestCheckoutDeclinedCaptureWritesNothing(t *testing.T) {
	cartRepo := &fakeCartRepository{items: checkoutCart()}
	orderRepo := &fakeOrderRepository{stock: map[int64]int64{10: 5}}
	userRepo := &fakeUserRepository{user: domain.User{ID: 7, Email: "ada@example.com"}}
	processor := &fakeProcessor{result: paymentgateway.CaptureResult{
		Confirmed:     false,
		FailureReason: errs.ErrPaymentDeclined,
	}}

	svc := CreateOrderService(orderRepo, cartRepo, userRepo, map[string]paymentgateway.Processor{
		domain.PaymentMethodCard: processor,
	}, nil, checkoutConfig())

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		UserID:          7,
		PaymentMethod:   domain.PaymentMethodCard,
		ShippingAddress: validShippingAddress(),
	})

	assert.ErrorIs(t, err, errs.ErrPaymentDeclined)
	assert.Empty(t, orderRepo.orders)
	assert.Equal(t, int64(5), orderRepo.stock[10])
	assert.Equal(t, int64(0), orderRepo.clearedUser)
}

func TestCheckoutUnconfirmedWithoutReasonDefaultsToDeclined(t *testing.T) {
	cartRepo := &fakeCartRepository{items: checkoutCart()}
	orderRepo := &fakeOrderRepository{stock: map[int64]int64{10: 5}}
	userRepo := &fakeUserRepository{user: domain.User{ID: 7}}
	processor := &fakeProcessor{result: paymentgateway.CaptureResult{Confirmed: false}}

	svc := CreateOrderService(orderRepo, cartRepo, userRepo, map[string]paymentgateway.Processor{
		domain.PaymentMethodCard: processor,
	}, nil, checkoutConfig())

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		UserID:          7,
		PaymentMethod:   domain.PaymentMethodCard,
		ShippingAddress: validShippingAddress(),
	})

	assert.ErrorIs(t, err, errs.ErrPaymentDeclined)
}

func TestCheckoutGatewayErrorWritesNothing(t *testing.T) {
	cartRepo := &fakeCartRepository{items: checkoutCart()}
	orderRepo := &fakeOrderRepository{stock: map[int64]int64{10: 5}}
	userRepo := &fakeUserRepository{user: domain.User{ID: 7}}
	processor := &fakeProcessor{err: errs.ErrPaymentGateway}

	svc := CreateOrderService(orderRepo, cartRepo, userRepo, map[string]paymentgateway.Processor{
		domain.PaymentMethodCard: processor,
	}, nil, checkoutConfig())

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		UserID:          7,
		PaymentMethod:   domain.PaymentMethodCard,
		ShippingAddress: validShippingAddress(),
	})

	assert.ErrorIs(t, err, errs.ErrPaymentGateway)
	assert.Empty(t, orderRepo.orders)
}

func TestCheckoutInsufficientStockSurfacesPartialWrite(t *testing.T) {
	cartRepo := &fakeCartRepository{items: checkoutCart()}
	// A second shopper took the last unit by the time the transaction runs.
	orderRepo := &fakeOrderRepository{stock: map[int64]int64{10: 0}}
	userRepo := &fakeUserRepository{user: domain.User{ID: 7, Email: "ada@example.com"}}
	processor := &fakeProcessor{result: paymentgateway.CaptureResult{Confirmed: true}}

	svc := CreateOrderService(orderRepo, cartRepo, userRepo, map[string]paymentgateway.Processor{
		domain.PaymentMethodCard: processor,
	}, nil, checkoutConfig())

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		UserID:          7,
		PaymentMethod:   domain.PaymentMethodCard,
		ShippingAddress: validShippingAddress(),
	})

	// The capture happened, the write rolled back, and the caller is told
	// funds moved without an order.
	assert.ErrorIs(t, err, errs.ErrPartialWrite)
	assert.NotNil(t, processor.captured)
	assert.Empty(t, orderRepo.orders)
	assert.Empty(t, orderRepo.orderItems)
	assert.Equal(t, int64(0), orderRepo.stock[10])
}

func TestGetOrders(t *testing.T) {
	orderRepo := &fakeOrderRepository{
		existingOrders: []domain.Order{
			{
				ID:                3,
				TransactionNumber: "trx-3",
				AmountCents:       1694,
				Status:            domain.OrderStatusCompleted,
				PaymentMethod:     domain.PaymentMethodCard,
				CreatedAt:         1700000000,
			},
		},
		existingItems: map[int64][]domain.OrderItem{
			3: {
				{OrderID: 3, ProductID: 10, ProductName: "Walnut Phone Stand", Quantity: 1, PriceCents: 999},
			},
		},
	}

	svc := CreateOrderService(orderRepo, &fakeCartRepository{}, &fakeUserRepository{}, nil, nil, checkoutConfig())

	response, err := svc.GetOrders(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "trx-3", response[0].TransactionNumber)
	assert.Len(t, response[0].Items, 1)
	assert.Equal(t, "Walnut Phone Stand", response[0].Items[0].ProductName)
}
