package paymentgateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/ImperialKoi/Candit/config"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/plutov/paypal/v4"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// PayPalProcessor captures an order the buyer already approved in the hosted
// wallet widget. The token in the capture request is the approved PayPal
// order id. The order amount is re-read from PayPal and compared against the
// computed total before capturing, so a widget fed a stale price can never
// settle for the wrong amount.
type PayPalProcessor struct {
	pc *paypal.Client
	cb *gobreaker.CircuitBreaker[CaptureResult]
}

func CreatePayPalProcessor(config *config.Config, cb *gobreaker.CircuitBreaker[CaptureResult]) (*PayPalProcessor, error) {
	if config.PayPalConfig.ClientID == "" || config.PayPalConfig.Secret == "" {
		return nil, errs.ErrPaymentConfig
	}

	apiBase := config.PayPalConfig.APIBase
	if apiBase == "" {
		apiBase = paypal.APIBaseSandBox
	}

	pc, err := paypal.NewClient(config.PayPalConfig.ClientID, config.PayPalConfig.Secret, apiBase)
	if err != nil {
		return nil, err
	}

	return &PayPalProcessor{pc: pc, cb: cb}, nil
}

func (p *PayPalProcessor) Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error) {
	return p.cb.Execute(func() (CaptureResult, error) {
		order, err := p.pc.GetOrder(ctx, req.Token)
		if err != nil {
			log.Error().Err(err).Str("component", "Capture").Msg("")
			return CaptureResult{}, errs.ErrPaymentGateway
		}

		if order.Status != paypal.OrderStatusApproved {
			log.Info().Str("component", "Capture").Str("status", order.Status).Msg("wallet order not approved")
			return CaptureResult{Reference: req.Reference, FailureReason: errs.ErrPaymentCancelled}, nil
		}

		if !orderAmountMatches(order, req.AmountCents, req.Currency) {
			return CaptureResult{Reference: req.Reference, FailureReason: errs.ErrAmountMismatch}, nil
		}

		capture, err := p.pc.CaptureOrderWithPaypalRequestId(ctx, req.Token, paypal.CaptureOrderRequest{}, req.Reference, nil)
		if err != nil {
			log.Error().Err(err).Str("component", "Capture").Msg("")
			return CaptureResult{}, errs.ErrPaymentGateway
		}

		if capture.Status != paypal.OrderStatusCompleted {
			return CaptureResult{Reference: req.Reference, FailureReason: errs.ErrPaymentDeclined}, nil
		}

		return CaptureResult{Confirmed: true, Reference: capture.ID}, nil
	})
}

func orderAmountMatches(order *paypal.Order, amountCents int64, currency string) bool {
	if len(order.PurchaseUnits) == 0 || order.PurchaseUnits[0].Amount == nil {
		return false
	}

	amount := order.PurchaseUnits[0].Amount
	return amount.Value == FormatAmount(amountCents) &&
		strings.EqualFold(amount.Currency, currency)
}

// FormatAmount renders integer cents as the decimal string wallet APIs
// expect, e.g. 1694 -> "16.94".
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
