package paymentgateway

import (
	"context"
	"errors"

	"github.com/ImperialKoi/Candit/config"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// StripeProcessor charges tokenized cards by creating and confirming a
// PaymentIntent in a single server-side call.
type StripeProcessor struct {
	sc        *client.API
	secretKey string
	cb        *gobreaker.CircuitBreaker[CaptureResult]
}

func CreateStripeProcessor(config *config.Config, cb *gobreaker.CircuitBreaker[CaptureResult]) *StripeProcessor {
	sc := &client.API{}
	sc.Init(config.StripeConfig.SecretKey, nil)

	return &StripeProcessor{
		sc:        sc,
		secretKey: config.StripeConfig.SecretKey,
		cb:        cb,
	}
}

func (p *StripeProcessor) Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error) {
	if p.secretKey == "" {
		return CaptureResult{}, errs.ErrPaymentConfig
	}

	return p.cb.Execute(func() (CaptureResult, error) {
		params := &stripe.PaymentIntentParams{
			Amount:        stripe.Int64(req.AmountCents),
			Currency:      stripe.String(req.Currency),
			PaymentMethod: stripe.String(req.Token),
			Confirm:       stripe.Bool(true),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled:        stripe.Bool(true),
				AllowRedirects: stripe.String("never"),
			},
		}
		params.Context = ctx
		params.SetIdempotencyKey(req.Reference)

		pi, err := p.sc.PaymentIntents.New(params)
		if err != nil {
			var stripeErr *stripe.Error
			if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
				log.Info().Str("component", "Capture").Str("reference", req.Reference).Msg("card declined")
				return CaptureResult{Reference: req.Reference, FailureReason: errs.ErrPaymentDeclined}, nil
			}
			log.Error().Err(err).Str("component", "Capture").Msg("")
			return CaptureResult{}, errs.ErrPaymentGateway
		}

		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			return CaptureResult{Reference: req.Reference, FailureReason: errs.ErrPaymentDeclined}, nil
		}

		return CaptureResult{Confirmed: true, Reference: pi.ID}, nil
	})
}
