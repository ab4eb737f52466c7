package paymentgateway

import "context"

// CaptureRequest carries everything a processor needs to move funds. The
// reference doubles as the idempotency key sent to the processor, so a
// duplicated transport-level retry cannot charge twice. Token is the
// processor-specific handle: a tokenized card payment method for the card
// processor, an approved wallet order id for the wallet processor, unused
// for manual transfers.
type CaptureRequest struct {
	Reference   string
	AmountCents int64
	Currency    string
	Token       string
	PayerEmail  string
}

// CaptureResult is the uniform outcome across processors. Confirmed is true
// only when the processor acknowledged the charge. A decline or cancellation
// comes back with Confirmed false and a FailureReason; infrastructure
// failures (network, configuration) are returned as errors instead.
type CaptureResult struct {
	Confirmed     bool
	Reference     string
	Instructions  string
	FailureReason error
}

type Processor interface {
	Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error)
}
