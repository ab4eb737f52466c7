package paymentgateway

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// TransferProcessor handles manual bank transfers (Interac e-Transfer). It
// never talks to an external processor: it synthesizes a reference code and
// human-readable payment instructions and reports the capture as confirmed
// right away. Receipt of funds is not verified here; callers record such
// orders as pending payment.
type TransferProcessor struct {
	transferEmail string
	now           func() time.Time
}

func CreateTransferProcessor(transferEmail string) *TransferProcessor {
	return &TransferProcessor{
		transferEmail: transferEmail,
		now:           time.Now,
	}
}

func (p *TransferProcessor) Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error) {
	reference := fmt.Sprintf("ORD-%d", p.now().UnixMilli())

	instructions := fmt.Sprintf(
		"Interac e-Transfer Payment Instructions:\n\n"+
			"Send: $%s %s\n"+
			"To: %s\n"+
			"Reference: %s\n"+
			"Security Question: What is your order number?\n"+
			"Answer: %s\n\n"+
			"Your order will be processed within 24 hours of payment receipt.\n"+
			"You will receive a confirmation email once payment is verified.",
		FormatAmount(req.AmountCents), strings.ToUpper(req.Currency),
		p.transferEmail, reference, reference,
	)

	return CaptureResult{
		Confirmed:    true,
		Reference:    reference,
		Instructions: instructions,
	}, nil
}
