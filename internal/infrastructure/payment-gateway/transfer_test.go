package paymentgateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "16.94", FormatAmount(1694))
	assert.Equal(t, "0.05", FormatAmount(5))
	assert.Equal(t, "20.00", FormatAmount(2000))
}

func TestTransferCapture(t *testing.T) {
	p := CreateTransferProcessor("payments@candit.com")
	p.now = func() time.Time { return time.UnixMilli(1700000000000) }

	result, err := p.Capture(context.Background(), CaptureRequest{
		Reference:   "trx-1",
		AmountCents: 2260,
		Currency:    "cad",
	})

	require.NoError(t, err)
	assert.True(t, result.Confirmed)
	assert.Equal(t, "ORD-1700000000000", result.Reference)
	assert.Contains(t, result.Instructions, "Send: $22.60 CAD")
	assert.Contains(t, result.Instructions, "payments@candit.com")
	assert.Contains(t, result.Instructions, "Reference: ORD-1700000000000")
}
