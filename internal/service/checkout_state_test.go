package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutAdvance(t *testing.T) {
	cs := newCheckout()

	assert.NoError(t, cs.advance(statePricingComputed))
	assert.NoError(t, cs.advance(statePaymentPending))
	assert.NoError(t, cs.advance(statePaymentConfirmed))
	assert.NoError(t, cs.advance(stateOrderWritten))

	assert.ErrorIs(t, cs.advance(stateFailed), ErrInvalidStateTransition)
}

func TestCheckoutAdvanceCannotSkip(t *testing.T) {
	cs := newCheckout()

	assert.ErrorIs(t, cs.advance(statePaymentPending), ErrInvalidStateTransition)
	assert.Equal(t, stateIdle, cs.state)
}

func TestCheckoutAdvanceCannotGoBack(t *testing.T) {
	cs := newCheckout()

	assert.NoError(t, cs.advance(statePricingComputed))
	assert.NoError(t, cs.advance(statePaymentPending))
	assert.ErrorIs(t, cs.advance(statePricingComputed), ErrInvalidStateTransition)
}

func TestCheckoutFailIsTerminal(t *testing.T) {
	cs := newCheckout()
	first := errors.New("payment declined")
	second := errors.New("something else")

	assert.NoError(t, cs.advance(statePricingComputed))
	assert.Equal(t, first, cs.fail(first))

	// The original reason sticks.
	assert.Equal(t, first, cs.fail(second))
	assert.ErrorIs(t, cs.advance(statePaymentPending), ErrInvalidStateTransition)
	assert.Equal(t, stateFailed, cs.state)
}

func TestCheckoutStateString(t *testing.T) {
	assert.Equal(t, "idle", stateIdle.String())
	assert.Equal(t, "pricing_computed", statePricingComputed.String())
	assert.Equal(t, "payment_pending", statePaymentPending.String())
	assert.Equal(t, "payment_confirmed", statePaymentConfirmed.String())
	assert.Equal(t, "order_written", stateOrderWritten.String())
	assert.Equal(t, "failed", stateFailed.String())
}
