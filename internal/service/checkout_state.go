package service

import "errors"

var ErrInvalidStateTransition = errors.New("checkout: invalid state transition")

type checkoutState int

const (
	stateIdle checkoutState = iota
	statePricingComputed
	statePaymentPending
	statePaymentConfirmed
	stateOrderWritten
	stateFailed
)

func (s checkoutState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case statePricingComputed:
		return "pricing_computed"
	case statePaymentPending:
		return "payment_pending"
	case statePaymentConfirmed:
		return "payment_confirmed"
	case stateOrderWritten:
		return "order_written"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// checkout tracks one finalization attempt through its lifecycle:
// idle -> pricing_computed -> payment_pending -> payment_confirmed ->
// order_written, with failed reachable from every non-terminal state.
// A failed attempt is terminal; the caller restarts from idle.
type checkout struct {
	state  checkoutState
	reason error
}

func newCheckout() *checkout {
	return &checkout{state: stateIdle}
}

func (c *checkout) advance(next checkoutState) error {
	if c.state == stateFailed || c.state == stateOrderWritten {
		return ErrInvalidStateTransition
	}
	if next != c.state+1 {
		return ErrInvalidStateTransition
	}

	c.state = next
	return nil
}

// fail moves the attempt to the terminal failed state and records why.
// Failing an already terminal attempt keeps the original reason.
func (c *checkout) fail(reason error) error {
	if c.state == stateFailed || c.state == stateOrderWritten {
		return c.reason
	}

	c.state = stateFailed
	c.reason = reason
	return reason
}
