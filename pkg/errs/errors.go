package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrNoPermission            = errors.New("Forbidden access")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrExpiredToken            = errors.New("Token has expired")
	ErrNotAnImage              = errors.New("Uploaded file is not an image")

	ErrEmptyCart          = errors.New("Cart is empty")
	ErrIncompleteInput    = errors.New("Required checkout information is missing")
	ErrInsufficientStock  = errors.New("Not enough stock for one or more items")
	ErrPaymentDeclined    = errors.New("Payment was declined by the processor")
	ErrPaymentCancelled   = errors.New("Payment was cancelled")
	ErrPaymentGateway     = errors.New("Payment gateway is unavailable")
	ErrPaymentConfig      = errors.New("Payment processor is not configured")
	ErrAmountMismatch     = errors.New("Captured amount does not match the order total")
	ErrPartialWrite       = errors.New("Payment was captured but the order could not be recorded, contact support")
	ErrUnknownPaymentKind = errors.New("Unknown payment method")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrNoPermission:            ErrStatusNoPermission,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusClient,
	ErrExpiredToken:            ErrStatusUnauthorized,
	ErrNotAnImage:              ErrStatusClient,
	ErrEmptyCart:               ErrStatusClient,
	ErrIncompleteInput:         ErrStatusClient,
	ErrInsufficientStock:       ErrStatusConflict,
	ErrPaymentDeclined:         ErrStatusClient,
	ErrPaymentCancelled:        ErrStatusClient,
	ErrPaymentGateway:          ErrStatusBadGateway,
	ErrPaymentConfig:           ErrStatusInternalServer,
	ErrAmountMismatch:          ErrStatusClient,
	ErrPartialWrite:            ErrStatusInternalServer,
	ErrUnknownPaymentKind:      ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
