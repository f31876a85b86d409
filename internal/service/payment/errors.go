package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrNotParcelSender       = errors.New("parcel does not belong to customer")
	ErrParcelAlreadyPaid     = errors.New("parcel is already paid")
	ErrConflict              = errors.New("payment already exists")
)
