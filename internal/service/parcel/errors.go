package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidDimensions     = errors.New("invalid dimensions")
	ErrSenderNotFound        = errors.New("sender not found")
	ErrRecipientNotFound     = errors.New("recipient not found")

	ErrParcelNotFound = errors.New("parcel not found")
	ErrConflict       = errors.New("parcel already exists")
)
