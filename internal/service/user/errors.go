package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidStaffID        = errors.New("invalid staff id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidSalary         = errors.New("invalid salary")
	ErrInvalidPoints         = errors.New("invalid loyalty points")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotCustomer        = errors.New("user is not a customer")
	ErrNotStaff           = errors.New("user is not a staff member")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("user already exists")
)
