package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCapacity       = errors.New("invalid vehicle capacity")

	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrNoAvailableStaff   = errors.New("no staff available")
	ErrStaffNotAssignable = errors.New("staff cannot take deliveries")
	ErrNotAssignedToStaff = errors.New("delivery not assigned to this staff")
	ErrNotOutForDelivery  = errors.New("delivery is not out for delivery")

	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleConflict    = errors.New("vehicle already exists")
	ErrVehicleNotSuitable = errors.New("vehicle unavailable or capacity too small")
	ErrNoVehicleAssigned  = errors.New("no vehicle assigned")
)
