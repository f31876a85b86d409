package entities

type Vehicle struct {
	ID                string
	Type              string // Van, Motorcycle, Truck
	Plate             string
	Capacity          float64 // kg
	Available         bool
	CurrentDeliveryID string // empty when idle
}

// CanCarry reports whether the vehicle is free and the weight fits.
func (v *Vehicle) CanCarry(weight float64) bool {
	return v.Available && weight <= v.Capacity
}

// VehicleModify updates only the non-nil fields. CurrentDeliveryID
// pointing at an empty string clears the assignment.
type VehicleModify struct {
	ID                *string
	Available         *bool
	CurrentDeliveryID *string
}
