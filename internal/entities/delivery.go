package entities

import "time"

const DefaultRoute = "To be assigned"

type Delivery struct {
	ID            string
	ParcelID      string
	StaffID       string // empty when unassigned
	VehicleID     string // empty when no vehicle
	Status        DeliveryStatusType
	Route         string
	CreatedAt     time.Time
	EstimatedTime time.Time
}

type DeliveryStatusType string

// Tracked independently from the parcel status; the two are synced only
// by specific operations, never by a blanket rule.
const (
	DeliveryScheduled      DeliveryStatusType = "Scheduled"
	DeliveryAssigned       DeliveryStatusType = "Assigned"
	DeliveryLoading        DeliveryStatusType = "Loading"
	DeliveryProcessing     DeliveryStatusType = "Processing"
	DeliveryInTransit      DeliveryStatusType = "In Transit"
	DeliveryOutForDelivery DeliveryStatusType = "Out for Delivery"
	DeliveryDelivered      DeliveryStatusType = "Delivered"
	DeliveryReturned       DeliveryStatusType = "Returned"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// DeliveryModify updates only the non-nil fields. StaffID and VehicleID
// pointing at an empty string clear the assignment.
type DeliveryModify struct {
	ID        *string
	StaffID   *string
	VehicleID *string
	Status    *DeliveryStatusType
	Route     *string
}

type StaffStatistics struct {
	StaffID   string
	Total     int
	Completed int
}

// SuccessRate is the completed share in percent, 0 when nothing assigned.
func (s StaffStatistics) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}
