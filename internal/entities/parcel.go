package entities

import "time"

type Parcel struct {
	ID          string
	Kind        ParcelKind
	Description string
	Weight      float64
	Dimensions  string
	Status      ParcelStatusType
	CreatedAt   time.Time
	SenderID    string
	ReceiverID  string

	// Price is computed once by the factory and never recomputed.
	Price float64

	// express fields
	UrgentFee float64

	// international fields
	CustomsFee         float64
	DestinationCountry string
}

type ParcelKind string

const (
	StandardParcel      ParcelKind = "Standard"
	ExpressParcel       ParcelKind = "Express"
	InternationalParcel ParcelKind = "International"
)

func (k ParcelKind) String() string {
	return string(k)
}

type ParcelStatusType string

// Parcel statuses are a vocabulary, not an enforced transition table:
// any status string may follow any other.
const (
	ParcelCreated        ParcelStatusType = "Created"
	ParcelPaidProcessing ParcelStatusType = "Paid - Processing"
	ParcelProcessing     ParcelStatusType = "Processing"
	ParcelInTransit      ParcelStatusType = "In Transit"
	ParcelOutForDelivery ParcelStatusType = "Out for Delivery"
	ParcelDelivered      ParcelStatusType = "Delivered"
	ParcelReturned       ParcelStatusType = "Returned"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

// ParcelModify deliberately carries the status only: every other parcel
// attribute is fixed at construction.
type ParcelModify struct {
	ID     *string
	Status *ParcelStatusType
}

// ParcelCreation is the result of sending a parcel. KindFallback is set
// when the requested kind was unrecognized and standard pricing was applied.
type ParcelCreation struct {
	Parcel       *Parcel
	KindFallback bool
}
