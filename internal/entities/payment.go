package entities

import "time"

type Payment struct {
	ID        string
	ParcelID  string
	Amount    float64
	Method    PaymentMethodType
	Status    PaymentStatusType
	CreatedAt time.Time
}

type PaymentMethodType string

const (
	PaymentCreditCard    PaymentMethodType = "Credit Card"
	PaymentOnlineBanking PaymentMethodType = "Online Banking"
	PaymentCashOnDeliver PaymentMethodType = "Cash on Delivery"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "Pending"
	PaymentCompleted PaymentStatusType = "Completed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type PaymentModify struct {
	ID     *string
	Status *PaymentStatusType
}

type PaymentSummary struct {
	TotalRevenue   float64 // completed payments only
	PendingAmount  float64
	CompletedCount int
	PendingCount   int
	Recent         []Payment // newest first, capped by the service
}
