//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"courier-system/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, paymentEntity entities.Payment) (*entities.Payment, error)
	GetByID(ctx context.Context, id string) (*entities.Payment, error)
	GetAll(ctx context.Context) ([]entities.Payment, error)
	Update(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error)
}

type DeliveryRepository interface {
	GetByParcel(ctx context.Context, parcelID string) ([]entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
}

type ParcelService interface {
	GetParcel(ctx context.Context, id string) (*entities.Parcel, error)
	SetStatus(ctx context.Context, id string, status entities.ParcelStatusType) (*entities.Parcel, error)
}

type CustomerService interface {
	AddLoyaltyPoints(ctx context.Context, customerID string, points int) (*entities.User, error)
}

type IDGenerator interface {
	NewPaymentID() string
}
