//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"courier-system/internal/entities"
)

type Repository interface {
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error)
	GetByID(ctx context.Context, id string) (*entities.Parcel, error)
	GetAll(ctx context.Context) ([]entities.Parcel, error)
	GetBySender(ctx context.Context, senderID string) ([]entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
}

type CustomerService interface {
	GetCustomer(ctx context.Context, id string) (*entities.User, error)
	AddLoyaltyPoints(ctx context.Context, customerID string, points int) (*entities.User, error)
}

type Factory interface {
	CreateParcel(kind, id, senderID, receiverID string, weight float64, dimensions, description, extra string) (*entities.Parcel, bool)
}
