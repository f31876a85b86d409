//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"courier-system/internal/entities"
)

type Repository interface {
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	GetAll(ctx context.Context) ([]entities.Delivery, error)
	GetByStaff(ctx context.Context, staffID string) ([]entities.Delivery, error)
	GetByParcel(ctx context.Context, parcelID string) ([]entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicleEntity entities.Vehicle) (*entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (*entities.Vehicle, error)
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetStaff(ctx context.Context) ([]entities.User, error)
}

type ParcelService interface {
	GetParcel(ctx context.Context, id string) (*entities.Parcel, error)
	SetStatus(ctx context.Context, id string, status entities.ParcelStatusType) (*entities.Parcel, error)
}

type EstimateFactory interface {
	EstimatedDelivery(createdAt time.Time) time.Time
}
