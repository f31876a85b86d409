package staff_menu

import (
	"context"

	"courier-system/internal/entities"
	"courier-system/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type DeliveryService interface {
	GetDeliveriesByStaff(ctx context.Context, staffID string) ([]entities.Delivery, error)
	CompleteDelivery(ctx context.Context, deliveryID, staffID string) (*entities.Delivery, error)
	UpdateParcelStatus(ctx context.Context, parcelID string, status entities.ParcelStatusType) (*entities.Parcel, error)
	GetVehicles(ctx context.Context) ([]entities.Vehicle, error)
}

type ParcelService interface {
	GetParcels(ctx context.Context) ([]entities.Parcel, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
	ToggleAvailability(ctx context.Context, staffID string) (*entities.User, error)
}
