package admin_menu

import (
	"context"

	"courier-system/internal/entities"
	"courier-system/internal/service/delivery"
	"courier-system/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type ParcelService interface {
	GetParcels(ctx context.Context) ([]entities.Parcel, error)
	CountByStatus(ctx context.Context, status entities.ParcelStatusType) (int, error)
	TotalValue(ctx context.Context) (float64, error)
}

type DeliveryService interface {
	GetDelivery(ctx context.Context, id string) (*entities.Delivery, error)
	GetDeliveries(ctx context.Context) ([]entities.Delivery, error)
	GetVehicle(ctx context.Context, id string) (*entities.Vehicle, error)
	GetVehicles(ctx context.Context) ([]entities.Vehicle, error)
	AddVehicle(ctx context.Context, input delivery.AddVehicleInput) (*entities.Vehicle, error)
	AssignStaff(ctx context.Context, deliveryID, staffID string) (*entities.Delivery, error)
	AssignVehicle(ctx context.Context, deliveryID, vehicleID string) (*entities.Delivery, error)
	ReleaseVehicle(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID string, status entities.DeliveryStatusType) (*entities.Delivery, error)
	StaffStatistics(ctx context.Context) ([]entities.StaffStatistics, error)
}

type UserService interface {
	GetCustomers(ctx context.Context) ([]entities.User, error)
	GetStaff(ctx context.Context) ([]entities.User, error)
	AddStaff(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}

type PaymentService interface {
	Summary(ctx context.Context, recentLimit int) (*entities.PaymentSummary, error)
}
