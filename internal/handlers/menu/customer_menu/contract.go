package customer_menu

import (
	"context"

	"courier-system/internal/entities"
	"courier-system/internal/service/delivery"
	"courier-system/internal/service/parcel"
	"courier-system/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type ParcelService interface {
	CreateParcel(ctx context.Context, input parcel.CreateParcelInput) (*entities.ParcelCreation, error)
	GetParcel(ctx context.Context, id string) (*entities.Parcel, error)
	GetParcelsBySender(ctx context.Context, senderID string) ([]entities.Parcel, error)
	GetUnpaidBySender(ctx context.Context, senderID string) ([]entities.Parcel, error)
}

type DeliveryService interface {
	ScheduleDelivery(ctx context.Context, parcelID string) (*delivery.ScheduleResult, error)
	GetDeliveriesForParcel(ctx context.Context, parcelID string) ([]entities.Delivery, error)
}

type PaymentService interface {
	PayForParcel(ctx context.Context, customerID, parcelID string, method entities.PaymentMethodType) (*entities.Payment, int, error)
}

type UserService interface {
	GetCustomer(ctx context.Context, id string) (*entities.User, error)
}
