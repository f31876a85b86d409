package login_menu

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

type UserService interface {
	Authenticate(ctx context.Context, kind entities.UserKind, id, password string) (*entities.User, error)
	ValidateAdminLogin(username, password string) bool
	RegisterCustomer(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	GetCustomers(ctx context.Context) ([]entities.User, error)
}

type UserDashboard interface {
	Run(ctx context.Context, userEntity *entities.User) error
}

type AdminDashboard interface {
	Run(ctx context.Context) error
}
