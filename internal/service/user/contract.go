//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"courier-system/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userEntity entities.User) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetCustomers(ctx context.Context) ([]entities.User, error)
	GetStaff(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
}
