package memory

import (
	"context"
	"fmt"
	"sync"

	"courier-system/internal/entities"
	userservice "courier-system/internal/service/user"
)

type Users struct {
	mu    sync.RWMutex
	users []entities.User
}

func NewUsers() *Users {
	return &Users{}
}

func (r *Users) Create(ctx context.Context, userEntity entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == userEntity.ID {
			return nil, fmt.Errorf("%w: %s", userservice.ErrConflict, userEntity.ID)
		}
	}

	r.users = append(r.users, userEntity)
	created := userEntity
	return &created, nil
}

func (r *Users) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			found := r.users[i]
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", userservice.ErrUserNotFound, id)
}

func (r *Users) GetCustomers(ctx context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]entities.User, 0)
	for i := range r.users {
		if r.users[i].IsCustomer() {
			customers = append(customers, r.users[i])
		}
	}
	return customers, nil
}

// GetStaff returns staff accounts in insertion order. The built-in admin
// account is excluded; it never takes delivery assignments.
func (r *Users) GetStaff(ctx context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff := make([]entities.User, 0)
	for i := range r.users {
		if r.users[i].IsStaff() && r.users[i].ID != entities.AdminID {
			staff = append(staff, r.users[i])
		}
	}
	return staff, nil
}

func (r *Users) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	if userModifyEntity.ID == nil {
		return nil, userservice.ErrMissingRequiredFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != *userModifyEntity.ID {
			continue
		}
		applyUserModify(&r.users[i], userModifyEntity)
		updated := r.users[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", userservice.ErrUserNotFound, *userModifyEntity.ID)
}

func applyUserModify(userEntity *entities.User, modify entities.UserModify) {
	if modify.Name != nil {
		userEntity.Name = *modify.Name
	}
	if modify.Email != nil {
		userEntity.Email = *modify.Email
	}
	if modify.Password != nil {
		userEntity.Password = *modify.Password
	}
	if modify.Phone != nil {
		userEntity.Phone = *modify.Phone
	}
	if modify.Address != nil {
		userEntity.Address = *modify.Address
	}
	if modify.LoyaltyPoints != nil {
		userEntity.LoyaltyPoints = *modify.LoyaltyPoints
	}
	if modify.Role != nil {
		userEntity.Role = *modify.Role
	}
	if modify.Salary != nil {
		userEntity.Salary = *modify.Salary
	}
	if modify.Available != nil {
		userEntity.Available = *modify.Available
	}
}
