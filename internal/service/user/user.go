package user

import (
	"context"
	"fmt"

	"courier-system/internal/entities"
)

const defaultStaffPassword = "pass123"

type User struct {
	repository    Repository
	adminUsername string
	adminPassword string
}

func New(repository Repository, adminUsername, adminPassword string) *User {
	return &User{
		repository:    repository,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Authenticate looks the user up by id and checks the password by literal
// equality. A missing user and a wrong password are indistinguishable to
// the caller.
func (s *User) Authenticate(ctx context.Context, kind entities.UserKind, id, password string) (*entities.User, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if found.Kind != kind || !found.ValidateLogin(password) {
		return nil, ErrInvalidCredentials
	}
	return found, nil
}

// ValidateAdminLogin checks the configured administrator credentials.
func (s *User) ValidateAdminLogin(username, password string) bool {
	return username == s.adminUsername && password == s.adminPassword
}

func (s *User) RegisterCustomer(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil ||
		userModify.Name == nil ||
		userModify.Email == nil ||
		userModify.Password == nil ||
		userModify.Phone == nil ||
		userModify.Address == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidCustomerID(*userModify.ID) {
		return nil, ErrInvalidCustomerID
	}
	if !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(*userModify.Password) {
		return nil, ErrInvalidPassword
	}
	if !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if !isValidAddress(*userModify.Address) {
		return nil, ErrInvalidAddress
	}

	customer := entities.User{
		ID:       *userModify.ID,
		Kind:     entities.UserKindCustomer,
		Name:     *userModify.Name,
		Email:    *userModify.Email,
		Password: *userModify.Password,
		Phone:    formatPhone(*userModify.Phone),
		Address:  *userModify.Address,
	}

	created, err := s.repository.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	return created, nil
}

func (s *User) AddStaff(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil ||
		userModify.Name == nil ||
		userModify.Role == nil ||
		userModify.Salary == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidStaffID(*userModify.ID) {
		return nil, ErrInvalidStaffID
	}
	if !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if *userModify.Salary <= 0 {
		return nil, ErrInvalidSalary
	}

	staff := entities.User{
		ID:        *userModify.ID,
		Kind:      entities.UserKindStaff,
		Name:      *userModify.Name,
		Password:  defaultStaffPassword,
		Role:      *userModify.Role,
		Salary:    *userModify.Salary,
		Available: true,
	}
	if userModify.Email != nil {
		staff.Email = *userModify.Email
	}
	if userModify.Phone != nil {
		staff.Phone = *userModify.Phone
	}
	if userModify.Password != nil {
		staff.Password = *userModify.Password
	}

	created, err := s.repository.Create(ctx, staff)
	if err != nil {
		return nil, fmt.Errorf("add staff: %w", err)
	}
	return created, nil
}

func (s *User) GetUser(ctx context.Context, id string) (*entities.User, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return found, nil
}

func (s *User) GetCustomer(ctx context.Context, id string) (*entities.User, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if !found.IsCustomer() {
		return nil, ErrNotCustomer
	}
	return found, nil
}

func (s *User) GetCustomers(ctx context.Context) ([]entities.User, error) {
	customers, err := s.repository.GetCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}
	return customers, nil
}

// GetStaff lists staff members; the reserved administrator account is
// never included.
func (s *User) GetStaff(ctx context.Context) ([]entities.User, error) {
	staff, err := s.repository.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return staff, nil
}

func (s *User) ToggleAvailability(ctx context.Context, staffID string) (*entities.User, error) {
	found, err := s.repository.GetByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("toggle availability: %w", err)
	}
	if !found.IsStaff() {
		return nil, ErrNotStaff
	}

	available := !found.Available
	updated, err := s.repository.Update(ctx, entities.UserModify{
		ID:        &staffID,
		Available: &available,
	})
	if err != nil {
		return nil, fmt.Errorf("toggle availability: %w", err)
	}
	return updated, nil
}

// AddLoyaltyPoints increments the customer's balance; points only ever grow.
func (s *User) AddLoyaltyPoints(ctx context.Context, customerID string, points int) (*entities.User, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}

	found, err := s.repository.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("add loyalty points: %w", err)
	}
	if !found.IsCustomer() {
		return nil, ErrNotCustomer
	}

	total := found.LoyaltyPoints + points
	updated, err := s.repository.Update(ctx, entities.UserModify{
		ID:            &customerID,
		LoyaltyPoints: &total,
	})
	if err != nil {
		return nil, fmt.Errorf("add loyalty points: %w", err)
	}
	return updated, nil
}
