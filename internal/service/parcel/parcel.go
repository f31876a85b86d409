package parcel

import (
	"context"
	"fmt"

	"courier-system/internal/entities"
)

// Every parcel sent earns its sender a fixed loyalty reward.
const loyaltyPointsPerParcel = 10

type Parcel struct {
	repository Repository
	customers  CustomerService
	factory    Factory
}

func New(repository Repository, customers CustomerService, factory Factory) *Parcel {
	return &Parcel{
		repository: repository,
		customers:  customers,
		factory:    factory,
	}
}

type CreateParcelInput struct {
	Kind        string
	SenderID    string
	ReceiverID  string
	Weight      float64
	Dimensions  string
	Description string
	Extra       string // destination country for international parcels
}

// CreateParcel validates the input, allocates the next sequential id and
// builds the parcel through the factory. The price is fixed here and never
// recomputed. An unrecognized kind falls back to standard and is reported
// through the result, not as an error.
func (s *Parcel) CreateParcel(ctx context.Context, input CreateParcelInput) (*entities.ParcelCreation, error) {
	if !isValidWeight(input.Weight) {
		return nil, ErrInvalidWeight
	}
	if !isValidDimensions(input.Dimensions) {
		return nil, ErrInvalidDimensions
	}

	if _, err := s.customers.GetCustomer(ctx, input.SenderID); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSenderNotFound, input.SenderID)
	}
	if _, err := s.customers.GetCustomer(ctx, input.ReceiverID); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRecipientNotFound, input.ReceiverID)
	}

	id, err := s.repository.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate parcel id: %w", err)
	}

	built, fellBack := s.factory.CreateParcel(
		input.Kind,
		id,
		input.SenderID,
		input.ReceiverID,
		input.Weight,
		input.Dimensions,
		input.Description,
		input.Extra,
	)

	created, err := s.repository.Create(ctx, *built)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	if _, err := s.customers.AddLoyaltyPoints(ctx, input.SenderID, loyaltyPointsPerParcel); err != nil {
		return nil, fmt.Errorf("award loyalty points: %w", err)
	}

	return &entities.ParcelCreation{
		Parcel:       created,
		KindFallback: fellBack,
	}, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id string) (*entities.Parcel, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return found, nil
}

func (s *Parcel) GetParcels(ctx context.Context) ([]entities.Parcel, error) {
	parcels, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get parcels: %w", err)
	}
	return parcels, nil
}

func (s *Parcel) GetParcelsBySender(ctx context.Context, senderID string) ([]entities.Parcel, error) {
	parcels, err := s.repository.GetBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("get parcels by sender: %w", err)
	}
	return parcels, nil
}

// GetUnpaidBySender returns the sender's parcels still awaiting payment.
func (s *Parcel) GetUnpaidBySender(ctx context.Context, senderID string) ([]entities.Parcel, error) {
	parcels, err := s.repository.GetBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("get unpaid parcels: %w", err)
	}

	unpaid := make([]entities.Parcel, 0, len(parcels))
	for _, p := range parcels {
		if p.Status == entities.ParcelCreated {
			unpaid = append(unpaid, p)
		}
	}
	return unpaid, nil
}

// SetStatus overwrites the parcel status without touching any delivery.
// Status propagation is decided per operation by the callers.
func (s *Parcel) SetStatus(ctx context.Context, id string, status entities.ParcelStatusType) (*entities.Parcel, error) {
	updated, err := s.repository.Update(ctx, entities.ParcelModify{
		ID:     &id,
		Status: &status,
	})
	if err != nil {
		return nil, fmt.Errorf("set parcel status: %w", err)
	}
	return updated, nil
}

func (s *Parcel) CountByStatus(ctx context.Context, status entities.ParcelStatusType) (int, error) {
	parcels, err := s.repository.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("count parcels: %w", err)
	}

	count := 0
	for _, p := range parcels {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

// TotalValue sums the prices of every parcel in the system.
func (s *Parcel) TotalValue(ctx context.Context) (float64, error) {
	parcels, err := s.repository.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("total parcel value: %w", err)
	}

	total := 0.0
	for _, p := range parcels {
		total += p.Price
	}
	return total, nil
}
