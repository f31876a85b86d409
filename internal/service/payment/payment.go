package payment

import (
	"context"
	"fmt"
	"time"

	"courier-system/internal/entities"
)

const minLoyaltyPoints = 5

type Payment struct {
	repository         Repository
	deliveryRepository DeliveryRepository
	parcelService      ParcelService
	customerService    CustomerService
	idGenerator        IDGenerator
}

func New(
	repository Repository,
	deliveryRepository DeliveryRepository,
	parcelService ParcelService,
	customerService CustomerService,
	idGenerator IDGenerator,
) *Payment {
	return &Payment{
		repository:         repository,
		deliveryRepository: deliveryRepository,
		parcelService:      parcelService,
		customerService:    customerService,
		idGenerator:        idGenerator,
	}
}

func (s *Payment) CreatePayment(
	ctx context.Context,
	parcelID string,
	amount float64,
	method entities.PaymentMethodType,
) (*entities.Payment, error) {
	if parcelID == "" {
		return nil, ErrMissingRequiredFields
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidAmount, amount)
	}

	created, err := s.repository.Create(ctx, entities.Payment{
		ID:        s.idGenerator.NewPaymentID(),
		ParcelID:  parcelID,
		Amount:    amount,
		Method:    method,
		Status:    entities.PaymentPending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (s *Payment) ProcessPayment(ctx context.Context, paymentID string) (*entities.Payment, error) {
	if _, err := s.repository.GetByID(ctx, paymentID); err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	status := entities.PaymentCompleted
	updated, err := s.repository.Update(ctx, entities.PaymentModify{
		ID:     &paymentID,
		Status: &status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return updated, nil
}

// PayForParcel charges the parcel's price, marks the parcel paid, moves its
// first delivery to Processing and credits loyalty points to the customer.
// Returns the completed payment and the points awarded.
func (s *Payment) PayForParcel(
	ctx context.Context,
	customerID string,
	parcelID string,
	method entities.PaymentMethodType,
) (*entities.Payment, int, error) {
	parcelEntity, err := s.parcelService.GetParcel(ctx, parcelID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get parcel: %w", err)
	}
	if parcelEntity.SenderID != customerID {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotParcelSender, parcelID)
	}
	if parcelEntity.Status != entities.ParcelCreated {
		return nil, 0, fmt.Errorf("%w: %s", ErrParcelAlreadyPaid, parcelID)
	}

	// Price already folds the urgent and customs fees in.
	amount := parcelEntity.Price

	created, err := s.CreatePayment(ctx, parcelID, amount, method)
	if err != nil {
		return nil, 0, err
	}

	completed, err := s.ProcessPayment(ctx, created.ID)
	if err != nil {
		return nil, 0, err
	}

	if _, err = s.parcelService.SetStatus(ctx, parcelID, entities.ParcelPaidProcessing); err != nil {
		return nil, 0, fmt.Errorf("failed to update parcel status: %w", err)
	}

	deliveries, err := s.deliveryRepository.GetByParcel(ctx, parcelID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get deliveries: %w", err)
	}
	if len(deliveries) > 0 {
		status := entities.DeliveryProcessing
		if _, err = s.deliveryRepository.Update(ctx, entities.DeliveryModify{
			ID:     &deliveries[0].ID,
			Status: &status,
		}); err != nil {
			return nil, 0, fmt.Errorf("failed to update delivery status: %w", err)
		}
	}

	points := loyaltyPoints(amount)
	if _, err = s.customerService.AddLoyaltyPoints(ctx, customerID, points); err != nil {
		return nil, 0, fmt.Errorf("failed to add loyalty points: %w", err)
	}

	return completed, points, nil
}

func (s *Payment) GetPayment(ctx context.Context, id string) (*entities.Payment, error) {
	paymentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return paymentEntity, nil
}

func (s *Payment) GetPayments(ctx context.Context) ([]entities.Payment, error) {
	payments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	return payments, nil
}

// Summary aggregates revenue totals and the most recent payments, newest
// first, capped at recentLimit.
func (s *Payment) Summary(ctx context.Context, recentLimit int) (*entities.PaymentSummary, error) {
	payments, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	summary := &entities.PaymentSummary{}
	for _, paymentEntity := range payments {
		switch paymentEntity.Status {
		case entities.PaymentCompleted:
			summary.TotalRevenue += paymentEntity.Amount
			summary.CompletedCount++
		case entities.PaymentPending:
			summary.PendingAmount += paymentEntity.Amount
			summary.PendingCount++
		}
	}

	for i := len(payments) - 1; i >= 0 && len(summary.Recent) < recentLimit; i-- {
		summary.Recent = append(summary.Recent, payments[i])
	}

	return summary, nil
}

// One point per ten currency units spent, never less than five.
func loyaltyPoints(amount float64) int {
	points := int(amount / 10)
	if points < minLoyaltyPoints {
		return minLoyaltyPoints
	}
	return points
}
