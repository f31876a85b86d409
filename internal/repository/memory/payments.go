package memory

import (
	"context"
	"fmt"
	"sync"

	"courier-system/internal/entities"
	paymentservice "courier-system/internal/service/payment"
)

type Payments struct {
	mu       sync.RWMutex
	payments []entities.Payment
}

func NewPayments() *Payments {
	return &Payments{}
}

func (r *Payments) Create(ctx context.Context, paymentEntity entities.Payment) (*entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.payments {
		if r.payments[i].ID == paymentEntity.ID {
			return nil, fmt.Errorf("%w: %s", paymentservice.ErrConflict, paymentEntity.ID)
		}
	}

	r.payments = append(r.payments, paymentEntity)
	created := paymentEntity
	return &created, nil
}

func (r *Payments) GetByID(ctx context.Context, id string) (*entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.payments {
		if r.payments[i].ID == id {
			found := r.payments[i]
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", paymentservice.ErrPaymentNotFound, id)
}

func (r *Payments) GetAll(ctx context.Context) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]entities.Payment, len(r.payments))
	copy(payments, r.payments)
	return payments, nil
}

func (r *Payments) Update(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error) {
	if paymentModifyEntity.ID == nil {
		return nil, paymentservice.ErrMissingRequiredFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.payments {
		if r.payments[i].ID != *paymentModifyEntity.ID {
			continue
		}
		if paymentModifyEntity.Status != nil {
			r.payments[i].Status = *paymentModifyEntity.Status
		}
		updated := r.payments[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", paymentservice.ErrPaymentNotFound, *paymentModifyEntity.ID)
}
