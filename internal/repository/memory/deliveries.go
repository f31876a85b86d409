package memory

import (
	"context"
	"fmt"
	"sync"

	"courier-system/internal/entities"
	deliveryservice "courier-system/internal/service/delivery"
)

const deliveryIDPrefix = "D"

type Deliveries struct {
	mu         sync.RWMutex
	deliveries []entities.Delivery
}

func NewDeliveries() *Deliveries {
	return &Deliveries{}
}

func (r *Deliveries) NextID(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.deliveries))
	for i := range r.deliveries {
		ids = append(ids, r.deliveries[i].ID)
	}
	return nextSequentialID(deliveryIDPrefix, ids), nil
}

func (r *Deliveries) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.deliveries {
		if r.deliveries[i].ID == deliveryEntity.ID {
			return nil, fmt.Errorf("delivery already exists: %s", deliveryEntity.ID)
		}
	}

	r.deliveries = append(r.deliveries, deliveryEntity)
	created := deliveryEntity
	return &created, nil
}

func (r *Deliveries) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.deliveries {
		if r.deliveries[i].ID == id {
			found := r.deliveries[i]
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", deliveryservice.ErrDeliveryNotFound, id)
}

func (r *Deliveries) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deliveries := make([]entities.Delivery, len(r.deliveries))
	copy(deliveries, r.deliveries)
	return deliveries, nil
}

func (r *Deliveries) GetByStaff(ctx context.Context, staffID string) ([]entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deliveries := make([]entities.Delivery, 0)
	for i := range r.deliveries {
		if r.deliveries[i].StaffID == staffID {
			deliveries = append(deliveries, r.deliveries[i])
		}
	}
	return deliveries, nil
}

func (r *Deliveries) GetByParcel(ctx context.Context, parcelID string) ([]entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deliveries := make([]entities.Delivery, 0)
	for i := range r.deliveries {
		if r.deliveries[i].ParcelID == parcelID {
			deliveries = append(deliveries, r.deliveries[i])
		}
	}
	return deliveries, nil
}

func (r *Deliveries) Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	if deliveryModifyEntity.ID == nil {
		return nil, deliveryservice.ErrMissingRequiredFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.deliveries {
		if r.deliveries[i].ID != *deliveryModifyEntity.ID {
			continue
		}
		applyDeliveryModify(&r.deliveries[i], deliveryModifyEntity)
		updated := r.deliveries[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", deliveryservice.ErrDeliveryNotFound, *deliveryModifyEntity.ID)
}

func applyDeliveryModify(deliveryEntity *entities.Delivery, modify entities.DeliveryModify) {
	if modify.StaffID != nil {
		deliveryEntity.StaffID = *modify.StaffID
	}
	if modify.VehicleID != nil {
		deliveryEntity.VehicleID = *modify.VehicleID
	}
	if modify.Status != nil {
		deliveryEntity.Status = *modify.Status
	}
	if modify.Route != nil {
		deliveryEntity.Route = *modify.Route
	}
}
