package memory

import (
	"context"
	"fmt"
	"sync"

	"courier-system/internal/entities"
	parcelservice "courier-system/internal/service/parcel"
)

const parcelIDPrefix = "P"

type Parcels struct {
	mu      sync.RWMutex
	parcels []entities.Parcel
}

func NewParcels() *Parcels {
	return &Parcels{}
}

func (r *Parcels) NextID(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.parcels))
	for i := range r.parcels {
		ids = append(ids, r.parcels[i].ID)
	}
	return nextSequentialID(parcelIDPrefix, ids), nil
}

func (r *Parcels) Create(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.parcels {
		if r.parcels[i].ID == parcelEntity.ID {
			return nil, fmt.Errorf("%w: %s", parcelservice.ErrConflict, parcelEntity.ID)
		}
	}

	r.parcels = append(r.parcels, parcelEntity)
	created := parcelEntity
	return &created, nil
}

func (r *Parcels) GetByID(ctx context.Context, id string) (*entities.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.parcels {
		if r.parcels[i].ID == id {
			found := r.parcels[i]
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", parcelservice.ErrParcelNotFound, id)
}

func (r *Parcels) GetAll(ctx context.Context) ([]entities.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parcels := make([]entities.Parcel, len(r.parcels))
	copy(parcels, r.parcels)
	return parcels, nil
}

func (r *Parcels) GetBySender(ctx context.Context, senderID string) ([]entities.Parcel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parcels := make([]entities.Parcel, 0)
	for i := range r.parcels {
		if r.parcels[i].SenderID == senderID {
			parcels = append(parcels, r.parcels[i])
		}
	}
	return parcels, nil
}

func (r *Parcels) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModifyEntity.ID == nil {
		return nil, parcelservice.ErrMissingRequiredFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.parcels {
		if r.parcels[i].ID != *parcelModifyEntity.ID {
			continue
		}
		if parcelModifyEntity.Status != nil {
			r.parcels[i].Status = *parcelModifyEntity.Status
		}
		updated := r.parcels[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", parcelservice.ErrParcelNotFound, *parcelModifyEntity.ID)
}
