package memory

import (
	"context"
	"fmt"
	"sync"

	"courier-system/internal/entities"
	deliveryservice "courier-system/internal/service/delivery"
)

type Vehicles struct {
	mu       sync.RWMutex
	vehicles []entities.Vehicle
}

func NewVehicles() *Vehicles {
	return &Vehicles{}
}

func (r *Vehicles) Create(ctx context.Context, vehicleEntity entities.Vehicle) (*entities.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == vehicleEntity.ID {
			return nil, fmt.Errorf("%w: %s", deliveryservice.ErrVehicleConflict, vehicleEntity.ID)
		}
	}

	r.vehicles = append(r.vehicles, vehicleEntity)
	created := vehicleEntity
	return &created, nil
}

func (r *Vehicles) GetByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			found := r.vehicles[i]
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", deliveryservice.ErrVehicleNotFound, id)
}

func (r *Vehicles) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicles := make([]entities.Vehicle, len(r.vehicles))
	copy(vehicles, r.vehicles)
	return vehicles, nil
}

func (r *Vehicles) Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicleModifyEntity.ID == nil {
		return nil, deliveryservice.ErrMissingRequiredFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vehicles {
		if r.vehicles[i].ID != *vehicleModifyEntity.ID {
			continue
		}
		if vehicleModifyEntity.Available != nil {
			r.vehicles[i].Available = *vehicleModifyEntity.Available
		}
		if vehicleModifyEntity.CurrentDeliveryID != nil {
			r.vehicles[i].CurrentDeliveryID = *vehicleModifyEntity.CurrentDeliveryID
		}
		updated := r.vehicles[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: %s", deliveryservice.ErrVehicleNotFound, *vehicleModifyEntity.ID)
}
