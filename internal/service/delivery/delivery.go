package delivery

import (
	"context"
	"fmt"
	"time"

	"courier-system/internal/entities"
)

type Delivery struct {
	repository        Repository
	vehicleRepository VehicleRepository
	userService       UserService
	parcelService     ParcelService
	estimateFactory   EstimateFactory
}

func New(
	repository Repository,
	vehicleRepository VehicleRepository,
	userService UserService,
	parcelService ParcelService,
	estimateFactory EstimateFactory,
) *Delivery {
	return &Delivery{
		repository:        repository,
		vehicleRepository: vehicleRepository,
		userService:       userService,
		parcelService:     parcelService,
		estimateFactory:   estimateFactory,
	}
}

// ScheduleResult reports what ScheduleDelivery managed to allocate. A
// delivery always has a staff member; the vehicle is best effort.
type ScheduleResult struct {
	Delivery        entities.Delivery
	Vehicle         *entities.Vehicle
	VehicleAssigned bool
}

// ScheduleDelivery creates a delivery for the parcel and assigns the first
// available staff member, then tries to attach the first vehicle that can
// carry the parcel's weight. Without available staff no delivery is created.
func (s *Delivery) ScheduleDelivery(ctx context.Context, parcelID string) (*ScheduleResult, error) {
	parcelEntity, err := s.parcelService.GetParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	staff, err := s.userService.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	var assignee *entities.User
	for i := range staff {
		if staff[i].Available {
			assignee = &staff[i]
			break
		}
	}
	if assignee == nil {
		return nil, ErrNoAvailableStaff
	}

	id, err := s.repository.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate delivery id: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repository.Create(ctx, entities.Delivery{
		ID:            id,
		ParcelID:      parcelEntity.ID,
		StaffID:       assignee.ID,
		Status:        entities.DeliveryScheduled,
		Route:         entities.DefaultRoute,
		CreatedAt:     now,
		EstimatedTime: s.estimateFactory.EstimatedDelivery(now),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	result := &ScheduleResult{Delivery: *created}

	vehicleEntity, err := s.attachFirstSuitableVehicle(ctx, created.ID, parcelEntity.Weight)
	if err != nil {
		return nil, err
	}
	if vehicleEntity != nil {
		result.Vehicle = vehicleEntity
		result.VehicleAssigned = true
		result.Delivery.VehicleID = vehicleEntity.ID
	}

	return result, nil
}

func (s *Delivery) attachFirstSuitableVehicle(
	ctx context.Context,
	deliveryID string,
	weight float64,
) (*entities.Vehicle, error) {
	vehicles, err := s.vehicleRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}

	for i := range vehicles {
		if !vehicles[i].CanCarry(weight) {
			continue
		}

		available := false
		if _, err = s.vehicleRepository.Update(ctx, entities.VehicleModify{
			ID:                &vehicles[i].ID,
			Available:         &available,
			CurrentDeliveryID: &deliveryID,
		}); err != nil {
			return nil, fmt.Errorf("failed to reserve vehicle: %w", err)
		}

		if _, err = s.repository.Update(ctx, entities.DeliveryModify{
			ID:        &deliveryID,
			VehicleID: &vehicles[i].ID,
		}); err != nil {
			return nil, fmt.Errorf("failed to attach vehicle: %w", err)
		}

		return &vehicles[i], nil
	}

	return nil, nil
}

// AssignStaff reassigns the delivery to the given staff member and marks it
// Assigned. The parcel status is left untouched.
func (s *Delivery) AssignStaff(ctx context.Context, deliveryID, staffID string) (*entities.Delivery, error) {
	if _, err := s.repository.GetByID(ctx, deliveryID); err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	staffEntity, err := s.userService.GetUser(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	if !staffEntity.IsStaff() || staffEntity.ID == entities.AdminID {
		return nil, fmt.Errorf("%w: %s", ErrStaffNotAssignable, staffID)
	}
	if !staffEntity.Available {
		return nil, fmt.Errorf("%w: %s is unavailable", ErrStaffNotAssignable, staffID)
	}

	status := entities.DeliveryAssigned
	updated, err := s.repository.Update(ctx, entities.DeliveryModify{
		ID:      &deliveryID,
		StaffID: &staffID,
		Status:  &status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	return updated, nil
}

// AssignVehicle attaches the vehicle to the delivery when it is available and
// can carry the parcel's weight. A previously attached vehicle is not
// released automatically; callers release it explicitly first.
func (s *Delivery) AssignVehicle(ctx context.Context, deliveryID, vehicleID string) (*entities.Delivery, error) {
	deliveryEntity, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	parcelEntity, err := s.parcelService.GetParcel(ctx, deliveryEntity.ParcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	vehicleEntity, err := s.vehicleRepository.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if !vehicleEntity.CanCarry(parcelEntity.Weight) {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotSuitable, vehicleID)
	}

	available := false
	if _, err = s.vehicleRepository.Update(ctx, entities.VehicleModify{
		ID:                &vehicleID,
		Available:         &available,
		CurrentDeliveryID: &deliveryID,
	}); err != nil {
		return nil, fmt.Errorf("failed to reserve vehicle: %w", err)
	}

	route := fmt.Sprintf("Route for %s (%s)", vehicleEntity.Type, vehicleEntity.Plate)
	updated, err := s.repository.Update(ctx, entities.DeliveryModify{
		ID:        &deliveryID,
		VehicleID: &vehicleID,
		Route:     &route,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	return updated, nil
}

// ReleaseVehicle frees the vehicle attached to the delivery and clears the
// attachment on both sides.
func (s *Delivery) ReleaseVehicle(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	deliveryEntity, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if deliveryEntity.VehicleID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoVehicleAssigned, deliveryID)
	}

	available := true
	empty := ""
	if _, err = s.vehicleRepository.Update(ctx, entities.VehicleModify{
		ID:                &deliveryEntity.VehicleID,
		Available:         &available,
		CurrentDeliveryID: &empty,
	}); err != nil {
		return nil, fmt.Errorf("failed to release vehicle: %w", err)
	}

	updated, err := s.repository.Update(ctx, entities.DeliveryModify{
		ID:        &deliveryID,
		VehicleID: &empty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	return updated, nil
}

// UpdateDeliveryStatus sets the delivery status and mirrors it onto the
// delivery's parcel.
func (s *Delivery) UpdateDeliveryStatus(
	ctx context.Context,
	deliveryID string,
	status entities.DeliveryStatusType,
) (*entities.Delivery, error) {
	deliveryEntity, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	updated, err := s.repository.Update(ctx, entities.DeliveryModify{
		ID:     &deliveryID,
		Status: &status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	if _, err = s.parcelService.SetStatus(ctx, deliveryEntity.ParcelID, entities.ParcelStatusType(status)); err != nil {
		return nil, fmt.Errorf("failed to update parcel status: %w", err)
	}

	return updated, nil
}

// UpdateParcelStatus sets the parcel status and mirrors it onto every
// delivery scheduled for that parcel.
func (s *Delivery) UpdateParcelStatus(
	ctx context.Context,
	parcelID string,
	status entities.ParcelStatusType,
) (*entities.Parcel, error) {
	updated, err := s.parcelService.SetStatus(ctx, parcelID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update parcel status: %w", err)
	}

	deliveries, err := s.repository.GetByParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}

	deliveryStatus := entities.DeliveryStatusType(status)
	for i := range deliveries {
		if _, err = s.repository.Update(ctx, entities.DeliveryModify{
			ID:     &deliveries[i].ID,
			Status: &deliveryStatus,
		}); err != nil {
			return nil, fmt.Errorf("failed to update delivery status: %w", err)
		}
	}

	return updated, nil
}

// CompleteDelivery marks the delivery and its parcel Delivered. Only the
// assigned staff member may complete a delivery, and only once it is out for
// delivery.
func (s *Delivery) CompleteDelivery(ctx context.Context, deliveryID, staffID string) (*entities.Delivery, error) {
	deliveryEntity, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if deliveryEntity.StaffID != staffID {
		return nil, fmt.Errorf("%w: %s", ErrNotAssignedToStaff, deliveryID)
	}
	if deliveryEntity.Status != entities.DeliveryOutForDelivery {
		return nil, fmt.Errorf("%w: %s", ErrNotOutForDelivery, deliveryEntity.Status)
	}

	status := entities.DeliveryDelivered
	updated, err := s.repository.Update(ctx, entities.DeliveryModify{
		ID:     &deliveryID,
		Status: &status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	if _, err = s.parcelService.SetStatus(ctx, deliveryEntity.ParcelID, entities.ParcelDelivered); err != nil {
		return nil, fmt.Errorf("failed to update parcel status: %w", err)
	}

	return updated, nil
}

// StaffStatistics aggregates delivery totals per staff member.
func (s *Delivery) StaffStatistics(ctx context.Context) ([]entities.StaffStatistics, error) {
	deliveries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}

	staff, err := s.userService.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	stats := make([]entities.StaffStatistics, 0, len(staff))
	for _, member := range staff {
		stat := entities.StaffStatistics{StaffID: member.ID}
		for _, deliveryEntity := range deliveries {
			if deliveryEntity.StaffID != member.ID {
				continue
			}
			stat.Total++
			if deliveryEntity.Status == entities.DeliveryDelivered {
				stat.Completed++
			}
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

type AddVehicleInput struct {
	ID       string
	Type     string
	Plate    string
	Capacity float64
}

func (s *Delivery) AddVehicle(ctx context.Context, input AddVehicleInput) (*entities.Vehicle, error) {
	if input.ID == "" || input.Type == "" || input.Plate == "" {
		return nil, ErrMissingRequiredFields
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidCapacity, input.Capacity)
	}

	created, err := s.vehicleRepository.Create(ctx, entities.Vehicle{
		ID:        input.ID,
		Type:      input.Type,
		Plate:     input.Plate,
		Capacity:  input.Capacity,
		Available: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return created, nil
}

func (s *Delivery) GetVehicle(ctx context.Context, id string) (*entities.Vehicle, error) {
	vehicleEntity, err := s.vehicleRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicleEntity, nil
}

func (s *Delivery) GetVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := s.vehicleRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *Delivery) GetDelivery(ctx context.Context, id string) (*entities.Delivery, error) {
	deliveryEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	return deliveryEntity, nil
}

func (s *Delivery) GetDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}
	return deliveries, nil
}

func (s *Delivery) GetDeliveriesByStaff(ctx context.Context, staffID string) ([]entities.Delivery, error) {
	deliveries, err := s.repository.GetByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}
	return deliveries, nil
}

func (s *Delivery) GetDeliveriesForParcel(ctx context.Context, parcelID string) ([]entities.Delivery, error) {
	deliveries, err := s.repository.GetByParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}
	return deliveries, nil
}
