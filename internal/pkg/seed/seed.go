// Package seed loads the demo data set used for manual testing.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"courier-system/internal/entities"
	"courier-system/internal/pkg/factory/parcel_factory"
)

type Repositories struct {
	Users      UserRepository
	Parcels    ParcelRepository
	Deliveries DeliveryRepository
	Vehicles   VehicleRepository
	Payments   PaymentRepository
}

type UserRepository interface {
	Create(ctx context.Context, userEntity entities.User) (*entities.User, error)
}

type ParcelRepository interface {
	Create(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicleEntity entities.Vehicle) (*entities.Vehicle, error)
	Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, paymentEntity entities.Payment) (*entities.Payment, error)
}

// Load populates the stores with three customers, three staff members,
// three parcels, their deliveries, three vehicles and two completed
// payments. Prices come from the regular parcel factory so the demo data
// matches what the system itself would produce.
func Load(ctx context.Context, repos Repositories) error {
	if err := loadUsers(ctx, repos.Users); err != nil {
		return err
	}

	factory := parcel_factory.New()
	parcels, err := loadParcels(ctx, repos.Parcels, factory)
	if err != nil {
		return err
	}

	if err := loadVehicles(ctx, repos.Vehicles); err != nil {
		return err
	}
	if err := loadDeliveries(ctx, repos.Deliveries, repos.Vehicles); err != nil {
		return err
	}
	return loadPayments(ctx, repos.Payments, parcels)
}

func loadUsers(ctx context.Context, repo UserRepository) error {
	users := []entities.User{
		{
			ID: "C001", Kind: entities.UserKindCustomer, Name: "Ali",
			Email: "ali@example.com", Password: "pass123",
			Phone: "012-3456789", Address: "123 Main Street, KL",
		},
		{
			ID: "C002", Kind: entities.UserKindCustomer, Name: "Siti",
			Email: "siti@example.com", Password: "pass123",
			Phone: "013-4567890", Address: "456 Garden Avenue, KL",
		},
		{
			ID: "C003", Kind: entities.UserKindCustomer, Name: "Ahmad",
			Email: "ahmad@example.com", Password: "pass123",
			Phone: "014-5678901", Address: "789 Hill Road, Penang",
		},
		{
			ID: "S001", Kind: entities.UserKindStaff, Name: "Raju",
			Password: "pass123", Role: "Delivery Driver", Salary: 2500, Available: true,
		},
		{
			ID: "S002", Kind: entities.UserKindStaff, Name: "Mei Ling",
			Password: "pass123", Role: "Warehouse Manager", Salary: 3200, Available: true,
		},
		{
			ID: "S003", Kind: entities.UserKindStaff, Name: "Kumar",
			Password: "pass123", Role: "Customer Service", Salary: 2800, Available: true,
		},
	}
	for _, u := range users {
		if _, err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	return nil
}

func loadParcels(
	ctx context.Context,
	repo ParcelRepository,
	factory *parcel_factory.ParcelFactory,
) ([]entities.Parcel, error) {
	rows := []struct {
		kind, id, sender, receiver string
		weight                     float64
		dimensions, description    string
		extra                      string
	}{
		{"STANDARD", "P001", "C001", "C002", 2.5, "30x20x15", "Small Box", ""},
		{"EXPRESS", "P002", "C002", "C003", 1.2, "25x15x10", "Documents", ""},
		{"INTERNATIONAL", "P003", "C003", "C001", 5.8, "40x30x25", "Electronics", "Singapore"},
	}

	parcels := make([]entities.Parcel, 0, len(rows))
	for _, row := range rows {
		built, _ := factory.CreateParcel(
			row.kind, row.id, row.sender, row.receiver,
			row.weight, row.dimensions, row.description, row.extra,
		)
		created, err := repo.Create(ctx, *built)
		if err != nil {
			return nil, fmt.Errorf("seed parcel %s: %w", row.id, err)
		}
		parcels = append(parcels, *created)
	}
	return parcels, nil
}

func loadVehicles(ctx context.Context, repo VehicleRepository) error {
	vehicles := []entities.Vehicle{
		{ID: "V001", Type: "Van", Plate: "ABC1234", Capacity: 500, Available: true},
		{ID: "V002", Type: "Motorcycle", Plate: "DEF5678", Capacity: 50, Available: true},
		{ID: "V003", Type: "Truck", Plate: "GHI9012", Capacity: 2000, Available: true},
	}
	for _, v := range vehicles {
		if _, err := repo.Create(ctx, v); err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.ID, err)
		}
	}
	return nil
}

func loadDeliveries(ctx context.Context, repo DeliveryRepository, vehicles VehicleRepository) error {
	now := time.Now().UTC()
	deliveries := []entities.Delivery{
		{
			ID: "D001", ParcelID: "P001", StaffID: "S001", VehicleID: "V001",
			Status: entities.DeliveryScheduled, Route: "Main City Route - Van ABC1234",
			CreatedAt: now, EstimatedTime: now.Add(48 * time.Hour),
		},
		{
			ID: "D002", ParcelID: "P002", StaffID: "S002",
			Status: entities.DeliveryScheduled, Route: entities.DefaultRoute,
			CreatedAt: now, EstimatedTime: now.Add(48 * time.Hour),
		},
		{
			ID: "D003", ParcelID: "P003", StaffID: "S003",
			Status: entities.DeliveryScheduled, Route: entities.DefaultRoute,
			CreatedAt: now, EstimatedTime: now.Add(48 * time.Hour),
		},
	}
	for _, d := range deliveries {
		if _, err := repo.Create(ctx, d); err != nil {
			return fmt.Errorf("seed delivery %s: %w", d.ID, err)
		}
	}

	if _, err := vehicles.Update(ctx, entities.VehicleModify{
		ID:                pointer.To("V001"),
		Available:         pointer.To(false),
		CurrentDeliveryID: pointer.To("D001"),
	}); err != nil {
		return fmt.Errorf("seed vehicle assignment: %w", err)
	}
	return nil
}

func loadPayments(ctx context.Context, repo PaymentRepository, parcels []entities.Parcel) error {
	if len(parcels) < 2 {
		return nil
	}

	now := time.Now().UTC()
	payments := []entities.Payment{
		{
			ID: "PAY001", ParcelID: parcels[0].ID, Amount: parcels[0].Price,
			Method: entities.PaymentCreditCard, Status: entities.PaymentCompleted, CreatedAt: now,
		},
		{
			ID: "PAY002", ParcelID: parcels[1].ID, Amount: parcels[1].Price,
			Method: entities.PaymentOnlineBanking, Status: entities.PaymentCompleted, CreatedAt: now,
		},
	}
	for _, p := range payments {
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed payment %s: %w", p.ID, err)
		}
	}
	return nil
}
