// Package app assembles the object graph. The dependency set is small and
// static, so the wiring is written out by hand.
package app

import (
	"courier-system/internal/pkg/config"
	"courier-system/internal/pkg/factory/delivery_estimate"
	"courier-system/internal/pkg/factory/parcel_factory"
	"courier-system/internal/pkg/factory/payment_id"
	"courier-system/internal/pkg/seed"
	"courier-system/internal/repository/memory"
	deliveryService "courier-system/internal/service/delivery"
	parcelService "courier-system/internal/service/parcel"
	paymentService "courier-system/internal/service/payment"
	userService "courier-system/internal/service/user"
)

type Repositories struct {
	Users      *memory.Users
	Parcels    *memory.Parcels
	Deliveries *memory.Deliveries
	Vehicles   *memory.Vehicles
	Payments   *memory.Payments
}

type Application struct {
	Repositories Repositories

	ServiceUser     *userService.User
	ServiceParcel   *parcelService.Parcel
	ServiceDelivery *deliveryService.Delivery
	ServicePayment  *paymentService.Payment
}

func InitializeApplication(cfg *config.Config) *Application {
	repos := Repositories{
		Users:      memory.NewUsers(),
		Parcels:    memory.NewParcels(),
		Deliveries: memory.NewDeliveries(),
		Vehicles:   memory.NewVehicles(),
		Payments:   memory.NewPayments(),
	}

	users := userService.New(repos.Users, cfg.Admin.Username, cfg.Admin.Password)
	parcels := parcelService.New(repos.Parcels, users, parcel_factory.New())
	deliveries := deliveryService.New(
		repos.Deliveries,
		repos.Vehicles,
		users,
		parcels,
		delivery_estimate.New(),
	)
	payments := paymentService.New(
		repos.Payments,
		repos.Deliveries,
		parcels,
		users,
		payment_id.New(),
	)

	return &Application{
		Repositories: repos,

		ServiceUser:     users,
		ServiceParcel:   parcels,
		ServiceDelivery: deliveries,
		ServicePayment:  payments,
	}
}

// SeedRepositories adapts the concrete stores to the seeder's interfaces.
func (a *Application) SeedRepositories() seed.Repositories {
	return seed.Repositories{
		Users:      a.Repositories.Users,
		Parcels:    a.Repositories.Parcels,
		Deliveries: a.Repositories.Deliveries,
		Vehicles:   a.Repositories.Vehicles,
		Payments:   a.Repositories.Payments,
	}
}
