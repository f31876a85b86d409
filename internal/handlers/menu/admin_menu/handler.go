package admin_menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"courier-system/internal/entities"
	"courier-system/internal/pkg/console"
	"courier-system/internal/service/delivery"
	"courier-system/internal/service/user"
	"courier-system/internal/views"
	"courier-system/pkg/logger"
)

const (
	recentPaymentsLimit = 5
	recentParcelsLimit  = 5
	topCustomersLimit   = 3
)

type Handler struct {
	log        handlerLogger
	reader     *console.Reader
	out        io.Writer
	parcels    ParcelService
	deliveries DeliveryService
	users      UserService
	payments   PaymentService
}

func New(
	log handlerLogger,
	reader *console.Reader,
	out io.Writer,
	parcels ParcelService,
	deliveries DeliveryService,
	users UserService,
	payments PaymentService,
) *Handler {
	return &Handler{
		log:        log.With(logger.NewField("menu", "admin")),
		reader:     reader,
		out:        out,
		parcels:    parcels,
		deliveries: deliveries,
		users:      users,
		payments:   payments,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	for {
		views.AdminMenu(h.out)

		choice, err := h.reader.ReadInt("Select option: ")
		if err != nil {
			if errors.Is(err, console.ErrNotANumber) {
				fmt.Fprintln(h.out, "Please enter a number.")
				continue
			}
			return err
		}

		switch choice {
		case 1:
			err = h.viewParcels(ctx)
		case 2:
			err = h.viewDeliveries(ctx)
		case 3:
			err = h.viewCustomers(ctx)
		case 4:
			err = h.viewStaff(ctx)
		case 5:
			err = h.addStaff(ctx)
		case 6:
			err = h.addVehicle(ctx)
		case 7:
			err = h.viewVehicles(ctx)
		case 8:
			err = h.assignStaff(ctx)
		case 9:
			err = h.assignVehicle(ctx)
		case 10:
			err = h.releaseVehicle(ctx)
		case 11:
			err = h.updateDeliveryStatus(ctx)
		case 12:
			err = h.viewStatistics(ctx)
		case 13:
			err = h.paymentSummary(ctx)
		case 14:
			err = h.systemReport(ctx)
		case 15:
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (h *Handler) viewParcels(ctx context.Context) error {
	views.SectionHeader(h.out, "ALL PARCELS")
	parcels, err := h.parcels.GetParcels(ctx)
	if err != nil {
		h.log.Error("list parcels", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load parcels.")
		return nil
	}
	views.ParcelList(h.out, parcels)
	return nil
}

func (h *Handler) viewDeliveries(ctx context.Context) error {
	views.SectionHeader(h.out, "ALL DELIVERIES")
	deliveries, err := h.deliveries.GetDeliveries(ctx)
	if err != nil {
		h.log.Error("list deliveries", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load deliveries.")
		return nil
	}
	views.DeliveryList(h.out, deliveries)
	return nil
}

func (h *Handler) viewCustomers(ctx context.Context) error {
	views.SectionHeader(h.out, "ALL CUSTOMERS")
	customers, err := h.users.GetCustomers(ctx)
	if err != nil {
		h.log.Error("list customers", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load customers.")
		return nil
	}
	views.UserList(h.out, customers)
	return nil
}

func (h *Handler) viewStaff(ctx context.Context) error {
	views.SectionHeader(h.out, "ALL STAFF")
	staff, err := h.users.GetStaff(ctx)
	if err != nil {
		h.log.Error("list staff", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load staff.")
		return nil
	}
	views.UserList(h.out, staff)
	return nil
}

// addStaff creates the account with the default password; the staff member
// is expected to change it on first login.
func (h *Handler) addStaff(ctx context.Context) error {
	views.SectionHeader(h.out, "ADD STAFF MEMBER")

	id, err := h.reader.ReadLine("Staff ID (S###): ")
	if err != nil {
		return err
	}
	name, err := h.reader.ReadLine("Name: ")
	if err != nil {
		return err
	}
	role, err := h.reader.ReadLine("Role: ")
	if err != nil {
		return err
	}
	salary, err := h.reader.ReadFloat("Salary: ")
	if err != nil {
		if errors.Is(err, console.ErrNotANumber) {
			fmt.Fprintln(h.out, "Salary must be a number.")
			return nil
		}
		return err
	}

	created, err := h.users.AddStaff(ctx, entities.UserModify{
		ID:     &id,
		Name:   &name,
		Role:   &role,
		Salary: &salary,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidStaffID):
			fmt.Fprintln(h.out, "Staff ID must look like S001.")
		case errors.Is(err, user.ErrInvalidName):
			fmt.Fprintln(h.out, "Name must be 2 to 50 characters.")
		case errors.Is(err, user.ErrInvalidSalary):
			fmt.Fprintln(h.out, "Salary must be positive.")
		case errors.Is(err, user.ErrConflict):
			fmt.Fprintln(h.out, "That staff ID already exists.")
		default:
			h.log.Error("add staff", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Could not add staff member.")
		}
		return nil
	}

	fmt.Fprintf(h.out, "Staff %s added with the default password.\n", created.ID)
	return nil
}

func (h *Handler) addVehicle(ctx context.Context) error {
	views.SectionHeader(h.out, "ADD VEHICLE")

	id, err := h.reader.ReadLine("Vehicle ID: ")
	if err != nil {
		return err
	}
	vehicleType, err := h.reader.ReadLine("Type (Van/Motorcycle/Truck): ")
	if err != nil {
		return err
	}
	plate, err := h.reader.ReadLine("Plate number: ")
	if err != nil {
		return err
	}
	capacity, err := h.reader.ReadFloat("Capacity (kg): ")
	if err != nil {
		if errors.Is(err, console.ErrNotANumber) {
			fmt.Fprintln(h.out, "Capacity must be a number.")
			return nil
		}
		return err
	}

	created, err := h.deliveries.AddVehicle(ctx, delivery.AddVehicleInput{
		ID:       id,
		Type:     vehicleType,
		Plate:    plate,
		Capacity: capacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields):
			fmt.Fprintln(h.out, "All vehicle fields are required.")
		case errors.Is(err, delivery.ErrInvalidCapacity):
			fmt.Fprintln(h.out, "Capacity must be positive.")
		case errors.Is(err, delivery.ErrVehicleConflict):
			fmt.Fprintln(h.out, "That vehicle ID already exists.")
		default:
			h.log.Error("add vehicle", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Could not add vehicle.")
		}
		return nil
	}

	fmt.Fprintf(h.out, "Vehicle %s added.\n", created.ID)
	return nil
}

func (h *Handler) viewVehicles(ctx context.Context) error {
	views.SectionHeader(h.out, "VEHICLES")
	vehicles, err := h.deliveries.GetVehicles(ctx)
	if err != nil {
		h.log.Error("list vehicles", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load vehicles.")
		return nil
	}
	views.VehicleList(h.out, vehicles)
	return nil
}

func (h *Handler) assignStaff(ctx context.Context) error {
	deliveryID, err := h.reader.ReadLine("Delivery ID: ")
	if err != nil {
		return err
	}
	staffID, err := h.reader.ReadLine("Staff ID: ")
	if err != nil {
		return err
	}

	updated, err := h.deliveries.AssignStaff(ctx, deliveryID, staffID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			fmt.Fprintln(h.out, "Delivery not found.")
		case errors.Is(err, user.ErrUserNotFound):
			fmt.Fprintln(h.out, "Staff member not found.")
		case errors.Is(err, delivery.ErrStaffNotAssignable):
			fmt.Fprintln(h.out, "That staff member cannot take deliveries.")
		default:
			h.log.Error("assign staff", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Could not assign staff.")
		}
		return nil
	}

	fmt.Fprintf(h.out, "Delivery %s assigned to %s.\n", updated.ID, updated.StaffID)
	return nil
}

// assignVehicle leaves a previously attached vehicle reserved; the admin
// confirms and releases it explicitly before reassigning.
func (h *Handler) assignVehicle(ctx context.Context) error {
	deliveryID, err := h.reader.ReadLine("Delivery ID: ")
	if err != nil {
		return err
	}

	deliveryEntity, err := h.deliveries.GetDelivery(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, delivery.ErrDeliveryNotFound) {
			fmt.Fprintln(h.out, "Delivery not found.")
			return nil
		}
		h.log.Error("get delivery", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load delivery.")
		return nil
	}

	if deliveryEntity.VehicleID != "" {
		confirmed, err := h.reader.Confirm(fmt.Sprintf(
			"Delivery already has vehicle %s. Replace it? (y/n): ", deliveryEntity.VehicleID))
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
		fmt.Fprintf(h.out, "Note: vehicle %s stays reserved until released.\n", deliveryEntity.VehicleID)
	}

	vehicleID, err := h.reader.ReadLine("Vehicle ID: ")
	if err != nil {
		return err
	}

	updated, err := h.deliveries.AssignVehicle(ctx, deliveryID, vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrVehicleNotFound):
			fmt.Fprintln(h.out, "Vehicle not found.")
		case errors.Is(err, delivery.ErrVehicleNotSuitable):
			fmt.Fprintln(h.out, "Vehicle is unavailable or cannot carry the parcel.")
		default:
			h.log.Error("assign vehicle", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Could not assign vehicle.")
		}
		return nil
	}

	fmt.Fprintf(h.out, "Vehicle %s assigned to delivery %s.\n", updated.VehicleID, updated.ID)
	fmt.Fprintf(h.out, "Route: %s\n", updated.Route)
	return nil
}

func (h *Handler) releaseVehicle(ctx context.Context) error {
	deliveryID, err := h.reader.ReadLine("Delivery ID: ")
	if err != nil {
		return err
	}

	updated, err := h.deliveries.ReleaseVehicle(ctx, deliveryID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			fmt.Fprintln(h.out, "Delivery not found.")
		case errors.Is(err, delivery.ErrNoVehicleAssigned):
			fmt.Fprintln(h.out, "That delivery has no vehicle.")
		default:
			h.log.Error("release vehicle", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Could not release vehicle.")
		}
		return nil
	}

	fmt.Fprintf(h.out, "Vehicle released from delivery %s.\n", updated.ID)
	return nil
}

// updateDeliveryStatus mirrors the new status onto the delivery's parcel.
func (h *Handler) updateDeliveryStatus(ctx context.Context) error {
	deliveryID, err := h.reader.ReadLine("Delivery ID: ")
	if err != nil {
		return err
	}

	status, ok, err := h.chooseDeliveryStatus()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(h.out, "Invalid status.")
		return nil
	}

	updated, err := h.deliveries.UpdateDeliveryStatus(ctx, deliveryID, status)
	if err != nil {
		if errors.Is(err, delivery.ErrDeliveryNotFound) {
			fmt.Fprintln(h.out, "Delivery not found.")
			return nil
		}
		h.log.Error("update delivery status", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not update status.")
		return nil
	}

	fmt.Fprintf(h.out, "Delivery %s is now %s.\n", updated.ID, updated.Status)
	return nil
}

func (h *Handler) chooseDeliveryStatus() (entities.DeliveryStatusType, bool, error) {
	options := []entities.DeliveryStatusType{
		entities.DeliveryProcessing,
		entities.DeliveryLoading,
		entities.DeliveryInTransit,
		entities.DeliveryOutForDelivery,
		entities.DeliveryDelivered,
		entities.DeliveryReturned,
	}
	for i, status := range options {
		fmt.Fprintf(h.out, "%d. %s\n", i+1, status)
	}

	choice, err := h.reader.ReadInt("New status: ")
	if err != nil {
		if errors.Is(err, console.ErrNotANumber) {
			return "", false, nil
		}
		return "", false, err
	}
	if choice < 1 || choice > len(options) {
		return "", false, nil
	}
	return options[choice-1], true, nil
}

func (h *Handler) viewStatistics(ctx context.Context) error {
	stats, _, _, err := h.gatherStatistics(ctx)
	if err != nil {
		h.log.Error("gather statistics", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load statistics.")
		return nil
	}
	views.Statistics(h.out, stats)
	return nil
}

func (h *Handler) gatherStatistics(
	ctx context.Context,
) (views.SystemStatistics, []entities.Parcel, []entities.Delivery, error) {
	stats := views.SystemStatistics{
		ParcelsByStatus: make(map[entities.ParcelStatusType]int),
	}

	parcels, err := h.parcels.GetParcels(ctx)
	if err != nil {
		return stats, nil, nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	stats.TotalParcels = len(parcels)

	statuses := []entities.ParcelStatusType{
		entities.ParcelCreated,
		entities.ParcelPaidProcessing,
		entities.ParcelProcessing,
		entities.ParcelInTransit,
		entities.ParcelOutForDelivery,
		entities.ParcelDelivered,
		entities.ParcelReturned,
	}
	for _, status := range statuses {
		count, err := h.parcels.CountByStatus(ctx, status)
		if err != nil {
			h.log.Error("count by status", logger.NewField("error", err))
			continue
		}
		if count > 0 {
			stats.ParcelsByStatus[status] = count
		}
	}

	if stats.TotalValue, err = h.parcels.TotalValue(ctx); err != nil {
		h.log.Error("total value", logger.NewField("error", err))
	}

	deliveries, err := h.deliveries.GetDeliveries(ctx)
	if err != nil {
		h.log.Error("list deliveries", logger.NewField("error", err))
	}
	stats.TotalDeliveries = len(deliveries)

	customers, err := h.users.GetCustomers(ctx)
	if err != nil {
		h.log.Error("list customers", logger.NewField("error", err))
	}
	stats.TotalCustomers = len(customers)

	staff, err := h.users.GetStaff(ctx)
	if err != nil {
		h.log.Error("list staff", logger.NewField("error", err))
	}
	stats.TotalStaff = len(staff)

	if stats.Staff, err = h.deliveries.StaffStatistics(ctx); err != nil {
		h.log.Error("staff statistics", logger.NewField("error", err))
	}

	return stats, parcels, deliveries, nil
}

func (h *Handler) systemReport(ctx context.Context) error {
	stats, parcels, deliveries, err := h.gatherStatistics(ctx)
	if err != nil {
		h.log.Error("gather statistics", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load report.")
		return nil
	}

	report := views.SystemReport{
		Stats:         stats,
		ParcelsByKind: make(map[entities.ParcelKind]int),
	}
	for _, p := range parcels {
		report.ParcelsByKind[p.Kind]++
	}
	for _, d := range deliveries {
		if d.Status == entities.DeliveryDelivered {
			report.CompletedDeliveries++
		}
	}

	vehicles, err := h.deliveries.GetVehicles(ctx)
	if err != nil {
		h.log.Error("list vehicles", logger.NewField("error", err))
	}
	report.TotalVehicles = len(vehicles)
	for _, v := range vehicles {
		if !v.Available {
			report.VehiclesInUse++
		}
	}

	if summary, err := h.payments.Summary(ctx, recentPaymentsLimit); err != nil {
		h.log.Error("payment summary", logger.NewField("error", err))
	} else {
		report.Revenue = summary.TotalRevenue
		report.PendingAmount = summary.PendingAmount
	}

	customers, err := h.users.GetCustomers(ctx)
	if err != nil {
		h.log.Error("list customers", logger.NewField("error", err))
	}
	report.TopCustomers = topByLoyalty(customers, topCustomersLimit)
	report.RecentParcels = lastParcels(parcels, recentParcelsLimit)

	views.Report(h.out, report)
	return nil
}

func topByLoyalty(customers []entities.User, limit int) []entities.User {
	sorted := make([]entities.User, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoyaltyPoints > sorted[j].LoyaltyPoints
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// lastParcels returns the newest parcels first; the store keeps them in
// creation order.
func lastParcels(parcels []entities.Parcel, limit int) []entities.Parcel {
	recent := make([]entities.Parcel, 0, limit)
	for i := len(parcels) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, parcels[i])
	}
	return recent
}

func (h *Handler) paymentSummary(ctx context.Context) error {
	summary, err := h.payments.Summary(ctx, recentPaymentsLimit)
	if err != nil {
		h.log.Error("payment summary", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load payment summary.")
		return nil
	}
	views.PaymentSummary(h.out, *summary)
	return nil
}
