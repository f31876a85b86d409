package staff_menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"courier-system/internal/entities"
	"courier-system/internal/pkg/console"
	"courier-system/internal/service/delivery"
	"courier-system/internal/service/parcel"
	"courier-system/internal/views"
	"courier-system/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	reader     *console.Reader
	out        io.Writer
	deliveries DeliveryService
	users      UserService
	parcels    ParcelService
}

func New(
	log handlerLogger,
	reader *console.Reader,
	out io.Writer,
	deliveries DeliveryService,
	users UserService,
	parcels ParcelService,
) *Handler {
	return &Handler{
		log:        log.With(logger.NewField("menu", "staff")),
		reader:     reader,
		out:        out,
		deliveries: deliveries,
		users:      users,
		parcels:    parcels,
	}
}

func (h *Handler) Run(ctx context.Context, staff *entities.User) error {
	for {
		views.StaffMenu(h.out, staff.Name)

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
			err = h.viewDeliveries(ctx, staff)
		case 2:
			err = h.updateParcelStatus(ctx)
		case 3:
			err = h.completeDelivery(ctx, staff)
		case 4:
			err = h.viewParcels(ctx)
		case 5:
			err = h.viewVehicles(ctx)
		case 6:
			err = h.toggleAvailability(ctx, staff)
		case 7:
			err = h.viewProfile(ctx, staff)
		case 8:
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (h *Handler) viewDeliveries(ctx context.Context, staff *entities.User) error {
	views.SectionHeader(h.out, "MY DELIVERIES")
	deliveries, err := h.deliveries.GetDeliveriesByStaff(ctx, staff.ID)
	if err != nil {
		h.log.Error("list deliveries", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load deliveries.")
		return nil
	}
	views.DeliveryList(h.out, deliveries)
	return nil
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

// updateParcelStatus mirrors the new status onto every delivery of the
// parcel, not only the one assigned to this staff member.
func (h *Handler) updateParcelStatus(ctx context.Context) error {
	parcelID, err := h.reader.ReadLine("Parcel ID: ")
	if err != nil {
		return err
	}

	status, ok, err := h.chooseParcelStatus()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(h.out, "Invalid status.")
		return nil
	}

	updated, err := h.deliveries.UpdateParcelStatus(ctx, parcelID, status)
	if err != nil {
		if errors.Is(err, parcel.ErrParcelNotFound) {
			fmt.Fprintln(h.out, "Parcel not found.")
			return nil
		}
		h.log.Error("update parcel status", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not update status.")
		return nil
	}

	fmt.Fprintf(h.out, "Parcel %s is now %s.\n", updated.ID, updated.Status)
	return nil
}

func (h *Handler) chooseParcelStatus() (entities.ParcelStatusType, bool, error) {
	options := []entities.ParcelStatusType{
		entities.ParcelProcessing,
		entities.ParcelInTransit,
		entities.ParcelOutForDelivery,
		entities.ParcelDelivered,
		entities.ParcelReturned,
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

func (h *Handler) completeDelivery(ctx context.Context, staff *entities.User) error {
	deliveryID, err := h.reader.ReadLine("Delivery ID: ")
	if err != nil {
		return err
	}

	completed, err := h.deliveries.CompleteDelivery(ctx, deliveryID, staff.ID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			fmt.Fprintln(h.out, "Delivery not found.")
		case errors.Is(err, delivery.ErrNotAssignedToStaff):
			fmt.Fprintln(h.out, "That delivery is not assigned to you.")
		case errors.Is(err, delivery.ErrNotOutForDelivery):
			fmt.Fprintln(h.out, "Delivery must be out for delivery first.")
		default:
			h.log.Error("complete delivery", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Could not complete delivery.")
		}
		return nil
	}

	fmt.Fprintf(h.out, "Delivery %s completed.\n", completed.ID)
	return nil
}

func (h *Handler) toggleAvailability(ctx context.Context, staff *entities.User) error {
	updated, err := h.users.ToggleAvailability(ctx, staff.ID)
	if err != nil {
		h.log.Error("toggle availability", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not update availability.")
		return nil
	}
	staff.Available = updated.Available
	fmt.Fprintf(h.out, "You are now %s.\n", availabilityWord(updated.Available))
	return nil
}

func (h *Handler) viewProfile(ctx context.Context, staff *entities.User) error {
	current, err := h.users.GetUser(ctx, staff.ID)
	if err != nil {
		h.log.Error("load profile", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load profile.")
		return nil
	}
	views.StaffProfile(h.out, *current)

	deliveries, err := h.deliveries.GetDeliveriesByStaff(ctx, staff.ID)
	if err != nil {
		h.log.Error("list deliveries", logger.NewField("error", err))
		return nil
	}
	stats := entities.StaffStatistics{StaffID: staff.ID, Total: len(deliveries)}
	for _, d := range deliveries {
		if d.Status == entities.DeliveryDelivered {
			stats.Completed++
		}
	}
	fmt.Fprintf(h.out, "Deliveries: %d | Completed: %d | Success: %.1f%%\n",
		stats.Total, stats.Completed, stats.SuccessRate())
	return nil
}

func availabilityWord(available bool) string {
	if available {
		return "available"
	}
	return "unavailable"
}
