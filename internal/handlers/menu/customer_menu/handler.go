package customer_menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"courier-system/internal/entities"
	"courier-system/internal/pkg/console"
	"courier-system/internal/service/delivery"
	"courier-system/internal/service/parcel"
	"courier-system/internal/service/payment"
	"courier-system/internal/views"
	"courier-system/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	reader     *console.Reader
	out        io.Writer
	parcels    ParcelService
	deliveries DeliveryService
	payments   PaymentService
	users      UserService
}

func New(
	log handlerLogger,
	reader *console.Reader,
	out io.Writer,
	parcels ParcelService,
	deliveries DeliveryService,
	payments PaymentService,
	users UserService,
) *Handler {
	return &Handler{
		log:        log.With(logger.NewField("menu", "customer")),
		reader:     reader,
		out:        out,
		parcels:    parcels,
		deliveries: deliveries,
		payments:   payments,
		users:      users,
	}
}

// Run drives the customer dashboard until logout or EOF.
func (h *Handler) Run(ctx context.Context, customer *entities.User) error {
	for {
		views.CustomerMenu(h.out, customer.Name)

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
			err = h.sendParcel(ctx, customer)
		case 2:
			err = h.viewParcels(ctx, customer)
		case 3:
			err = h.trackParcel(ctx)
		case 4:
			err = h.payForParcel(ctx, customer)
		case 5:
			err = h.viewProfile(ctx, customer)
		case 6:
			views.ParcelTypes(h.out)
		case 7:
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (h *Handler) sendParcel(ctx context.Context, customer *entities.User) error {
	views.SectionHeader(h.out, "SEND PARCEL")

	kind, err := h.reader.ReadLine("Parcel type (Standard/Express/International): ")
	if err != nil {
		return err
	}
	receiverID, err := h.reader.ReadLine("Receiver customer ID: ")
	if err != nil {
		return err
	}
	weight, err := h.reader.ReadFloat("Weight (kg): ")
	if err != nil {
		if errors.Is(err, console.ErrNotANumber) {
			fmt.Fprintln(h.out, "Weight must be a number.")
			return nil
		}
		return err
	}
	dimensions, err := h.reader.ReadLine("Dimensions (LxWxH): ")
	if err != nil {
		return err
	}
	description, err := h.reader.ReadLine("Description: ")
	if err != nil {
		return err
	}

	var extra string
	if isInternational(kind) {
		extra, err = h.reader.ReadLine("Destination country: ")
		if err != nil {
			return err
		}
	}

	created, err := h.parcels.CreateParcel(ctx, parcel.CreateParcelInput{
		Kind:        kind,
		SenderID:    customer.ID,
		ReceiverID:  receiverID,
		Weight:      weight,
		Dimensions:  dimensions,
		Description: description,
		Extra:       extra,
	})
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidWeight):
			fmt.Fprintln(h.out, "Weight must be between 0.1 and 100 kg.")
		case errors.Is(err, parcel.ErrInvalidDimensions):
			fmt.Fprintln(h.out, "Dimensions must look like 30x20x15.")
		case errors.Is(err, parcel.ErrRecipientNotFound):
			fmt.Fprintln(h.out, "Receiver not found.")
		default:
			h.log.Error("create parcel", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Could not create parcel.")
		}
		return nil
	}

	if created.KindFallback {
		fmt.Fprintln(h.out, "Unknown parcel type, standard pricing applied.")
	}
	fmt.Fprintf(h.out, "Parcel %s created. Price: RM%.2f\n", created.Parcel.ID, created.Parcel.Price)
	fmt.Fprintf(h.out, "You earned 10 loyalty points.\n")

	scheduled, err := h.deliveries.ScheduleDelivery(ctx, created.Parcel.ID)
	if err != nil {
		if errors.Is(err, delivery.ErrNoAvailableStaff) {
			fmt.Fprintln(h.out, "No staff available right now, delivery will be scheduled later.")
			return nil
		}
		h.log.Error("schedule delivery", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not schedule delivery.")
		return nil
	}

	fmt.Fprintf(h.out, "Delivery %s scheduled with staff %s.\n", scheduled.Delivery.ID, scheduled.Delivery.StaffID)
	if scheduled.VehicleAssigned {
		fmt.Fprintf(h.out, "Vehicle %s assigned.\n", scheduled.Vehicle.ID)
	} else {
		fmt.Fprintln(h.out, "No suitable vehicle available yet.")
	}
	return nil
}

func (h *Handler) viewParcels(ctx context.Context, customer *entities.User) error {
	views.SectionHeader(h.out, "MY PARCELS")
	parcels, err := h.parcels.GetParcelsBySender(ctx, customer.ID)
	if err != nil {
		h.log.Error("list parcels", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load parcels.")
		return nil
	}
	views.ParcelList(h.out, parcels)
	return nil
}

func (h *Handler) trackParcel(ctx context.Context) error {
	id, err := h.reader.ReadLine("Parcel ID: ")
	if err != nil {
		return err
	}

	parcelEntity, err := h.parcels.GetParcel(ctx, id)
	if err != nil {
		if errors.Is(err, parcel.ErrParcelNotFound) {
			fmt.Fprintln(h.out, "Parcel not found.")
			return nil
		}
		h.log.Error("track parcel", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load parcel.")
		return nil
	}

	views.SectionHeader(h.out, "TRACKING "+parcelEntity.ID)
	views.ParcelSummary(h.out, *parcelEntity)

	deliveries, err := h.deliveries.GetDeliveriesForParcel(ctx, id)
	if err != nil {
		h.log.Error("list deliveries", logger.NewField("error", err))
		return nil
	}
	views.DeliveryList(h.out, deliveries)
	return nil
}

func (h *Handler) payForParcel(ctx context.Context, customer *entities.User) error {
	views.SectionHeader(h.out, "PAY FOR PARCEL")

	unpaid, err := h.parcels.GetUnpaidBySender(ctx, customer.ID)
	if err != nil {
		h.log.Error("list unpaid parcels", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load parcels.")
		return nil
	}
	if len(unpaid) == 0 {
		fmt.Fprintln(h.out, "No unpaid parcels.")
		return nil
	}
	views.ParcelList(h.out, unpaid)

	parcelID, err := h.reader.ReadLine("Parcel ID to pay: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(h.out, "1. Credit Card")
	fmt.Fprintln(h.out, "2. Online Banking")
	fmt.Fprintln(h.out, "3. Cash on Delivery")
	choice, err := h.reader.ReadInt("Payment method: ")
	if err != nil {
		if errors.Is(err, console.ErrNotANumber) {
			fmt.Fprintln(h.out, "Please enter a number.")
			return nil
		}
		return err
	}

	method, ok := paymentMethod(choice)
	if !ok {
		fmt.Fprintln(h.out, "Invalid payment method.")
		return nil
	}

	paid, points, err := h.payments.PayForParcel(ctx, customer.ID, parcelID, method)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			fmt.Fprintln(h.out, "Parcel not found.")
		case errors.Is(err, payment.ErrNotParcelSender):
			fmt.Fprintln(h.out, "That parcel was not sent by you.")
		case errors.Is(err, payment.ErrParcelAlreadyPaid):
			fmt.Fprintln(h.out, "That parcel is already paid.")
		default:
			h.log.Error("pay for parcel", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Payment failed.")
		}
		return nil
	}

	views.PaymentReceipt(h.out, *paid, points)
	return nil
}

func (h *Handler) viewProfile(ctx context.Context, customer *entities.User) error {
	current, err := h.users.GetCustomer(ctx, customer.ID)
	if err != nil {
		h.log.Error("load profile", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Could not load profile.")
		return nil
	}
	views.CustomerProfile(h.out, *current)
	return nil
}

func isInternational(kind string) bool {
	return len(kind) > 0 && (kind[0] == 'i' || kind[0] == 'I')
}

func paymentMethod(choice int) (entities.PaymentMethodType, bool) {
	switch choice {
	case 1:
		return entities.PaymentCreditCard, true
	case 2:
		return entities.PaymentOnlineBanking, true
	case 3:
		return entities.PaymentCashOnDeliver, true
	default:
		return "", false
	}
}
