// Package login_menu owns the top level menu loop and routes authenticated
// users to their dashboards.
package login_menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"courier-system/internal/entities"
	"courier-system/internal/pkg/console"
	"courier-system/internal/service/user"
	"courier-system/internal/views"
	"courier-system/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	reader    *console.Reader
	out       io.Writer
	users     UserService
	customers UserDashboard
	staff     UserDashboard
	admin     AdminDashboard
}

func New(
	log handlerLogger,
	reader *console.Reader,
	out io.Writer,
	users UserService,
	customers UserDashboard,
	staff UserDashboard,
	admin AdminDashboard,
) *Handler {
	return &Handler{
		log:       log.With(logger.NewField("menu", "login")),
		reader:    reader,
		out:       out,
		users:     users,
		customers: customers,
		staff:     staff,
		admin:     admin,
	}
}

// Run loops on the main menu until the user exits or input ends.
func (h *Handler) Run(ctx context.Context) error {
	for {
		views.MainMenu(h.out)

		choice, err := h.reader.ReadInt("Select option: ")
		if err != nil {
			if errors.Is(err, console.ErrNotANumber) {
				fmt.Fprintln(h.out, "Please enter a number.")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case 1:
			err = h.customerLogin(ctx)
		case 2:
			err = h.registerCustomer(ctx)
		case 3:
			err = h.staffLogin(ctx)
		case 4:
			err = h.adminLogin(ctx)
		case 5:
			fmt.Fprintln(h.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid option.")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *Handler) customerLogin(ctx context.Context) error {
	userEntity, err := h.login(ctx, entities.UserKindCustomer)
	if err != nil || userEntity == nil {
		return err
	}
	h.log.Info("customer logged in", logger.NewField("id", userEntity.ID))
	return h.customers.Run(ctx, userEntity)
}

func (h *Handler) staffLogin(ctx context.Context) error {
	userEntity, err := h.login(ctx, entities.UserKindStaff)
	if err != nil || userEntity == nil {
		return err
	}
	h.log.Info("staff logged in", logger.NewField("id", userEntity.ID))
	return h.staff.Run(ctx, userEntity)
}

func (h *Handler) login(ctx context.Context, kind entities.UserKind) (*entities.User, error) {
	id, err := h.reader.ReadLine("ID: ")
	if err != nil {
		return nil, err
	}
	password, err := h.reader.ReadLine("Password: ")
	if err != nil {
		return nil, err
	}

	userEntity, err := h.users.Authenticate(ctx, kind, id, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			fmt.Fprintln(h.out, "Invalid credentials.")
			return nil, nil
		}
		h.log.Error("authenticate", logger.NewField("error", err))
		fmt.Fprintln(h.out, "Login failed.")
		return nil, nil
	}
	return userEntity, nil
}

func (h *Handler) adminLogin(ctx context.Context) error {
	username, err := h.reader.ReadLine("Username: ")
	if err != nil {
		return err
	}
	password, err := h.reader.ReadLine("Password: ")
	if err != nil {
		return err
	}

	if !h.users.ValidateAdminLogin(username, password) {
		fmt.Fprintln(h.out, "Invalid credentials.")
		return nil
	}

	h.log.Info("admin logged in")
	return h.admin.Run(ctx)
}

func (h *Handler) registerCustomer(ctx context.Context) error {
	views.SectionHeader(h.out, "CUSTOMER REGISTRATION")

	suggested, err := h.nextCustomerID(ctx)
	if err == nil && suggested != "" {
		fmt.Fprintf(h.out, "Suggested ID: %s\n", suggested)
	}

	id, err := h.reader.ReadLine("Customer ID (C###): ")
	if err != nil {
		return err
	}
	name, err := h.reader.ReadLine("Name: ")
	if err != nil {
		return err
	}
	email, err := h.reader.ReadLine("Email: ")
	if err != nil {
		return err
	}
	password, err := h.reader.ReadLine("Password (min 6 chars): ")
	if err != nil {
		return err
	}
	phone, err := h.reader.ReadLine("Phone (e.g. 012-3456789): ")
	if err != nil {
		return err
	}
	address, err := h.reader.ReadLine("Address: ")
	if err != nil {
		return err
	}

	created, err := h.users.RegisterCustomer(ctx, entities.UserModify{
		ID:       &id,
		Name:     &name,
		Email:    &email,
		Password: &password,
		Phone:    &phone,
		Address:  &address,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCustomerID):
			fmt.Fprintln(h.out, "Customer ID must look like C001.")
		case errors.Is(err, user.ErrInvalidName):
			fmt.Fprintln(h.out, "Name must be 2 to 50 characters.")
		case errors.Is(err, user.ErrInvalidEmail):
			fmt.Fprintln(h.out, "Email address is not valid.")
		case errors.Is(err, user.ErrInvalidPassword):
			fmt.Fprintln(h.out, "Password must be at least 6 characters.")
		case errors.Is(err, user.ErrInvalidPhone):
			fmt.Fprintln(h.out, "Phone must be 10-11 digits starting with 01X.")
		case errors.Is(err, user.ErrInvalidAddress):
			fmt.Fprintln(h.out, "Address must be at least 10 characters.")
		case errors.Is(err, user.ErrConflict):
			fmt.Fprintln(h.out, "That customer ID is taken.")
		default:
			h.log.Error("register customer", logger.NewField("error", err))
			fmt.Fprintln(h.out, "Registration failed.")
		}
		return nil
	}

	fmt.Fprintf(h.out, "Welcome, %s. Your customer ID is %s.\n", created.Name, created.ID)
	return nil
}

func (h *Handler) nextCustomerID(ctx context.Context) (string, error) {
	customers, err := h.users.GetCustomers(ctx)
	if err != nil {
		return "", err
	}

	max := 0
	for _, c := range customers {
		suffix, ok := strings.CutPrefix(c.ID, "C")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("C%03d", max+1), nil
}
