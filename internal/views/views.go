// Package views renders the terminal output of the menu handlers. All
// functions write plain ASCII to the given writer and hold no state.
package views

import (
	"fmt"
	"io"
	"strings"

	"courier-system/internal/entities"
)

const headerWidth = 50

func SectionHeader(w io.Writer, title string) {
	line := strings.Repeat("=", headerWidth)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, line)
}

func MainMenu(w io.Writer) {
	SectionHeader(w, "COURIER MANAGEMENT SYSTEM")
	fmt.Fprintln(w, "1. Customer Login")
	fmt.Fprintln(w, "2. Customer Registration")
	fmt.Fprintln(w, "3. Staff Login")
	fmt.Fprintln(w, "4. Admin Login")
	fmt.Fprintln(w, "5. Exit")
}

func CustomerMenu(w io.Writer, name string) {
	SectionHeader(w, fmt.Sprintf("CUSTOMER DASHBOARD - %s", name))
	fmt.Fprintln(w, "1. Send Parcel")
	fmt.Fprintln(w, "2. View My Parcels")
	fmt.Fprintln(w, "3. Track Parcel")
	fmt.Fprintln(w, "4. Pay for Parcel")
	fmt.Fprintln(w, "5. View Profile")
	fmt.Fprintln(w, "6. Parcel Types Info")
	fmt.Fprintln(w, "7. Logout")
}

func StaffMenu(w io.Writer, name string) {
	SectionHeader(w, fmt.Sprintf("STAFF DASHBOARD - %s", name))
	fmt.Fprintln(w, "1. View My Deliveries")
	fmt.Fprintln(w, "2. Update Parcel Status")
	fmt.Fprintln(w, "3. Complete Delivery")
	fmt.Fprintln(w, "4. View All Parcels")
	fmt.Fprintln(w, "5. View Vehicles")
	fmt.Fprintln(w, "6. Toggle Availability")
	fmt.Fprintln(w, "7. View Profile")
	fmt.Fprintln(w, "8. Logout")
}

func AdminMenu(w io.Writer) {
	SectionHeader(w, "ADMIN DASHBOARD")
	fmt.Fprintln(w, "1. View All Parcels")
	fmt.Fprintln(w, "2. View All Deliveries")
	fmt.Fprintln(w, "3. View All Customers")
	fmt.Fprintln(w, "4. View All Staff")
	fmt.Fprintln(w, "5. Add Staff Member")
	fmt.Fprintln(w, "6. Add Vehicle")
	fmt.Fprintln(w, "7. View Vehicles")
	fmt.Fprintln(w, "8. Assign Staff to Delivery")
	fmt.Fprintln(w, "9. Assign Vehicle to Delivery")
	fmt.Fprintln(w, "10. Release Vehicle")
	fmt.Fprintln(w, "11. Update Delivery Status")
	fmt.Fprintln(w, "12. View Statistics")
	fmt.Fprintln(w, "13. Payment Summary")
	fmt.Fprintln(w, "14. System Report")
	fmt.Fprintln(w, "15. Logout")
}

func CustomerProfile(w io.Writer, u entities.User) {
	SectionHeader(w, "MY PROFILE")
	fmt.Fprintf(w, "ID:             %s\n", u.ID)
	fmt.Fprintf(w, "Name:           %s\n", u.Name)
	fmt.Fprintf(w, "Email:          %s\n", u.Email)
	fmt.Fprintf(w, "Phone:          %s\n", u.Phone)
	fmt.Fprintf(w, "Address:        %s\n", u.Address)
	fmt.Fprintf(w, "Loyalty Points: %d\n", u.LoyaltyPoints)
}

func StaffProfile(w io.Writer, u entities.User) {
	SectionHeader(w, "MY PROFILE")
	fmt.Fprintf(w, "ID:        %s\n", u.ID)
	fmt.Fprintf(w, "Name:      %s\n", u.Name)
	fmt.Fprintf(w, "Email:     %s\n", u.Email)
	fmt.Fprintf(w, "Phone:     %s\n", u.Phone)
	fmt.Fprintf(w, "Role:      %s\n", u.Role)
	fmt.Fprintf(w, "Salary:    %.2f\n", u.Salary)
	fmt.Fprintf(w, "Available: %s\n", yesNo(u.Available))
}

func ParcelSummary(w io.Writer, p entities.Parcel) {
	fmt.Fprintf(w, "%s | %-13s | %6.2fkg | %-12s | %s -> %s | RM%.2f\n",
		p.ID, p.Kind, p.Weight, p.Dimensions, p.SenderID, p.ReceiverID, p.Price)
	fmt.Fprintf(w, "     Status: %s | %s\n", p.Status, p.Description)
	if p.Kind == entities.ExpressParcel {
		fmt.Fprintf(w, "     Urgent Fee: RM%.2f\n", p.UrgentFee)
	}
	if p.Kind == entities.InternationalParcel {
		fmt.Fprintf(w, "     Customs Fee: RM%.2f | Destination: %s\n", p.CustomsFee, p.DestinationCountry)
	}
}

func ParcelList(w io.Writer, parcels []entities.Parcel) {
	if len(parcels) == 0 {
		fmt.Fprintln(w, "No parcels found.")
		return
	}
	for _, p := range parcels {
		ParcelSummary(w, p)
	}
}

func DeliveryInfo(w io.Writer, d entities.Delivery) {
	fmt.Fprintf(w, "%s | Parcel: %s | Staff: %s | Vehicle: %s\n",
		d.ID, d.ParcelID, orDash(d.StaffID), orDash(d.VehicleID))
	fmt.Fprintf(w, "     Status: %s | Route: %s\n", d.Status, d.Route)
	fmt.Fprintf(w, "     Created: %s | Estimated: %s\n",
		d.CreatedAt.Format("2006-01-02 15:04"), d.EstimatedTime.Format("2006-01-02 15:04"))
}

func DeliveryList(w io.Writer, deliveries []entities.Delivery) {
	if len(deliveries) == 0 {
		fmt.Fprintln(w, "No deliveries found.")
		return
	}
	for _, d := range deliveries {
		DeliveryInfo(w, d)
	}
}

func VehicleInfo(w io.Writer, v entities.Vehicle) {
	fmt.Fprintf(w, "%s | %-10s | %s | Capacity: %.1fkg | Available: %s",
		v.ID, v.Type, v.Plate, v.Capacity, yesNo(v.Available))
	if v.CurrentDeliveryID != "" {
		fmt.Fprintf(w, " | Delivery: %s", v.CurrentDeliveryID)
	}
	fmt.Fprintln(w)
}

func VehicleList(w io.Writer, vehicles []entities.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(w, "No vehicles found.")
		return
	}
	for _, v := range vehicles {
		VehicleInfo(w, v)
	}
}

func UserList(w io.Writer, users []entities.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	for _, u := range users {
		if u.IsCustomer() {
			fmt.Fprintf(w, "%s | %-20s | %s | %s | Points: %d\n",
				u.ID, u.Name, u.Email, u.Phone, u.LoyaltyPoints)
			continue
		}
		fmt.Fprintf(w, "%s | %-20s | %-18s | RM%.2f | Available: %s\n",
			u.ID, u.Name, u.Role, u.Salary, yesNo(u.Available))
	}
}

func PaymentReceipt(w io.Writer, p entities.Payment, points int) {
	SectionHeader(w, "PAYMENT RECEIPT")
	fmt.Fprintf(w, "Payment ID: %s\n", p.ID)
	fmt.Fprintf(w, "Parcel ID:  %s\n", p.ParcelID)
	fmt.Fprintf(w, "Amount:     RM%.2f\n", p.Amount)
	fmt.Fprintf(w, "Method:     %s\n", p.Method)
	fmt.Fprintf(w, "Status:     %s\n", p.Status)
	fmt.Fprintf(w, "Date:       %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Loyalty points earned: %d\n", points)
}

func PaymentSummary(w io.Writer, s entities.PaymentSummary) {
	SectionHeader(w, "PAYMENT SUMMARY")
	fmt.Fprintf(w, "Total Revenue:      RM%.2f\n", s.TotalRevenue)
	fmt.Fprintf(w, "Pending Amount:     RM%.2f\n", s.PendingAmount)
	fmt.Fprintf(w, "Completed Payments: %d\n", s.CompletedCount)
	fmt.Fprintf(w, "Pending Payments:   %d\n", s.PendingCount)
	if len(s.Recent) == 0 {
		return
	}
	fmt.Fprintln(w, "Recent payments:")
	for _, p := range s.Recent {
		fmt.Fprintf(w, "  %s | %s | RM%.2f | %s | %s\n",
			p.ID, p.ParcelID, p.Amount, p.Method, p.Status)
	}
}

func ParcelTypes(w io.Writer) {
	SectionHeader(w, "PARCEL TYPES AND PRICING")
	fmt.Fprintln(w, "Standard      : RM8.00 base + RM2.50/kg")
	fmt.Fprintln(w, "Express       : RM15.00 base + RM4.00/kg + urgent fee (RM10.00 + RM1.50/kg)")
	fmt.Fprintln(w, "International : RM25.00 base + RM8.00/kg + customs fee (RM5.00/kg)")
}

var parcelStatusOrder = []entities.ParcelStatusType{
	entities.ParcelCreated,
	entities.ParcelPaidProcessing,
	entities.ParcelProcessing,
	entities.ParcelInTransit,
	entities.ParcelOutForDelivery,
	entities.ParcelDelivered,
	entities.ParcelReturned,
}

// SystemStatistics is a view level aggregate assembled by the admin handler.
type SystemStatistics struct {
	TotalParcels    int
	ParcelsByStatus map[entities.ParcelStatusType]int
	TotalValue      float64
	TotalDeliveries int
	TotalCustomers  int
	TotalStaff      int
	Staff           []entities.StaffStatistics
}

func Statistics(w io.Writer, s SystemStatistics) {
	SectionHeader(w, "SYSTEM STATISTICS")
	fmt.Fprintf(w, "Total Parcels:    %d\n", s.TotalParcels)
	fmt.Fprintf(w, "Total Value:      RM%.2f\n", s.TotalValue)
	fmt.Fprintf(w, "Total Deliveries: %d\n", s.TotalDeliveries)
	fmt.Fprintf(w, "Customers:        %d\n", s.TotalCustomers)
	fmt.Fprintf(w, "Staff:            %d\n", s.TotalStaff)
	for _, status := range parcelStatusOrder {
		if count, ok := s.ParcelsByStatus[status]; ok {
			fmt.Fprintf(w, "  %-18s %d\n", status.String()+":", count)
		}
	}
	if len(s.Staff) == 0 {
		return
	}
	fmt.Fprintln(w, "Staff performance:")
	for _, stat := range s.Staff {
		fmt.Fprintf(w, "  %s | deliveries: %d | completed: %d | success: %.1f%%\n",
			stat.StaffID, stat.Total, stat.Completed, stat.SuccessRate())
	}
}

var parcelKindOrder = []entities.ParcelKind{
	entities.StandardParcel,
	entities.ExpressParcel,
	entities.InternationalParcel,
}

// SystemReport extends the statistics with fleet utilization and the
// customer and parcel highlights shown on the admin report.
type SystemReport struct {
	Stats               SystemStatistics
	ParcelsByKind       map[entities.ParcelKind]int
	CompletedDeliveries int
	VehiclesInUse       int
	TotalVehicles       int
	Revenue             float64
	PendingAmount       float64
	TopCustomers        []entities.User
	RecentParcels       []entities.Parcel
}

func Report(w io.Writer, r SystemReport) {
	SectionHeader(w, "SYSTEM REPORT")
	Statistics(w, r.Stats)

	fmt.Fprintln(w, "Parcels by type:")
	for _, kind := range parcelKindOrder {
		if count, ok := r.ParcelsByKind[kind]; ok {
			fmt.Fprintf(w, "  %-15s %d\n", kind.String()+":", count)
		}
	}

	fmt.Fprintf(w, "Delivery completion: %d of %d\n", r.CompletedDeliveries, r.Stats.TotalDeliveries)
	fmt.Fprintf(w, "Vehicles in use:     %d of %d\n", r.VehiclesInUse, r.TotalVehicles)
	fmt.Fprintf(w, "Total Revenue:       RM%.2f\n", r.Revenue)
	fmt.Fprintf(w, "Pending Amount:      RM%.2f\n", r.PendingAmount)

	if len(r.TopCustomers) > 0 {
		fmt.Fprintln(w, "Top customers by loyalty points:")
		for _, c := range r.TopCustomers {
			fmt.Fprintf(w, "  %s | %-20s | Points: %d\n", c.ID, c.Name, c.LoyaltyPoints)
		}
	}
	if len(r.RecentParcels) > 0 {
		fmt.Fprintln(w, "Latest parcels:")
		for _, p := range r.RecentParcels {
			fmt.Fprintf(w, "  %s | %s | %s | RM%.2f | %s\n",
				p.ID, p.Kind, p.Description, p.Price, p.Status)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
