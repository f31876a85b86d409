package entities

// AdminID is the reserved staff identifier for the administrator account.
// It is excluded from staff listings, statistics and delivery assignment.
const AdminID = "ADMIN"

type User struct {
	ID       string
	Kind     UserKind
	Name     string
	Email    string
	Password string
	Phone    string

	// customer fields
	Address       string
	LoyaltyPoints int

	// staff fields
	Role      string
	Salary    float64
	Available bool
}

type UserKind string

const (
	UserKindCustomer UserKind = "customer"
	UserKindStaff    UserKind = "staff"
)

func (k UserKind) String() string {
	return string(k)
}

// ValidateLogin checks the supplied password by literal equality.
func (u *User) ValidateLogin(password string) bool {
	return u.Password == password
}

func (u *User) IsCustomer() bool {
	return u.Kind == UserKindCustomer
}

func (u *User) IsStaff() bool {
	return u.Kind == UserKindStaff
}

type UserModify struct {
	ID            *string
	Name          *string
	Email         *string
	Password      *string
	Phone         *string
	Address       *string
	LoyaltyPoints *int
	Role          *string
	Salary        *float64
	Available     *bool
}
