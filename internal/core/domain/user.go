package domain

// UserRole controls what an operator may do. Admins manage the chart of
// accounts, staff and credit sales; cashiers run the till.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCashier UserRole = "cashier"
)

// User is a staff member who can sign in.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}
