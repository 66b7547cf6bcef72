package entity

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleDelivery Role = "delivery"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

// Profile is GET /api/user/profile/ as the upstream returns it.
type Profile struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	IsEmailVerified bool   `json:"is_email_verified"`
}

// User is one row of the admin user list.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

type Driver struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenPair is what /api/token/ issues.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Role    Role   `json:"role"`
}

// Registration is the body of /api/user/create/.
type Registration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// UserUpdate is what the admin edit form sends back.
type UserUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
