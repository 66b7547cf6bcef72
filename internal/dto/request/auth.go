package request

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,numeric,min=10,max=15"`
	Address     string `json:"address" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	OTP string `json:"otp" validate:"required,numeric,min=4,max=8"`
}

// ClientMeta is copied onto the session row; it is never trusted for auth.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}
