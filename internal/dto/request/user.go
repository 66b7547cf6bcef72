package request

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=customer staff delivery admin"`
}

type ListUsersRequest struct {
	PaginatedRequest
	Role   string `json:"role" validate:"omitempty,oneof=customer staff delivery admin"`
	Search string `json:"search" validate:"omitempty,max=100"`
}
