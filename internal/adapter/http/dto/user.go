package dto

type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email,max=100"`
	Username    string  `json:"username" validate:"required,max=150"`
	Password    string  `json:"password" validate:"required,min=6"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=15"`
	Designation *string `json:"designation" validate:"omitempty,max=100"`
	AccessLevel *int64  `json:"access_level" validate:"omitempty,gte=0,lte=2147483647"`
}

// LoginRequest carries both credential fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailOnlyRequest identifies a target user without re-authenticating anyone.
type EmailOnlyRequest struct {
	Email string `json:"email"`
}
