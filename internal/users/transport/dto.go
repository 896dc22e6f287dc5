package transport

type CreateUserRequest struct {
	FullName string  `json:"fullName" validate:"required,max=200"`
	Email    string  `json:"email" validate:"required,email"`
	Role     string  `json:"role" validate:"required,oneof=admin sales_manager sales_rep"`
	Region   string  `json:"region" validate:"max=100"`
	Quota    float64 `json:"quota" validate:"min=0"`
}
