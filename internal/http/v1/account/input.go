package account

// RegisterInput for POST /auth/register.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Username string `json:"username" validate:"omitempty,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=200"`
}

// LoginInput for POST /auth/login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DeleteInput for DELETE /account. The password re-proves the identity
// before anything is destroyed.
type DeleteInput struct {
	Password string `json:"password" validate:"required"`
}
