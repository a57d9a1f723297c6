package dto

// RegistroRequest entrada para registro (password en texto, se hashea en el
// caso de uso).
type RegistroRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse salida de login y registro.
type TokenResponse struct {
	Token string `json:"token"`
}
