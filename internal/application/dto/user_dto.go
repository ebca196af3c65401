package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SafeUserDTO identidad reducida: nunca incluye el hash.
type SafeUserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token de sesión más la identidad reducida.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SafeUserDTO `json:"user"`
}

// SeedAdminRequest entrada para sembrar la cuenta admin (idempotente).
type SeedAdminRequest struct {
	Password string `json:"password"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el caso de uso).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin, operator
}

// UpdateUserRequest entrada para actualización parcial de un usuario.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserListItemDTO salida de listado de usuarios (sin hash).
type UserListItemDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
