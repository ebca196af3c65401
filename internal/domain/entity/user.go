package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// AdminUsername cuenta reservada: se siembra al arranque y no puede borrarse.
const AdminUsername = "admin"

// ValidRole indica si el rol pertenece a la enumeración fija.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOperator
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca sale del dominio hacia la GUI
	Role         string // admin, operator
	CreatedAt    string
	UpdatedAt    string
}

// SafeUser identidad reducida que viaja en la sesión: sin hash.
type SafeUser struct {
	ID       int64
	Username string
	Role     string
}

// Safe devuelve la identidad reducida del usuario.
func (u *User) Safe() SafeUser {
	return SafeUser{ID: u.ID, Username: u.Username, Role: u.Role}
}

// UserPatch campos opcionales para actualización parcial. PasswordHash ya
// viene hasheado desde el caso de uso.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Role         *string
}
