package entity

import "time"

// Roles válidos para User. Conjunto cerrado: todo perfil persistido debe
// resolver a exactamente uno de estos antes de cualquier decisión de acceso.
const (
	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"
	RoleUser      = "user"
)

// ValidRole indica si r pertenece al conjunto cerrado de roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleLibrarian || r == RoleUser
}

// User representa el perfil de un usuario del sistema bibliotecario.
// Es la misma forma que viaja por el API y la que se serializa en el
// almacén local de credenciales.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"` // admin, librarian, user
	Faculty        string    `json:"faculty,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Avatar         string    `json:"avatar,omitempty"` // URL o ruta relativa de la imagen
	Status         string    `json:"status,omitempty"` // active, inactive
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}
