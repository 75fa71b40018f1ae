package auth

import (
	"strings"

	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

// Resolver centraliza la derivación de roles. Todo sitio que necesite un rol
// por defecto pasa por aquí; el caso especial del administrador de arranque
// no se reimplementa en ningún otro lugar.
type Resolver struct {
	bootstrapAdmin string
}

// NewResolver construye el resolvedor con el principal del administrador de
// arranque (la única cuenta con rol admin implícito).
func NewResolver(bootstrapAdmin string) *Resolver {
	return &Resolver{bootstrapAdmin: bootstrapAdmin}
}

// BootstrapAdmin devuelve el principal distinguido.
func (r *Resolver) BootstrapAdmin() string {
	return r.bootstrapAdmin
}

// IsBootstrapAdmin indica si principal es la cuenta de arranque
// (comparación de emails sin distinguir mayúsculas).
func (r *Resolver) IsBootstrapAdmin(principal string) bool {
	return r.bootstrapAdmin != "" && strings.EqualFold(principal, r.bootstrapAdmin)
}

// DefaultRoleFor es la política de rol por defecto: admin para el principal
// de arranque, user para cualquier otro. Función pura.
func (r *Resolver) DefaultRoleFor(principal string) string {
	if r.IsBootstrapAdmin(principal) {
		return entity.RoleAdmin
	}
	return entity.RoleUser
}

// Resolve devuelve el rol del perfil si es uno de los roles válidos; en caso
// contrario aplica DefaultRoleFor. Un rol ausente nunca es estado terminal.
func (r *Resolver) Resolve(profile *entity.User, principal string) string {
	if profile != nil && entity.ValidRole(profile.Role) {
		return profile.Role
	}
	return r.DefaultRoleFor(principal)
}
