package localstore

import (
	"encoding/json"

	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

// Claves persistidas. Mismas cuatro claves que usaba la consola original en
// el storage del navegador.
const (
	KeyPrincipal     = "auth_email"
	KeySecret        = "auth_password"
	KeyProfile       = "auth_user"
	KeyAuthenticated = "isAuthenticated"
)

// DefaultRoleFunc asigna un rol por defecto a un principal sin rol explícito.
// Se inyecta desde el resolvedor de roles para no duplicar la política aquí.
type DefaultRoleFunc func(principal string) string

// Credentials es el dueño exclusivo del registro de credenciales persistido:
// principal, secreto (en claro, comportamiento preservado deliberadamente),
// perfil serializado y bandera de autenticación.
type Credentials struct {
	store       Store
	defaultRole DefaultRoleFunc
	log         *logger.Logger
}

// NewCredentials construye el registro de credenciales sobre un Store.
func NewCredentials(store Store, defaultRole DefaultRoleFunc, log *logger.Logger) *Credentials {
	if log == nil {
		log = logger.Nop()
	}
	return &Credentials{store: store, defaultRole: defaultRole, log: log}
}

// Save valida y persiste credenciales y perfil, marcando la sesión como
// autenticada. Si el perfil no trae un rol válido se rellena con la política
// por defecto antes de persistir.
func (c *Credentials) Save(principal, secret string, profile *entity.User) error {
	if principal == "" || secret == "" || profile == nil {
		return domain.ErrInvalidInput
	}
	if !entity.ValidRole(profile.Role) {
		profile.Role = c.defaultRole(principal)
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := c.store.Set(KeyPrincipal, principal); err != nil {
		return err
	}
	if err := c.store.Set(KeySecret, secret); err != nil {
		return err
	}
	if err := c.store.Set(KeyProfile, string(raw)); err != nil {
		return err
	}
	return c.store.Set(KeyAuthenticated, "true")
}

// Clear elimina las cuatro claves. Idempotente: limpiar un almacén vacío no
// es un error.
func (c *Credentials) Clear() {
	_ = c.store.Delete(KeyPrincipal)
	_ = c.store.Delete(KeySecret)
	_ = c.store.Delete(KeyProfile)
	_ = c.store.Delete(KeyAuthenticated)
}

// IsAuthenticated devuelve true solo si la bandera está puesta Y principal y
// secreto están presentes. Invariante auto-reparable: ante cualquier
// inconsistencia limpia el almacén y devuelve false.
func (c *Credentials) IsAuthenticated() bool {
	flag, _ := c.store.Get(KeyAuthenticated)
	principal, _ := c.store.Get(KeyPrincipal)
	secret, _ := c.store.Get(KeySecret)

	if flag != "true" {
		return false
	}
	if principal == "" || secret == "" {
		c.log.Warn().Msg("estado de sesión corrupto, limpiando almacén local")
		c.Clear()
		return false
	}
	return true
}

// CurrentProfile devuelve el perfil deserializado o nil. Un fallo de
// deserialización se registra (no se propaga) y se intenta una reconstrucción
// mínima a partir del principal con el rol por defecto.
func (c *Credentials) CurrentProfile() *entity.User {
	raw, ok := c.store.Get(KeyProfile)
	if !ok || raw == "" {
		return nil
	}
	var u entity.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		c.log.Warn().Err(err).Msg("perfil almacenado ilegible")
		principal, _ := c.store.Get(KeyPrincipal)
		if principal == "" {
			return nil
		}
		return &entity.User{
			Name:  principal,
			Email: principal,
			Role:  c.defaultRole(principal),
		}
	}
	return &u
}

// Principal devuelve el principal almacenado ("" si no hay).
func (c *Credentials) Principal() string {
	v, _ := c.store.Get(KeyPrincipal)
	return v
}

// Secret devuelve el secreto almacenado ("" si no hay).
func (c *Credentials) Secret() string {
	v, _ := c.store.Get(KeySecret)
	return v
}
