package auth

import (
	"encoding/base64"

	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/localstore"
)

// Nombres de cabeceras enviadas en cada petición autenticada.
const (
	HeaderAuthorization = "Authorization"
	// HeaderRole es una pista consultiva para el backend; la decisión de
	// autorización autoritativa es siempre del servidor.
	HeaderRole = "X-User-Role"
)

// HeaderBuilder construye las cabeceras de autorización por petición a partir
// del almacén de credenciales.
type HeaderBuilder struct {
	creds *localstore.Credentials
	roles *Resolver
}

// NewHeaderBuilder construye el builder.
func NewHeaderBuilder(creds *localstore.Credentials, roles *Resolver) *HeaderBuilder {
	return &HeaderBuilder{creds: creds, roles: roles}
}

// Build devuelve las cabeceras para la siguiente petición, o nil si falta el
// principal o el secreto (el llamador decide si intenta la llamada anónima o
// la aborta).
func (b *HeaderBuilder) Build() map[string]string {
	principal := b.creds.Principal()
	secret := b.creds.Secret()
	if principal == "" || secret == "" {
		return nil
	}
	return map[string]string{
		HeaderAuthorization: BasicCredential(principal, secret),
		HeaderRole:          b.roles.Resolve(b.creds.CurrentProfile(), principal),
	}
}

// BasicCredential codifica principal:secret como credencial Basic.
func BasicCredential(principal, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(principal+":"+secret))
}
