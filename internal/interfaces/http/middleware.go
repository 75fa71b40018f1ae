package http

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/repository"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

// Locals keys en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserRole  = "user_role"
)

// BasicAuth valida la cabecera Authorization: Basic contra el repositorio de
// usuarios (bcrypt) y deja id/email/rol en c.Locals. La cabecera X-User-Role
// que manda el cliente es solo una pista: se registra la discrepancia pero la
// decisión de rol se toma siempre con el registro del servidor.
func BasicAuth(users repository.UserRepository, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		email, password, ok := parseBasic(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_CREDENTIALS", Message: "cabecera Authorization: Basic requerida"})
		}
		user, err := users.FindByEmail(email)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		}
		if user.Status != "" && user.Status != "active" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
		}
		if hint := c.Get("X-User-Role"); hint != "" && hint != user.Role {
			log.Debug().Str("email", email).Str("hint", hint).Str("role", user.Role).Msg("pista de rol del cliente no coincide")
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// parseBasic decodifica "Basic base64(email:password)".
func parseBasic(header string) (email, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" {
		return "", "", false
	}
	return email, password, true
}

// RequireRole autoriza el acceso a los roles indicados (después de BasicAuth).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "sin rol asignado"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "su rol no permite esta operación"})
	}
}

// GetUserID devuelve el id del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserEmail devuelve el email del usuario autenticado.
func GetUserEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserEmail).(string)
	return s
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserRole).(string)
	return s
}
