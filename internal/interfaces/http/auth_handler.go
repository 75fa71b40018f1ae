package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/repository"
)

// AuthHandler maneja el login del stub.
type AuthHandler struct {
	users repository.UserRepository
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(users repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Verifica la cabecera Basic (o el cuerpo email/password) y devuelve el perfil en un envelope.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	// La consola manda ambas cosas: cabecera Basic y cuerpo JSON. La cabecera
	// tiene prioridad; el cuerpo queda para clientes que no la construyen.
	email, password, ok := parseBasic(c.Get(fiber.HeaderAuthorization))
	if !ok {
		var in dto.LoginRequest
		if err := c.BodyParser(&in); err != nil || in.Email == "" || in.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "email y password son requeridos"})
		}
		email, password = in.Email, in.Password
	}

	user, err := h.users.FindByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{Success: false, Message: "credenciales inválidas"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{Success: false, Message: "credenciales inválidas"})
	}
	if user.Status != "" && user.Status != "active" {
		return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{Success: false, Message: "cuenta inactiva o suspendida"})
	}
	return c.JSON(dto.Envelope{Success: true, Data: user.User})
}
