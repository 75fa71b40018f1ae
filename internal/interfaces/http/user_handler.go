package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/repository"
)

// UserHandler CRUD de usuarios (rutas solo admin).
type UserHandler struct {
	users repository.UserRepository
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// publicUsers proyecta los registros sin el hash.
func publicUsers(in []*entity.ServerUser) []entity.User {
	out := make([]entity.User, 0, len(in))
	for _, u := range in {
		out = append(out, u.User)
	}
	return out
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "paginación inválida"})
	}
	page.DefaultPage()
	items, total, err := h.users.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true, Data: publicUsers(items), Total: total})
}

// Get devuelve un usuario por id.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el usuario no existe"})
	}
	return c.JSON(dto.Envelope{Success: true, Data: user.User})
}

// Create godoc
// @Summary      Crear un usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "datos del usuario"
// @Success      201  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "name, email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "password debe tener al menos 8 caracteres"})
	}
	role := in.Role
	if !entity.ValidRole(role) {
		role = entity.RoleUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	now := time.Now()
	user := &entity.ServerUser{
		User: entity.User{
			ID:             uuid.New().String(),
			Name:           in.Name,
			Email:          in.Email,
			Role:           role,
			Faculty:        in.Faculty,
			Specialization: in.Specialization,
			Status:         "active",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		PasswordHash: string(hash),
	}
	if err := h.users.Create(user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.Envelope{Success: false, Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: user.User})
}

// Update actualiza un usuario.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el usuario no existe"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "cuerpo inválido"})
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" && entity.ValidRole(in.Role) {
		user.Role = in.Role
	}
	if in.Faculty != "" {
		user.Faculty = in.Faculty
	}
	if in.Specialization != "" {
		user.Specialization = in.Specialization
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true, Data: user.User})
}

// Delete elimina un usuario.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el usuario no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true})
}
