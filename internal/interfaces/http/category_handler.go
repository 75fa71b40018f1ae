package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/repository"
)

// CategoryHandler CRUD de categorías.
type CategoryHandler struct {
	categories repository.CategoryRepository
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(categories repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "paginación inválida"})
	}
	page.DefaultPage()
	items, total, err := h.categories.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true, Data: items, Total: total})
}

// Get devuelve una categoría por id.
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	cat, err := h.categories.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "la categoría no existe"})
	}
	return c.JSON(dto.Envelope{Success: true, Data: cat})
}

// Create godoc
// @Summary      Crear una categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "datos de la categoría"
// @Success      201  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "name es requerido"})
	}
	now := time.Now()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.categories.Create(cat); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.Envelope{Success: false, Message: "ya existe una categoría con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: cat})
}

// Update actualiza una categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	cat, err := h.categories.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "la categoría no existe"})
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "cuerpo inválido"})
	}
	if in.Name != "" {
		cat.Name = in.Name
	}
	if in.Description != "" {
		cat.Description = in.Description
	}
	if in.Status != "" {
		cat.Status = in.Status
	}
	if err := h.categories.Update(cat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true, Data: cat})
}

// Delete elimina una categoría.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "la categoría no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true})
}
