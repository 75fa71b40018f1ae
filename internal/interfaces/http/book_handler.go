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

// BookHandler CRUD de libros.
type BookHandler struct {
	books repository.BookRepository
}

// NewBookHandler construye el handler de libros.
func NewBookHandler(books repository.BookRepository) *BookHandler {
	return &BookHandler{books: books}
}

// List godoc
// @Summary      Listar libros
// @Tags         books
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /api/books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "paginación inválida"})
	}
	page.DefaultPage()
	items, total, err := h.books.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true, Data: items, Total: total})
}

// Get godoc
// @Summary      Obtener un libro
// @Tags         books
// @Produce      json
// @Param        id  path  string  true  "id del libro"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c *fiber.Ctx) error {
	book, err := h.books.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el libro no existe"})
	}
	return c.JSON(dto.Envelope{Success: true, Data: book})
}

// Create godoc
// @Summary      Crear un libro
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "datos del libro"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Author == "" || in.CopiesTotal < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "title, author y copies_total son requeridos"})
	}
	now := time.Now()
	book := &entity.Book{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		CategoryID:      in.CategoryID,
		CopiesTotal:     in.CopiesTotal,
		CopiesAvailable: in.CopiesTotal,
		Status:          "active",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.books.Create(book); err != nil {
		return c.Status(fiber.StatusConflict).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: book})
}

// Update godoc
// @Summary      Actualizar un libro
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del libro"
// @Param        body  body  dto.UpdateBookRequest  true  "campos a cambiar"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	book, err := h.books.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el libro no existe"})
	}
	var in dto.UpdateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "cuerpo inválido"})
	}
	if in.Title != "" {
		book.Title = in.Title
	}
	if in.Author != "" {
		book.Author = in.Author
	}
	if in.ISBN != "" {
		book.ISBN = in.ISBN
	}
	if in.CategoryID != "" {
		book.CategoryID = in.CategoryID
	}
	if in.CopiesTotal > 0 {
		// Mantener la diferencia prestada al cambiar el total.
		borrowed := book.CopiesTotal - book.CopiesAvailable
		book.CopiesTotal = in.CopiesTotal
		book.CopiesAvailable = in.CopiesTotal - borrowed
		if book.CopiesAvailable < 0 {
			book.CopiesAvailable = 0
		}
	}
	if in.Status != "" {
		book.Status = in.Status
	}
	if err := h.books.Update(book); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true, Data: book})
}

// Delete godoc
// @Summary      Eliminar un libro
// @Tags         books
// @Produce      json
// @Param        id  path  string  true  "id del libro"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	if err := h.books.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el libro no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true})
}
