package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/repository"
)

// defaultBorrowDays plazo de préstamo cuando la petición no lo indica.
const defaultBorrowDays = 14

// BorrowHandler registro, listado y devolución de préstamos.
type BorrowHandler struct {
	borrows repository.BorrowRepository
	books   repository.BookRepository
	users   repository.UserRepository
}

// NewBorrowHandler construye el handler de préstamos.
func NewBorrowHandler(borrows repository.BorrowRepository, books repository.BookRepository, users repository.UserRepository) *BorrowHandler {
	return &BorrowHandler{borrows: borrows, books: books, users: users}
}

// List godoc
// @Summary      Listar préstamos
// @Tags         borrows
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/borrows [get]
func (h *BorrowHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "paginación inválida"})
	}
	page.DefaultPage()
	items, total, err := h.borrows.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.JSON(dto.Envelope{Success: true, Data: items, Total: total})
}

// Get devuelve un préstamo por id.
func (h *BorrowHandler) Get(c *fiber.Ctx) error {
	b, err := h.borrows.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el préstamo no existe"})
	}
	return c.JSON(dto.Envelope{Success: true, Data: b})
}

// Create godoc
// @Summary      Registrar un préstamo
// @Description  Descuenta un ejemplar disponible del libro.
// @Tags         borrows
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBorrowRequest  true  "user_id, book_id, days"
// @Success      201  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/borrows [post]
func (h *BorrowHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBorrowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.BookID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "user_id y book_id son requeridos"})
	}
	if _, err := h.users.GetByID(in.UserID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el usuario no existe"})
	}
	book, err := h.books.GetByID(in.BookID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el libro no existe"})
	}
	if book.CopiesAvailable < 1 {
		return c.Status(fiber.StatusConflict).JSON(dto.Envelope{Success: false, Message: "no hay ejemplares disponibles"})
	}

	days := in.Days
	if days <= 0 {
		days = defaultBorrowDays
	}
	now := time.Now()
	borrow := &entity.Borrow{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		BookID:     in.BookID,
		BorrowedAt: now,
		DueAt:      now.AddDate(0, 0, days),
		Status:     entity.BorrowActive,
	}
	if err := h.borrows.Create(borrow); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	book.CopiesAvailable--
	if err := h.books.Update(book); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: borrow})
}

// Return godoc
// @Summary      Devolver un préstamo
// @Description  Marca el préstamo como devuelto y repone el ejemplar.
// @Tags         borrows
// @Produce      json
// @Param        id  path  string  true  "id del préstamo"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/borrows/{id}/return [post]
func (h *BorrowHandler) Return(c *fiber.Ctx) error {
	borrow, err := h.borrows.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Message: "el préstamo no existe"})
	}
	if !borrow.IsOpen() {
		return c.Status(fiber.StatusConflict).JSON(dto.Envelope{Success: false, Message: "el préstamo ya fue devuelto"})
	}
	now := time.Now()
	borrow.ReturnedAt = &now
	borrow.Status = entity.BorrowReturned
	if err := h.borrows.Update(borrow); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	if book, err := h.books.GetByID(borrow.BookID); err == nil && book.CopiesAvailable < book.CopiesTotal {
		book.CopiesAvailable++
		_ = h.books.Update(book)
	}
	return c.JSON(dto.Envelope{Success: true, Data: borrow})
}
