package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/repository"
)

// DashboardHandler contadores agregados del sistema.
type DashboardHandler struct {
	users      repository.UserRepository
	books      repository.BookRepository
	categories repository.CategoryRepository
	borrows    repository.BorrowRepository
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(users repository.UserRepository, books repository.BookRepository, categories repository.CategoryRepository, borrows repository.BorrowRepository) *DashboardHandler {
	return &DashboardHandler{users: users, books: books, categories: categories, borrows: borrows}
}

// Summary godoc
// @Summary      Métricas del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(dto.Envelope{Success: true, Data: dto.DashboardSummary{
		Books:          h.books.Count(),
		Categories:     h.categories.Count(),
		Users:          h.users.Count(),
		ActiveBorrows:  h.borrows.CountByStatus(entity.BorrowActive),
		OverdueBorrows: h.borrows.CountByStatus(entity.BorrowOverdue),
	}})
}
