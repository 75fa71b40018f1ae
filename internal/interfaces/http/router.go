package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/repository"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

// RouterDeps dependencias del router del stub.
type RouterDeps struct {
	Users      repository.UserRepository
	Books      repository.BookRepository
	Categories repository.CategoryRepository
	Borrows    repository.BorrowRepository
	UploadDir  string
	Log        *logger.Logger
}

// Router registra todas las rutas del API bajo /api.
//
// Reglas de acceso: el login es público; la lectura del catálogo requiere
// sesión; las mutaciones requieren librarian o admin; la gestión de usuarios
// es solo admin. Los archivos subidos se sirven estáticos bajo /uploads.
func Router(app *fiber.App, deps RouterDeps) error {
	authHandler := NewAuthHandler(deps.Users)
	bookHandler := NewBookHandler(deps.Books)
	categoryHandler := NewCategoryHandler(deps.Categories)
	userHandler := NewUserHandler(deps.Users)
	borrowHandler := NewBorrowHandler(deps.Borrows, deps.Books, deps.Users)
	dashboardHandler := NewDashboardHandler(deps.Users, deps.Books, deps.Categories, deps.Borrows)
	uploadHandler, err := NewUploadHandler(deps.UploadDir)
	if err != nil {
		return err
	}

	app.Use(MetricsMiddleware())
	app.Get("/metrics", MetricsHandler())
	app.Static("/uploads", deps.UploadDir)

	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)

	authed := api.Group("", BasicAuth(deps.Users, deps.Log))
	staff := RequireRole(entity.RoleAdmin, entity.RoleLibrarian)
	adminOnly := RequireRole(entity.RoleAdmin)

	authed.Get("/dashboard", dashboardHandler.Summary)

	authed.Get("/books", bookHandler.List)
	authed.Get("/books/:id", bookHandler.Get)
	authed.Post("/books", staff, bookHandler.Create)
	authed.Put("/books/:id", staff, bookHandler.Update)
	authed.Delete("/books/:id", staff, bookHandler.Delete)

	authed.Get("/categories", categoryHandler.List)
	authed.Get("/categories/:id", categoryHandler.Get)
	authed.Post("/categories", staff, categoryHandler.Create)
	authed.Put("/categories/:id", staff, categoryHandler.Update)
	authed.Delete("/categories/:id", staff, categoryHandler.Delete)

	authed.Get("/users", adminOnly, userHandler.List)
	authed.Get("/users/:id", adminOnly, userHandler.Get)
	authed.Post("/users", adminOnly, userHandler.Create)
	authed.Put("/users/:id", adminOnly, userHandler.Update)
	authed.Delete("/users/:id", adminOnly, userHandler.Delete)

	authed.Get("/borrows", staff, borrowHandler.List)
	authed.Get("/borrows/:id", staff, borrowHandler.Get)
	authed.Post("/borrows", staff, borrowHandler.Create)
	authed.Post("/borrows/:id/return", staff, borrowHandler.Return)

	authed.Post("/uploads", staff, uploadHandler.Upload)

	return nil
}
