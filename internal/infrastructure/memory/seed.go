package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

// Repos agrupa los repositorios del stub.
type Repos struct {
	Users      *UserRepo
	Books      *BookRepo
	Categories *CategoryRepo
	Borrows    *BorrowRepo
}

// NewRepos crea el conjunto de repositorios vacíos.
func NewRepos() *Repos {
	return &Repos{
		Users:      NewUserRepo(),
		Books:      NewBookRepo(),
		Categories: NewCategoryRepo(),
		Borrows:    NewBorrowRepo(),
	}
}

// SeedDemo carga los datos de demostración con los que arranca el stub:
// tres usuarios (uno por rol), categorías y catálogo mínimos y un préstamo
// activo. Las contraseñas sembradas son de desarrollo.
func (r *Repos) SeedDemo() error {
	seedUsers := []struct {
		name, email, password, role, faculty string
	}{
		// La cuenta de arranque también existe del lado del servidor: el
		// cliente la autentica localmente con cualquier secreto, pero las
		// operaciones de recurso solo pasan si el secreto coincide aquí.
		{"Administrador", "admin@biblioteca.edu", "admin12345", entity.RoleAdmin, ""},
		{"Laura Gómez", "laura@biblioteca.edu", "bibliotecaria1", entity.RoleLibrarian, ""},
		{"Carlos Pérez", "carlos@uni.edu", "estudiante123", entity.RoleUser, "Ingeniería"},
		{"Ana Ruiz", "ana@uni.edu", "estudiante456", entity.RoleUser, "Medicina"},
	}
	for _, u := range seedUsers {
		if err := r.Users.Seed(u.name, u.email, u.password, u.role, u.faculty); err != nil {
			return err
		}
	}

	now := time.Now()
	novela := &entity.Category{ID: uuid.New().String(), Name: "Novela", Status: "active", CreatedAt: now, UpdatedAt: now}
	ciencia := &entity.Category{ID: uuid.New().String(), Name: "Ciencia", Status: "active", CreatedAt: now, UpdatedAt: now}
	for _, c := range []*entity.Category{novela, ciencia} {
		if err := r.Categories.Create(c); err != nil {
			return err
		}
	}

	cien := &entity.Book{
		ID: uuid.New().String(), Title: "Cien años de soledad", Author: "Gabriel García Márquez",
		ISBN: "9780307474728", CategoryID: novela.ID,
		CopiesTotal: 3, CopiesAvailable: 2, Status: "active", CreatedAt: now, UpdatedAt: now,
	}
	cosmos := &entity.Book{
		ID: uuid.New().String(), Title: "Cosmos", Author: "Carl Sagan",
		ISBN: "9780345539435", CategoryID: ciencia.ID,
		CopiesTotal: 2, CopiesAvailable: 2, Status: "active", CreatedAt: now, UpdatedAt: now,
	}
	for _, b := range []*entity.Book{cien, cosmos} {
		if err := r.Books.Create(b); err != nil {
			return err
		}
	}

	carlos, err := r.Users.FindByEmail("carlos@uni.edu")
	if err != nil {
		return err
	}
	return r.Borrows.Create(&entity.Borrow{
		ID:         uuid.New().String(),
		UserID:     carlos.ID,
		BookID:     cien.ID,
		BorrowedAt: now.AddDate(0, 0, -3),
		DueAt:      now.AddDate(0, 0, 11),
		Status:     entity.BorrowActive,
	})
}
