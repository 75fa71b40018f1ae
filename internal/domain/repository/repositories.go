// Package repository define los puertos de persistencia del servidor stub
// (DIP: los handlers dependen de estas interfaces, no del respaldo concreto).
package repository

import "github.com/tu-usuario/biblioteca-admin/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios (con hash de password).
type UserRepository interface {
	Create(u *entity.ServerUser) error
	GetByID(id string) (*entity.ServerUser, error)
	FindByEmail(email string) (*entity.ServerUser, error)
	List(limit, offset int) ([]*entity.ServerUser, int, error)
	Update(u *entity.ServerUser) error
	Delete(id string) error
	Count() int
}

// BookRepository puerto de persistencia del catálogo.
type BookRepository interface {
	Create(b *entity.Book) error
	GetByID(id string) (*entity.Book, error)
	List(limit, offset int) ([]*entity.Book, int, error)
	Update(b *entity.Book) error
	Delete(id string) error
	Count() int
}

// CategoryRepository puerto de persistencia de categorías.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, int, error)
	Update(c *entity.Category) error
	Delete(id string) error
	Count() int
}

// BorrowRepository puerto de persistencia de préstamos.
type BorrowRepository interface {
	Create(b *entity.Borrow) error
	GetByID(id string) (*entity.Borrow, error)
	List(limit, offset int) ([]*entity.Borrow, int, error)
	Update(b *entity.Borrow) error
	CountByStatus(status string) int
}
