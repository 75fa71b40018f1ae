package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

// BookRepo repositorio de libros en memoria.
type BookRepo struct {
	mu    sync.RWMutex
	books map[string]*entity.Book
}

// NewBookRepo crea un repositorio vacío.
func NewBookRepo() *BookRepo {
	return &BookRepo{books: make(map[string]*entity.Book)}
}

func (r *BookRepo) Create(b *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ID]; ok {
		return domain.ErrDuplicate
	}
	r.books[b.ID] = b
	return nil
}

func (r *BookRepo) GetByID(id string) (*entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (r *BookRepo) List(limit, offset int) ([]*entity.Book, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.Book, 0, len(r.books))
	for _, b := range r.books {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return paginate(all, limit, offset), len(all), nil
}

func (r *BookRepo) Update(b *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ID]; !ok {
		return domain.ErrNotFound
	}
	b.UpdatedAt = time.Now()
	r.books[b.ID] = b
	return nil
}

func (r *BookRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *BookRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}
