package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

// BorrowRepo repositorio de préstamos en memoria.
type BorrowRepo struct {
	mu      sync.RWMutex
	borrows map[string]*entity.Borrow
}

// NewBorrowRepo crea un repositorio vacío.
func NewBorrowRepo() *BorrowRepo {
	return &BorrowRepo{borrows: make(map[string]*entity.Borrow)}
}

func (r *BorrowRepo) Create(b *entity.Borrow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.borrows[b.ID]; ok {
		return domain.ErrDuplicate
	}
	r.borrows[b.ID] = b
	return nil
}

func (r *BorrowRepo) GetByID(id string) (*entity.Borrow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.borrows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// List devuelve los préstamos más recientes primero. Los activos vencidos se
// marcan overdue al listarlos (el stub no tiene un reloj de fondo).
func (r *BorrowRepo) List(limit, offset int) ([]*entity.Borrow, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	all := make([]*entity.Borrow, 0, len(r.borrows))
	for _, b := range r.borrows {
		if b.Status == entity.BorrowActive && now.After(b.DueAt) {
			b.Status = entity.BorrowOverdue
		}
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].BorrowedAt.Equal(all[j].BorrowedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].BorrowedAt.After(all[j].BorrowedAt)
	})
	return paginate(all, limit, offset), len(all), nil
}

func (r *BorrowRepo) Update(b *entity.Borrow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.borrows[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.borrows[b.ID] = b
	return nil
}

func (r *BorrowRepo) CountByStatus(status string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	n := 0
	for _, b := range r.borrows {
		if b.Status == entity.BorrowActive && now.After(b.DueAt) {
			b.Status = entity.BorrowOverdue
		}
		if b.Status == status {
			n++
		}
	}
	return n
}
