package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

// CategoryRepo repositorio de categorías en memoria.
type CategoryRepo struct {
	mu         sync.RWMutex
	categories map[string]*entity.Category
}

// NewCategoryRepo crea un repositorio vacío.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *CategoryRepo) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	r.categories[c.ID] = c
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), len(all), nil
}

func (r *CategoryRepo) Update(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	r.categories[c.ID] = c
	return nil
}

func (r *CategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *CategoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories)
}
