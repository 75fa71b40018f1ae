// Package memory implementa los puertos de persistencia del servidor stub en
// mapas en memoria con sembrado inicial. El backend real queda fuera de este
// repositorio: el stub simula el API que la consola consume.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*entity.ServerUser
}

// NewUserRepo crea un repositorio vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]*entity.ServerUser)}
}

// Seed registra un usuario con password en claro (se hashea aquí).
func (r *UserRepo) Seed(name, email, password, role, faculty string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return r.Create(&entity.ServerUser{
		User: entity.User{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     email,
			Role:      role,
			Faculty:   faculty,
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		},
		PasswordHash: string(hash),
	})
}

func (r *UserRepo) Create(u *entity.ServerUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.ServerUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.ServerUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) List(limit, offset int) ([]*entity.ServerUser, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.ServerUser, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return paginate(all, limit, offset), len(all), nil
}

func (r *UserRepo) Update(u *entity.ServerUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *UserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// paginate corta una página [offset, offset+limit) de forma segura.
func paginate[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
