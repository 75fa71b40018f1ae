package dto

// CreateUserRequest entrada para crear un usuario (password en texto; el
// backend lo hashea al persistir).
type CreateUserRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" validate:"required,oneof=admin librarian user"`
	Faculty        string `json:"faculty,omitempty" validate:"omitempty,max=200"`
	Specialization string `json:"specialization,omitempty" validate:"omitempty,max=200"`
}

// UpdateUserRequest entrada para actualizar un usuario.
type UpdateUserRequest struct {
	Name           string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Role           string `json:"role,omitempty" validate:"omitempty,oneof=admin librarian user"`
	Faculty        string `json:"faculty,omitempty" validate:"omitempty,max=200"`
	Specialization string `json:"specialization,omitempty" validate:"omitempty,max=200"`
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// LoginRequest cuerpo JSON del login (acompaña a la cabecera Basic).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
