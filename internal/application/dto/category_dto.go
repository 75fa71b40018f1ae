package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
