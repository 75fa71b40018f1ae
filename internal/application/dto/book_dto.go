package dto

// CreateBookRequest entrada para crear un libro.
type CreateBookRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=300"`
	Author      string `json:"author" validate:"required,min=1,max=200"`
	ISBN        string `json:"isbn" validate:"omitempty,min=10,max=17"`
	CategoryID  string `json:"category_id" validate:"omitempty"`
	CopiesTotal int    `json:"copies_total" validate:"required,min=1"`
}

// UpdateBookRequest entrada para actualizar un libro (campos opcionales).
type UpdateBookRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Author      string `json:"author,omitempty" validate:"omitempty,min=1,max=200"`
	ISBN        string `json:"isbn,omitempty" validate:"omitempty,min=10,max=17"`
	CategoryID  string `json:"category_id,omitempty"`
	CopiesTotal int    `json:"copies_total,omitempty" validate:"omitempty,min=1"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
