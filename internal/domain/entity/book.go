package entity

import "time"

// Book representa un libro del catálogo.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	Cover           string    `json:"cover,omitempty"` // URL o ruta relativa de la portada
	CopiesTotal     int       `json:"copies_total"`
	CopiesAvailable int       `json:"copies_available"`
	Status          string    `json:"status,omitempty"` // active, inactive
	CreatedAt       time.Time `json:"created_at,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}
