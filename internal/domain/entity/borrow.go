package entity

import "time"

// Estados de un préstamo.
const (
	BorrowActive   = "active"
	BorrowReturned = "returned"
	BorrowOverdue  = "overdue"
)

// Borrow representa un préstamo de un libro a un usuario.
type Borrow struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	BookID     string     `json:"book_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Status     string     `json:"status"` // active, returned, overdue
}

// IsOpen indica si el préstamo sigue sin devolver.
func (b *Borrow) IsOpen() bool {
	return b.ReturnedAt == nil
}
