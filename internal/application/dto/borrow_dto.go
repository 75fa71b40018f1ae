package dto

// CreateBorrowRequest entrada para registrar un préstamo.
type CreateBorrowRequest struct {
	UserID string `json:"user_id" validate:"required"`
	BookID string `json:"book_id" validate:"required"`
	Days   int    `json:"days,omitempty" validate:"omitempty,min=1,max=90"`
}

// DashboardSummary métricas agregadas para la pantalla principal.
type DashboardSummary struct {
	Books          int `json:"books"`
	Categories     int `json:"categories"`
	Users          int `json:"users"`
	ActiveBorrows  int `json:"active_borrows"`
	OverdueBorrows int `json:"overdue_borrows"`
}
