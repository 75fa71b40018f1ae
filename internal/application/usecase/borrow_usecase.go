package usecase

import (
	"context"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
	"github.com/tu-usuario/biblioteca-admin/pkg/validation"
)

const resourceBorrows = "borrows"

// BorrowUseCase pantalla de préstamos: registro, listado y devolución.
type BorrowUseCase struct {
	api *rest.Client
	val *validation.Validator
}

// NewBorrowUseCase construye el caso de uso de préstamos.
func NewBorrowUseCase(api *rest.Client, val *validation.Validator) *BorrowUseCase {
	return &BorrowUseCase{api: api, val: val}
}

// List devuelve una página de préstamos y el total.
func (uc *BorrowUseCase) List(ctx context.Context, page dto.PageRequest) ([]entity.Borrow, int, error) {
	return decodeList[entity.Borrow](uc.api.GetAll(ctx, resourceBorrows, pageQuery(page)))
}

// Get devuelve un préstamo por id.
func (uc *BorrowUseCase) Get(ctx context.Context, id string) (*entity.Borrow, error) {
	return decodeOne[entity.Borrow](uc.api.GetByID(ctx, resourceBorrows, id))
}

// Create valida y registra un préstamo.
func (uc *BorrowUseCase) Create(ctx context.Context, in dto.CreateBorrowRequest) (*entity.Borrow, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	return decodeOne[entity.Borrow](uc.api.Create(ctx, resourceBorrows, in))
}

// Return ejecuta la devolución del préstamo.
func (uc *BorrowUseCase) Return(ctx context.Context, id string) (*entity.Borrow, error) {
	return decodeOne[entity.Borrow](uc.api.ExecuteAction(ctx, resourceBorrows, id, "return", nil))
}
