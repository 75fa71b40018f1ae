package usecase

import (
	"context"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
	"github.com/tu-usuario/biblioteca-admin/pkg/validation"
)

const resourceCategories = "categories"

// CategoryUseCase pantalla de categorías.
type CategoryUseCase struct {
	api *rest.Client
	val *validation.Validator
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(api *rest.Client, val *validation.Validator) *CategoryUseCase {
	return &CategoryUseCase{api: api, val: val}
}

// List devuelve una página de categorías y el total.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) ([]entity.Category, int, error) {
	return decodeList[entity.Category](uc.api.GetAll(ctx, resourceCategories, pageQuery(page)))
}

// Get devuelve una categoría por id.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*entity.Category, error) {
	return decodeOne[entity.Category](uc.api.GetByID(ctx, resourceCategories, id))
}

// Create valida y crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*entity.Category, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	return decodeOne[entity.Category](uc.api.Create(ctx, resourceCategories, in))
}

// Update valida y actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*entity.Category, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	return decodeOne[entity.Category](uc.api.Update(ctx, resourceCategories, id, in))
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return envelopeError(uc.api.Delete(ctx, resourceCategories, id))
}
