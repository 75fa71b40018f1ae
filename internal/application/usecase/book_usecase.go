package usecase

import (
	"context"
	"io"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
	"github.com/tu-usuario/biblioteca-admin/pkg/validation"
)

const resourceBooks = "books"

// BookUseCase pantalla de libros: listado, detalle, altas/bajas y portada.
type BookUseCase struct {
	api *rest.Client
	val *validation.Validator
}

// NewBookUseCase construye el caso de uso de libros.
func NewBookUseCase(api *rest.Client, val *validation.Validator) *BookUseCase {
	return &BookUseCase{api: api, val: val}
}

// List devuelve una página de libros y el total.
func (uc *BookUseCase) List(ctx context.Context, page dto.PageRequest) ([]entity.Book, int, error) {
	return decodeList[entity.Book](uc.api.GetAll(ctx, resourceBooks, pageQuery(page)))
}

// Get devuelve un libro por id.
func (uc *BookUseCase) Get(ctx context.Context, id string) (*entity.Book, error) {
	return decodeOne[entity.Book](uc.api.GetByID(ctx, resourceBooks, id))
}

// Create valida y crea un libro.
func (uc *BookUseCase) Create(ctx context.Context, in dto.CreateBookRequest) (*entity.Book, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	return decodeOne[entity.Book](uc.api.Create(ctx, resourceBooks, in))
}

// Update valida y actualiza un libro.
func (uc *BookUseCase) Update(ctx context.Context, id string, in dto.UpdateBookRequest) (*entity.Book, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	return decodeOne[entity.Book](uc.api.Update(ctx, resourceBooks, id, in))
}

// Delete elimina un libro.
func (uc *BookUseCase) Delete(ctx context.Context, id string) error {
	return envelopeError(uc.api.Delete(ctx, resourceBooks, id))
}

// UploadCover sube la portada y devuelve la ruta publicada por el servidor.
func (uc *BookUseCase) UploadCover(ctx context.Context, filename string, r io.Reader) (string, error) {
	out, err := decodeOne[struct {
		Path string `json:"path"`
	}](uc.api.UploadFile(ctx, "uploads", "file", filename, r))
	if err != nil {
		return "", err
	}
	return out.Path, nil
}
