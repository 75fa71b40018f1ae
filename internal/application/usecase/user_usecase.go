package usecase

import (
	"context"
	"io"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
	"github.com/tu-usuario/biblioteca-admin/pkg/validation"
)

const resourceUsers = "users"

// UserUseCase pantalla de usuarios (solo visible para admin).
type UserUseCase struct {
	api *rest.Client
	val *validation.Validator
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(api *rest.Client, val *validation.Validator) *UserUseCase {
	return &UserUseCase{api: api, val: val}
}

// List devuelve una página de usuarios y el total.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]entity.User, int, error) {
	return decodeList[entity.User](uc.api.GetAll(ctx, resourceUsers, pageQuery(page)))
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	return decodeOne[entity.User](uc.api.GetByID(ctx, resourceUsers, id))
}

// Create valida y crea un usuario.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	return decodeOne[entity.User](uc.api.Create(ctx, resourceUsers, in))
}

// Update valida y actualiza un usuario.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*entity.User, error) {
	if err := uc.val.Struct(in); err != nil {
		return nil, err
	}
	return decodeOne[entity.User](uc.api.Update(ctx, resourceUsers, id, in))
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return envelopeError(uc.api.Delete(ctx, resourceUsers, id))
}

// UploadAvatar sube el avatar y devuelve la ruta publicada por el servidor.
func (uc *UserUseCase) UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error) {
	out, err := decodeOne[struct {
		Path string `json:"path"`
	}](uc.api.UploadFile(ctx, "uploads", "file", filename, r))
	if err != nil {
		return "", err
	}
	return out.Path, nil
}
