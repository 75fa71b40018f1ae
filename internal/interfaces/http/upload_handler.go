package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
)

// UploadHandler recibe portadas y avatares (multipart) y los guarda en disco.
type UploadHandler struct {
	dir string
}

// NewUploadHandler construye el handler de subidas; dir se crea si no existe.
func NewUploadHandler(dir string) (*UploadHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("directorio de subidas: %w", err)
	}
	return &UploadHandler{dir: dir}, nil
}

// Upload godoc
// @Summary      Subir un archivo
// @Description  Guarda el archivo del campo multipart "file" y devuelve su ruta pública.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Message: "campo multipart 'file' requerido"})
	}
	// Nombre propio para evitar colisiones y rutas maliciosas.
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Data: fiber.Map{
		"path": "/uploads/" + name,
	}})
}
