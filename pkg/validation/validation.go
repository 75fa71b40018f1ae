// Package validation envuelve go-playground/validator con mensajes legibles
// en español para la validación de formularios antes de enviar al backend.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator valida structs anotados con tags `validate`.
type Validator struct {
	v *validator.Validate
}

// New construye un Validator listo para usar.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Struct valida un struct y devuelve un único error con todos los campos
// inválidos en un mensaje legible, o nil si pasa.
func (va *Validator) Struct(i any) error {
	if err := va.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError convierte un ValidationError en un mensaje legible.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "email":
		return field + " debe ser un email válido"
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s no puede exceder %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "isbn10", "isbn13":
		return field + " debe ser un ISBN válido"
	default:
		return fmt.Sprintf("%s no pasó la validación (%s)", field, fe.Tag())
	}
}
