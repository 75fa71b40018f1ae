// Package usecase contiene los clientes tipados de recurso que consumen las
// pantallas de la consola (libros, categorías, usuarios, préstamos,
// dashboard) sobre el cliente REST genérico.
package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
)

// envelopeError traduce un envelope fallido al error de dominio que ven las
// pantallas. Un 401/403 es ErrAccesoDenegado; el resto conserva el mensaje
// del servidor. Nunca dispara logout ni redirección: eso lo decide la vista.
func envelopeError(env rest.Envelope) error {
	if env.Success {
		return nil
	}
	switch env.Status {
	case 401, 403:
		return fmt.Errorf("%w: %s", domain.ErrAccesoDenegado, env.Message)
	}
	if env.Message == "" {
		return domain.ErrRespuestaInvalida
	}
	return errors.New(env.Message)
}

// decodeList decodifica env.Data como lista de T y devuelve también el total.
func decodeList[T any](env rest.Envelope) ([]T, int, error) {
	if err := envelopeError(env); err != nil {
		return nil, 0, err
	}
	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", domain.ErrRespuestaInvalida, err)
		}
	}
	total := env.Total
	if total == 0 {
		total = len(items)
	}
	return items, total, nil
}

// decodeOne decodifica env.Data como un único T.
func decodeOne[T any](env rest.Envelope) (*T, error) {
	if err := envelopeError(env); err != nil {
		return nil, err
	}
	var item T
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRespuestaInvalida, err)
	}
	return &item, nil
}

// pageQuery convierte la paginación en query params.
func pageQuery(page dto.PageRequest) url.Values {
	page.DefaultPage()
	q := url.Values{}
	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("offset", strconv.Itoa(page.Offset))
	return q
}
