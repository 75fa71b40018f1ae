package auth

import (
	"encoding/json"
	"strings"

	"github.com/tu-usuario/biblioteca-admin/internal/domain"
	"github.com/tu-usuario/biblioteca-admin/internal/domain/entity"
)

// El backend histórico respondía al login con cuerpos de formas distintas
// según la versión. En vez de condicionales ad hoc, las formas se modelan
// como una lista finita y ordenada de matchers: se prueban en orden y el
// primero que reconoce el cuerpo decide el resultado.

// ShapeMatcher intenta extraer un perfil de un cuerpo de respuesta.
// Devuelve (nil, nil) cuando la forma no aplica y hay que probar la siguiente;
// un error devuelto es terminal (no se sigue probando).
type ShapeMatcher struct {
	Name  string
	Match func(body []byte, principal string) (*entity.User, error)
}

// LoginShapes son las formas reconocidas del cuerpo de login, en orden de
// preferencia: envelope {success,data}, perfil crudo, lista {Users:[...]}.
var LoginShapes = []ShapeMatcher{
	{Name: "envelope", Match: matchEnvelope},
	{Name: "perfil", Match: matchRawProfile},
	{Name: "lista", Match: matchUserList},
}

// ExtractProfile prueba cada forma en orden y devuelve el primer perfil
// reconocido. Si ninguna forma aplica devuelve ErrRespuestaInvalida.
func ExtractProfile(body []byte, principal string) (*entity.User, error) {
	for _, shape := range LoginShapes {
		profile, err := shape.Match(body, principal)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			return profile, nil
		}
	}
	return nil, domain.ErrRespuestaInvalida
}

// matchEnvelope reconoce {success: bool, data: <perfil>}. Un success=false
// explícito es un rechazo de credenciales, no una forma desconocida.
func matchEnvelope(body []byte, _ string) (*entity.User, error) {
	var env struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Success == nil {
		return nil, nil
	}
	if !*env.Success {
		return nil, domain.ErrCredencialesInvalidas
	}
	var u entity.User
	if err := json.Unmarshal(env.Data, &u); err != nil || (u.Email == "" && u.ID == "") {
		return nil, domain.ErrRespuestaInvalida
	}
	return &u, nil
}

// matchRawProfile reconoce un perfil como objeto raíz.
func matchRawProfile(body []byte, _ string) (*entity.User, error) {
	var u entity.User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, nil
	}
	if u.Email == "" && u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

// matchUserList reconoce {"Users": [...]} y busca el perfil cuyo email
// coincide con el principal. Una lista sin coincidencia es un rechazo.
func matchUserList(body []byte, principal string) (*entity.User, error) {
	var payload struct {
		Users []entity.User `json:"Users"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Users == nil {
		return nil, nil
	}
	for i := range payload.Users {
		if strings.EqualFold(payload.Users[i].Email, principal) {
			return &payload.Users[i], nil
		}
	}
	return nil, domain.ErrCredencialesInvalidas
}
