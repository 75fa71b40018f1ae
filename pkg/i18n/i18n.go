// Package i18n centraliza los mensajes visibles al usuario de la consola.
// El catálogo por defecto es español; inglés queda como alternativa.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Claves de mensajes (la clave es la frase fuente en inglés, convención x/text).
const (
	MsgServerUnreachable = "could not reach the server"
	MsgSessionExpired    = "session expired or invalid, please sign in again"
	MsgAccessDenied      = "your role does not allow this operation"
	MsgMalformedResponse = "the server response was not recognized"
	MsgOperationFailed   = "the operation could not be completed"
	MsgLoginFailed       = "invalid email or password"
)

var supported = []language.Tag{
	language.Spanish, // primero = idioma por defecto
	language.English,
}

var matcher = language.NewMatcher(supported)

func init() {
	set := func(key, es, en string) {
		_ = message.SetString(language.Spanish, key, es)
		_ = message.SetString(language.English, key, en)
	}
	set(MsgServerUnreachable,
		"no se pudo contactar al servidor",
		"could not reach the server")
	set(MsgSessionExpired,
		"la sesión expiró o no es válida, inicie sesión de nuevo",
		"session expired or invalid, please sign in again")
	set(MsgAccessDenied,
		"su rol no permite esta operación",
		"your role does not allow this operation")
	set(MsgMalformedResponse,
		"la respuesta del servidor no fue reconocida",
		"the server response was not recognized")
	set(MsgOperationFailed,
		"la operación no pudo completarse",
		"the operation could not be completed")
	set(MsgLoginFailed,
		"email o contraseña inválidos",
		"invalid email or password")
}

// NewPrinter devuelve un printer para el locale indicado (ej. "es", "en-US").
// Un locale vacío o desconocido cae al español.
func NewPrinter(locale string) *message.Printer {
	tag, _ := language.MatchStrings(matcher, locale)
	return message.NewPrinter(tag)
}
