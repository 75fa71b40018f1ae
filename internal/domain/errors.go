package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrCredencialesInvalidas: el backend rechazó el login (HTTP 401 o
	// envelope con success=false).
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	// ErrServidorNoDisponible: fallo de red/transporte, el backend no respondió.
	ErrServidorNoDisponible = errors.New("servidor no disponible")
	// ErrRespuestaInvalida: la respuesta no coincide con ninguna forma conocida.
	ErrRespuestaInvalida = errors.New("respuesta del servidor no reconocida")
	// ErrAccesoDenegado: 401/403 en una operación de recurso ya autenticada.
	ErrAccesoDenegado = errors.New("acceso denegado")
	// ErrNoAutenticado: no hay sesión local válida para la operación.
	ErrNoAutenticado = errors.New("no autenticado")

	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrNoCopies           = errors.New("no hay ejemplares disponibles")
	ErrBorrowClosed       = errors.New("el préstamo ya fue devuelto")
)
