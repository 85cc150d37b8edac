package domain

import "errors"

// ValidationError fallo de validación con mensaje visible para el usuario
// (puede combinar varias reglas incumplidas en un solo mensaje).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError construye un ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrContactNotFound    = errors.New("contacto no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidContactType = errors.New("tipo de contacto inválido")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
