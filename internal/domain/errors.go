package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrUsernameTaken  = errors.New("el username ya está registrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrAlreadyDecided = errors.New("la aprobación ya fue decidida")
)

// RepositoryError señala un fallo inesperado de la capa de persistencia.
// Conserva siempre la causa y el parámetro que identifica la consulta;
// nunca se descarta en silencio ni se reintenta.
type RepositoryError struct {
	Op  string // operación que falló, ej. "expenses.FindByCategory"
	Key any    // parámetro identificador (id, filtro, rango)
	Err error  // causa original
}

func (e *RepositoryError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s (%v): %v", e.Op, e.Key, e.Err)
}

// Unwrap expone la causa para errors.Is / errors.As.
func (e *RepositoryError) Unwrap() error { return e.Err }

// NewRepositoryError construye el error de persistencia con operación y parámetro.
func NewRepositoryError(op string, key any, err error) *RepositoryError {
	return &RepositoryError{Op: op, Key: key, Err: err}
}
