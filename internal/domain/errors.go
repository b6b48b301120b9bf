package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound    = errors.New("recurso no encontrado")
	ErrInvalidUUID = errors.New("ID must be a valid UUID")
	ErrValidation  = errors.New("entidad inválida")
	ErrDuplicate   = errors.New("recurso duplicado")
)

// InvalidUUIDError se produce al construir un Uuid con un texto que no cumple la gramática UUID.
type InvalidUUIDError struct {
	Value string
}

func (e *InvalidUUIDError) Error() string {
	return ErrInvalidUUID.Error()
}

// Unwrap permite errors.Is(err, ErrInvalidUUID).
func (e *InvalidUUIDError) Unwrap() error { return ErrInvalidUUID }

// NotFoundError indica que no existe una entidad del tipo Entity con el ID solicitado.
type NotFoundError struct {
	ID     string
	Entity string
}

// NewNotFoundError construye el error para el ID y el nombre de entidad dados.
func NewNotFoundError(id, entity string) *NotFoundError {
	return &NotFoundError{ID: id, Entity: entity}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s Not Found using ID %s", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// EntityValidationError agrupa los mensajes de validación por campo de una entidad.
// Lo devuelven los casos de uso que se niegan a persistir una entidad inválida.
type EntityValidationError struct {
	Errors map[string][]string
}

// NewEntityValidationError copia los errores recibidos para que el llamador no comparta el mapa.
func NewEntityValidationError(fields map[string][]string) *EntityValidationError {
	cp := make(map[string][]string, len(fields))
	for k, v := range fields {
		cp[k] = append([]string(nil), v...)
	}
	return &EntityValidationError{Errors: cp}
}

func (e *EntityValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Errors[k], ", "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *EntityValidationError) Unwrap() error { return ErrValidation }
