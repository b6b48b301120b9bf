// Package validation reglas de campo para entidades del dominio. Las reglas no se
// cortocircuitan: cada campo acumula todos los mensajes que le aplican.
package validation

import (
	"fmt"
	"unicode/utf8"
)

// FieldErrors mensajes de validación agrupados por campo.
type FieldErrors map[string][]string

// Add agrega un mensaje al campo.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has indica si el campo tiene al menos un mensaje.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Empty indica que no hay ningún error registrado.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Clone devuelve una copia independiente (mapa y slices).
func (e FieldErrors) Clone() FieldErrors {
	cp := make(FieldErrors, len(e))
	for field, msgs := range e {
		cp[field] = append([]string(nil), msgs...)
	}
	return cp
}

// Rule evalúa value para el campo field. Devuelve el mensaje y false si la regla falla.
type Rule func(field string, value any) (string, bool)

// Check aplica todas las reglas a value y registra en errs cada fallo, en orden.
func Check(errs FieldErrors, field string, value any, rules ...Rule) {
	for _, rule := range rules {
		if msg, ok := rule(field, value); !ok {
			errs.Add(field, msg)
		}
	}
}

// NotEmpty rechaza nil y la cadena vacía.
func NotEmpty() Rule {
	return func(field string, value any) (string, bool) {
		if value == nil {
			return field + " should not be empty", false
		}
		if s, ok := value.(string); ok && s == "" {
			return field + " should not be empty", false
		}
		return "", true
	}
}

// IsString exige que el valor sea de tipo string.
func IsString() Rule {
	return func(field string, value any) (string, bool) {
		if _, ok := value.(string); !ok {
			return field + " must be a string", false
		}
		return "", true
	}
}

// MaxLength exige una cadena de como máximo max caracteres. Un valor que no es string también falla.
func MaxLength(max int) Rule {
	return func(field string, value any) (string, bool) {
		msg := fmt.Sprintf("%s must be shorter than or equal to %d characters", field, max)
		s, ok := value.(string)
		if !ok {
			return msg, false
		}
		if utf8.RuneCountInString(s) > max {
			return msg, false
		}
		return "", true
	}
}
