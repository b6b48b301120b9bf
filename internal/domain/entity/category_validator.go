package entity

import "github.com/jhoicas/Catalogo-api/internal/domain/validation"

// CategoryValidator aplica las reglas de Category y registra el resultado en la entidad.
type CategoryValidator interface {
	Validate(c *Category) bool
}

// CategoryValidatorFunc adapta una función al contrato CategoryValidator.
type CategoryValidatorFunc func(c *Category) bool

func (f CategoryValidatorFunc) Validate(c *Category) bool { return f(c) }

var defaultValidator CategoryValidator = CategoryValidatorFunc(ValidateCategory)

// CategoryRules restricciones de campo de una categoría sobre valores sin tipar
// (por ejemplo, un cuerpo JSON decodificado a map[string]any).
type CategoryRules struct {
	Name any
}

// Validate aplica las reglas y devuelve los errores por campo (vacío si es válido).
func (r CategoryRules) Validate() validation.FieldErrors {
	errs := validation.FieldErrors{}
	validation.Check(errs, "name", r.Name,
		validation.NotEmpty(),
		validation.IsString(),
		validation.MaxLength(NameMaxLength),
	)
	return errs
}

// ValidateCategory aplica las reglas a c, reemplaza sus errores registrados y devuelve si es válida.
// Es idempotente.
func ValidateCategory(c *Category) bool {
	c.errors = CategoryRules{Name: c.Name}.Validate()
	return c.errors.Empty()
}
