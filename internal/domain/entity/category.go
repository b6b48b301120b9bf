package entity

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/validation"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

// CategoryEntityName nombre de la entidad usado en errores de dominio.
const CategoryEntityName = "Category"

// NameMaxLength longitud máxima del nombre (en caracteres).
const NameMaxLength = 255

// CategoryProps datos de entrada para construir una categoría. Los campos nil toman su valor por defecto.
type CategoryProps struct {
	CategoryID  *valueobject.Uuid
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   time.Time
}

// Category agregado raíz del catálogo. Se valida al construirse y tras cada cambio de campos
// con reglas; los errores quedan registrados en la entidad en lugar de devolverse.
type Category struct {
	CategoryID  valueobject.Uuid
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time

	errors    validation.FieldErrors
	validator CategoryValidator
}

// CategoryOption configura la construcción de una categoría.
type CategoryOption func(*Category)

// WithValidator reemplaza el validador por defecto.
func WithValidator(v CategoryValidator) CategoryOption {
	return func(c *Category) {
		if v != nil {
			c.validator = v
		}
	}
}

// NewCategory construye (o rehidrata) una categoría aplicando valores por defecto y la valida una vez.
func NewCategory(props CategoryProps, opts ...CategoryOption) *Category {
	c := &Category{
		Name:        props.Name,
		Description: props.Description,
		IsActive:    true,
		CreatedAt:   props.CreatedAt,
		errors:      validation.FieldErrors{},
		validator:   defaultValidator,
	}
	if props.CategoryID != nil && !props.CategoryID.IsZero() {
		c.CategoryID = *props.CategoryID
	} else {
		c.CategoryID = valueobject.NewUuid()
	}
	if props.IsActive != nil {
		c.IsActive = *props.IsActive
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	for _, opt := range opts {
		opt(c)
	}
	c.validator.Validate(c)
	return c
}

// CreateCategory punto de entrada del dominio para crear una categoría nueva.
func CreateCategory(props CategoryProps, opts ...CategoryOption) *Category {
	return NewCategory(props, opts...)
}

// ChangeName reemplaza el nombre y revalida.
func (c *Category) ChangeName(name string) {
	c.Name = name
	c.validator.Validate(c)
}

// ChangeDescription reemplaza la descripción y revalida.
func (c *Category) ChangeDescription(description *string) {
	c.Description = description
	c.validator.Validate(c)
}

// UpdateCategory reemplaza nombre y descripción con una sola validación.
func (c *Category) UpdateCategory(name string, description *string) {
	c.Name = name
	c.Description = description
	c.validator.Validate(c)
}

// Activate marca la categoría como activa.
func (c *Category) Activate() {
	c.IsActive = true
}

// Deactivate marca la categoría como inactiva.
func (c *Category) Deactivate() {
	c.IsActive = false
}

// Errors devuelve una copia de los errores de la última validación.
func (c *Category) Errors() validation.FieldErrors {
	return c.errors.Clone()
}

// IsValid indica que la última validación no registró errores.
func (c *Category) IsValid() bool {
	return c.errors.Empty()
}

// Err devuelve un *domain.EntityValidationError si la categoría es inválida, o nil.
func (c *Category) Err() error {
	if c.IsValid() {
		return nil
	}
	return domain.NewEntityValidationError(c.errors)
}

// Equals compara identidad: dos categorías son la misma si comparten CategoryID.
func (c *Category) Equals(other *Category) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.CategoryID.Equals(other.CategoryID)
}
