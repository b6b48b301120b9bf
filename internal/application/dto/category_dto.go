package dto

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CreateCategoryRequest cuerpo para crear una categoría.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateCategoryRequest cuerpo para actualizar una categoría; los campos ausentes no se modifican
// y "description": null borra la descripción.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// ListCategoriesRequest parámetros de consulta del listado.
type ListCategoriesRequest struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"min=0"`
	Filter string `query:"filter" validate:"max=255"`
}

// CategoryOutput proyección plana de una categoría.
type CategoryOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListOutput lista paginada de categorías.
type CategoryListOutput struct {
	Items []CategoryOutput `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ToCategoryOutput proyecta la entidad a su salida plana.
func ToCategoryOutput(c *entity.Category) CategoryOutput {
	out := CategoryOutput{
		ID:        c.CategoryID.ID(),
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
	if c.Description != nil {
		d := *c.Description
		out.Description = &d
	}
	return out
}
