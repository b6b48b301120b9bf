package redis

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

// categoryModel representación JSON de una categoría en caché.
type categoryModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toModel(c *entity.Category) categoryModel {
	return categoryModel{
		ID:          c.CategoryID.ID(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func (m categoryModel) toEntity() (*entity.Category, error) {
	id, err := valueobject.ParseUuid(m.ID)
	if err != nil {
		return nil, err
	}
	active := m.IsActive
	return entity.NewCategory(entity.CategoryProps{
		CategoryID:  &id,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    &active,
		CreatedAt:   m.CreatedAt,
	}), nil
}
