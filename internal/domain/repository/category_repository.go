package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

// CategoryFilter criterios de listado. Filter busca por coincidencia parcial en el nombre (sin distinguir mayúsculas).
type CategoryFilter struct {
	Filter string
	Limit  int
	Offset int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Insert(ctx context.Context, category *entity.Category) error
	// FindByID devuelve (nil, nil) si no existe.
	FindByID(ctx context.Context, id valueobject.Uuid) (*entity.Category, error)
	// Update y Delete devuelven domain.ErrNotFound si no existe.
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id valueobject.Uuid) error
	// List devuelve la página pedida (más recientes primero) y el total que cumple el filtro.
	List(ctx context.Context, filter CategoryFilter) ([]*entity.Category, int, error)
}
