// Package memory adaptadores de persistencia en memoria (desarrollo local y pruebas).
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository en memoria. Guarda copias:
// los cambios sobre una entidad devuelta no afectan al almacén hasta llamar a Update.
type CategoryRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Category
}

// NewCategoryRepository construye un repositorio vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{items: make(map[string]*entity.Category)}
}

// Insert guarda una categoría nueva. Devuelve domain.ErrDuplicate si el ID ya existe.
func (r *CategoryRepo) Insert(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := category.CategoryID.ID()
	if _, ok := r.items[key]; ok {
		return domain.ErrDuplicate
	}
	r.items[key] = clone(category)
	return nil
}

// FindByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) FindByID(_ context.Context, id valueobject.Uuid) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id.ID()]
	if !ok {
		return nil, nil
	}
	return clone(c), nil
}

// Update reemplaza una categoría existente.
func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := category.CategoryID.ID()
	if _, ok := r.items[key]; !ok {
		return domain.ErrNotFound
	}
	r.items[key] = clone(category)
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(_ context.Context, id valueobject.Uuid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id.ID()]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id.ID())
	return nil
}

// List filtra por nombre, ordena por created_at descendente y pagina.
func (r *CategoryRepo) List(_ context.Context, filter repository.CategoryFilter) ([]*entity.Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(filter.Filter)
	matched := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		if needle != "" && !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CategoryID.ID() < matched[j].CategoryID.ID()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < total {
		end = start + filter.Limit
	}
	page := make([]*entity.Category, 0, end-start)
	for _, c := range matched[start:end] {
		page = append(page, clone(c))
	}
	return page, total, nil
}

// Len número de categorías almacenadas.
func (r *CategoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func clone(c *entity.Category) *entity.Category {
	id := c.CategoryID
	active := c.IsActive
	var desc *string
	if c.Description != nil {
		d := *c.Description
		desc = &d
	}
	return entity.NewCategory(entity.CategoryProps{
		CategoryID:  &id,
		Name:        c.Name,
		Description: desc,
		IsActive:    &active,
		CreatedAt:   c.CreatedAt,
	})
}
