package category

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// UpdateCategoryInput entrada de UpdateCategoryUseCase; los campos nil no se modifican.
// ClearDescription borra la descripción (queda nil) y tiene prioridad sobre Description.
type UpdateCategoryInput struct {
	ID               string
	Name             *string
	Description      *string
	ClearDescription bool
	IsActive         *bool
}

// UpdateCategoryUseCase modifica una categoría existente.
type UpdateCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewUpdateCategoryUseCase construye el caso de uso.
func NewUpdateCategoryUseCase(repo repository.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{repo: repo}
}

// Execute aplica los cambios y persiste solo si la categoría sigue siendo válida.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, in UpdateCategoryInput) (*dto.CategoryOutput, error) {
	category, err := findCategory(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}

	description := in.Description
	if in.ClearDescription {
		description = nil
	}
	descriptionChanged := in.ClearDescription || in.Description != nil

	switch {
	case in.Name != nil && descriptionChanged:
		category.UpdateCategory(*in.Name, description)
	case in.Name != nil:
		category.ChangeName(*in.Name)
	case descriptionChanged:
		category.ChangeDescription(description)
	}
	if in.IsActive != nil {
		if *in.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := category.Err(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	out := dto.ToCategoryOutput(category)
	return &out, nil
}
