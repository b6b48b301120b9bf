package category

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CreateCategoryInput entrada de CreateCategoryUseCase. IsActive nil = activa.
type CreateCategoryInput struct {
	Name        string
	Description *string
	IsActive    *bool
}

// CreateCategoryUseCase crea y persiste una categoría nueva.
type CreateCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCreateCategoryUseCase construye el caso de uso.
func NewCreateCategoryUseCase(repo repository.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{repo: repo}
}

// Execute no persiste una categoría inválida: devuelve *domain.EntityValidationError con todos sus errores.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, in CreateCategoryInput) (*dto.CategoryOutput, error) {
	category := entity.CreateCategory(entity.CategoryProps{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err := category.Err(); err != nil {
		return nil, err
	}
	if err := uc.repo.Insert(ctx, category); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	out := dto.ToCategoryOutput(category)
	return &out, nil
}
