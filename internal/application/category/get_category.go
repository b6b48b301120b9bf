// Package category casos de uso del catálogo de categorías.
package category

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

// GetCategoryInput entrada de GetCategoryUseCase.
type GetCategoryInput struct {
	ID string
}

// GetCategoryOutput salida de GetCategoryUseCase.
type GetCategoryOutput = dto.CategoryOutput

// GetCategoryUseCase obtiene una categoría por ID.
type GetCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewGetCategoryUseCase construye el caso de uso.
func NewGetCategoryUseCase(repo repository.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{repo: repo}
}

// Execute devuelve *domain.InvalidUUIDError si el ID no es un UUID y *domain.NotFoundError si no existe.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, in GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := findCategory(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}
	out := dto.ToCategoryOutput(category)
	return &out, nil
}

// findCategory parsea el ID y busca la categoría; traduce la ausencia a NotFoundError.
func findCategory(ctx context.Context, repo repository.CategoryRepository, rawID string) (*entity.Category, error) {
	id, err := valueobject.ParseUuid(rawID)
	if err != nil {
		return nil, err
	}
	category, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError(rawID, entity.CategoryEntityName)
	}
	return category, nil
}
