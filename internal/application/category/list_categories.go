package category

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListCategoriesInput entrada de ListCategoriesUseCase.
type ListCategoriesInput struct {
	Limit  int
	Offset int
	Filter string
}

// ListCategoriesOutput salida de ListCategoriesUseCase.
type ListCategoriesOutput = dto.CategoryListOutput

// ListCategoriesUseCase lista categorías con paginación.
type ListCategoriesUseCase struct {
	repo repository.CategoryRepository
}

// NewListCategoriesUseCase construye el caso de uso.
func NewListCategoriesUseCase(repo repository.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{repo: repo}
}

// Execute aplica límite por defecto (20) y máximo (100).
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, in ListCategoriesInput) (*ListCategoriesOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	list, total, err := uc.repo.List(ctx, repository.CategoryFilter{Filter: in.Filter, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items := make([]dto.CategoryOutput, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCategoryOutput(c))
	}
	return &ListCategoriesOutput{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}
