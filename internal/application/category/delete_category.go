package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

// DeleteCategoryInput entrada de DeleteCategoryUseCase.
type DeleteCategoryInput struct {
	ID string
}

// DeleteCategoryUseCase elimina una categoría por ID.
type DeleteCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewDeleteCategoryUseCase construye el caso de uso.
func NewDeleteCategoryUseCase(repo repository.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{repo: repo}
}

// Execute devuelve *domain.NotFoundError si la categoría no existe.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, in DeleteCategoryInput) error {
	id, err := valueobject.ParseUuid(in.ID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError(in.ID, entity.CategoryEntityName)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
