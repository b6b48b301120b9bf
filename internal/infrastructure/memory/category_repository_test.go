package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func TestCategoryRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCategoryRepository()
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie"})

	require.NoError(t, repo.Insert(ctx, c))
	assert.ErrorIs(t, repo.Insert(ctx, c), domain.ErrDuplicate)

	found, err := repo.FindByID(ctx, c.CategoryID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Equals(c))
	assert.Equal(t, "Movie", found.Name)

	// la copia devuelta no está atada al almacén
	found.ChangeName("Series")
	again, _ := repo.FindByID(ctx, c.CategoryID)
	assert.Equal(t, "Movie", again.Name)

	require.NoError(t, repo.Update(ctx, found))
	again, _ = repo.FindByID(ctx, c.CategoryID)
	assert.Equal(t, "Series", again.Name)

	require.NoError(t, repo.Delete(ctx, c.CategoryID))
	assert.ErrorIs(t, repo.Delete(ctx, c.CategoryID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, c), domain.ErrNotFound)

	missing, err := repo.FindByID(ctx, valueobject.NewUuid())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCategoryRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("Movie %d", i)
		if i%2 == 1 {
			name = fmt.Sprintf("Serie %d", i)
		}
		require.NoError(t, repo.Insert(ctx, entity.NewCategory(entity.CategoryProps{
			Name:      name,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})))
	}

	page, total, err := repo.List(ctx, repository.CategoryFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Movie 4", page[0].Name, "más reciente primero")
	assert.Equal(t, "Serie 3", page[1].Name)

	page, total, err = repo.List(ctx, repository.CategoryFilter{Filter: "SERIE", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, page, 2)

	page, total, err = repo.List(ctx, repository.CategoryFilter{Limit: 10, Offset: 50})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, page)
}
