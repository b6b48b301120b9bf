package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

func TestListWhere(t *testing.T) {
	where, args := listWhere(repository.CategoryFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = listWhere(repository.CategoryFilter{Filter: "50%_off"})
	assert.Equal(t, ` WHERE name ILIKE $1`, where)
	assert.Equal(t, []any{`%50\%\_off%`}, args)
}
