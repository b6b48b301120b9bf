package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

// countingValidator cuenta las pasadas de validación sobre el validador real.
type countingValidator struct {
	calls int
}

func (v *countingValidator) Validate(c *entity.Category) bool {
	v.calls++
	return entity.ValidateCategory(c)
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Constructor
// ──────────────────────────────────────────────────────────────────────────────

func TestNewCategory_ValoresPorDefecto(t *testing.T) {
	before := time.Now()
	c := entity.NewCategory(entity.CategoryProps{Name: "Movie"})

	assert.False(t, c.CategoryID.IsZero())
	assert.Equal(t, "Movie", c.Name)
	assert.Nil(t, c.Description)
	assert.True(t, c.IsActive)
	assert.WithinDuration(t, before, c.CreatedAt, time.Second)
	assert.True(t, c.IsValid())
	assert.NoError(t, c.Err())
}

func TestNewCategory_TodosLosValores(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c := entity.NewCategory(entity.CategoryProps{
		Name:        "Movie",
		Description: ptr("Movie description"),
		IsActive:    ptr(false),
		CreatedAt:   createdAt,
	})

	assert.Equal(t, "Movie", c.Name)
	require.NotNil(t, c.Description)
	assert.Equal(t, "Movie description", *c.Description)
	assert.False(t, c.IsActive)
	assert.Equal(t, createdAt, c.CreatedAt)
}

func TestNewCategory_CategoryID(t *testing.T) {
	given := valueobject.NewUuid()
	cases := []struct {
		name string
		id   *valueobject.Uuid
	}{
		{"nil", nil},
		{"cero", &valueobject.Uuid{}},
		{"asignado", &given},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := entity.NewCategory(entity.CategoryProps{Name: "Movie", CategoryID: tc.id})
			assert.False(t, c.CategoryID.IsZero())
			_, err := valueobject.ParseUuid(c.CategoryID.ID())
			assert.NoError(t, err)
			if tc.id != nil && !tc.id.IsZero() {
				assert.True(t, c.CategoryID.Equals(given))
			}
		})
	}
}

func TestCreateCategory_ValidaUnaVez(t *testing.T) {
	v := &countingValidator{}
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie"}, entity.WithValidator(v))

	assert.Equal(t, "Movie", c.Name)
	assert.Nil(t, c.Description)
	assert.True(t, c.IsActive)
	assert.Equal(t, 1, v.calls)
}

func TestCreateCategory_ConEstadoInactivo(t *testing.T) {
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie", IsActive: ptr(false)})
	assert.False(t, c.IsActive)
	assert.Nil(t, c.Description)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métodos de comportamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_ChangeName(t *testing.T) {
	v := &countingValidator{}
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie"}, entity.WithValidator(v))

	c.ChangeName("Series")

	assert.Equal(t, "Series", c.Name)
	assert.Equal(t, 2, v.calls)
}

func TestCategory_ChangeDescription(t *testing.T) {
	v := &countingValidator{}
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie", Description: ptr("Movie description")}, entity.WithValidator(v))

	c.ChangeDescription(ptr("Series description"))

	require.NotNil(t, c.Description)
	assert.Equal(t, "Series description", *c.Description)
	assert.Equal(t, 2, v.calls)
}

func TestCategory_UpdateCategory_ValidaUnaSolaVez(t *testing.T) {
	v := &countingValidator{}
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie", Description: ptr("Nice Movie")}, entity.WithValidator(v))

	c.UpdateCategory("Serie", ptr("Funny serie"))

	assert.Equal(t, "Serie", c.Name)
	assert.Equal(t, "Funny serie", *c.Description)
	assert.Equal(t, 2, v.calls)
}

func TestCategory_ActivateDeactivate(t *testing.T) {
	v := &countingValidator{}
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie", IsActive: ptr(false)}, entity.WithValidator(v))

	c.Activate()
	assert.True(t, c.IsActive)
	c.Activate()
	assert.True(t, c.IsActive, "activar dos veces no cambia el estado")

	c.Deactivate()
	assert.False(t, c.IsActive)
	c.Deactivate()
	assert.False(t, c.IsActive)

	assert.Equal(t, 1, v.calls, "los cambios de estado no revalidan")
}

func TestCategory_Equals_PorIdentidad(t *testing.T) {
	id := valueobject.NewUuid()
	a := entity.NewCategory(entity.CategoryProps{CategoryID: &id, Name: "Movie"})
	b := entity.NewCategory(entity.CategoryProps{CategoryID: &id, Name: "Otro nombre"})
	c := entity.NewCategory(entity.CategoryProps{Name: "Movie"})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRules_MensajesPorCaso(t *testing.T) {
	const (
		msgEmpty  = "name should not be empty"
		msgString = "name must be a string"
		msgLength = "name must be shorter than or equal to 255 characters"
	)
	cases := []struct {
		name  string
		value any
		want  []string
	}{
		{"nil", nil, []string{msgEmpty, msgString, msgLength}},
		{"vacío", "", []string{msgEmpty}},
		{"numérico", 155, []string{msgString, msgLength}},
		{"256 caracteres", strings.Repeat("t", 256), []string{msgLength}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := entity.CategoryRules{Name: tc.value}.Validate()
			assert.Equal(t, map[string][]string{"name": tc.want}, map[string][]string(errs))
		})
	}
}

func TestCreateCategory_RegistraErroresSinFallar(t *testing.T) {
	c := entity.CreateCategory(entity.CategoryProps{Name: ""})
	assert.False(t, c.IsValid())
	assert.Equal(t, []string{"name should not be empty"}, c.Errors()["name"])

	c = entity.CreateCategory(entity.CategoryProps{Name: strings.Repeat("t", 256)})
	assert.Equal(t, []string{"name must be shorter than or equal to 255 characters"}, c.Errors()["name"])

	err := c.Err()
	var verr *domain.EntityValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, verr.Errors, "name")
}

func TestCategory_NombresValidosEnRango(t *testing.T) {
	for _, n := range []int{1, 2, 100, 254, 255} {
		c := entity.CreateCategory(entity.CategoryProps{Name: strings.Repeat("a", n)})
		assert.True(t, c.IsValid(), "longitud %d debe ser válida", n)
	}
}

func TestCategory_CorregirNombreLimpiaErrores(t *testing.T) {
	c := entity.CreateCategory(entity.CategoryProps{Name: ""})
	require.False(t, c.IsValid())

	c.ChangeName("Movie")
	assert.True(t, c.IsValid())
	assert.Empty(t, c.Errors())
}

func TestValidateCategory_Idempotente(t *testing.T) {
	c := entity.NewCategory(entity.CategoryProps{Name: ""})
	assert.False(t, entity.ValidateCategory(c))
	assert.False(t, entity.ValidateCategory(c))
	assert.Len(t, c.Errors()["name"], 1)
}

func TestCategory_ErrorsDevuelveCopia(t *testing.T) {
	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie"})
	require.True(t, c.IsValid())

	c.Errors().Add("name", "x")
	assert.True(t, c.IsValid(), "modificar la copia no altera la entidad")
	assert.Empty(t, c.Errors())

	c.ChangeName("")
	errs := c.Errors()
	errs["name"][0] = "otro"
	assert.Equal(t, []string{"name should not be empty"}, c.Errors()["name"])
}
