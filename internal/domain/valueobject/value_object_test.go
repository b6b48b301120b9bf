package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

type stringValueObject struct {
	value string
}

func (v stringValueObject) Equals(other valueobject.ValueObject) bool {
	return valueobject.Equal(v, other)
}

type complexValueObject struct {
	prop1 string
	prop2 int
}

func (v complexValueObject) Equals(other valueobject.ValueObject) bool {
	return valueobject.Equal(v, other)
}

type nestedValueObject struct {
	id    valueobject.Uuid
	label stringValueObject
}

func (v nestedValueObject) Equals(other valueobject.ValueObject) bool {
	return valueobject.Equal(v, other)
}

func TestValueObject_Iguales(t *testing.T) {
	assert.True(t, stringValueObject{"test"}.Equals(stringValueObject{"test"}))
	assert.True(t, complexValueObject{"test", 1}.Equals(complexValueObject{"test", 1}))

	id := valueobject.NewUuid()
	assert.True(t, nestedValueObject{id, stringValueObject{"a"}}.Equals(nestedValueObject{id, stringValueObject{"a"}}))
}

func TestValueObject_Distintos(t *testing.T) {
	assert.False(t, stringValueObject{"test"}.Equals(stringValueObject{"test2"}))
	assert.False(t, complexValueObject{"test", 1}.Equals(complexValueObject{"test10", 10}))
	assert.False(t, complexValueObject{"test", 1}.Equals(complexValueObject{"test", 2}))
}

func TestValueObject_TipoDistintoONil(t *testing.T) {
	assert.False(t, stringValueObject{"test"}.Equals(nil))
	assert.False(t, stringValueObject{"test"}.Equals(complexValueObject{"test", 0}))
}
