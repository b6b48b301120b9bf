// Package valueobject contiene los objetos de valor compartidos por las entidades del dominio.
package valueobject

// ValueObject es un dato inmutable sin identidad: dos instancias son iguales si lo son sus campos.
type ValueObject interface {
	Equals(other ValueObject) bool
}

// Equal compara v con other campo a campo. other debe ser del mismo tipo concreto T;
// nil o un tipo distinto devuelven false.
func Equal[T comparable](v T, other ValueObject) bool {
	o, ok := other.(T)
	if !ok {
		return false
	}
	return v == o
}
