package valueobject

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Forma canónica 8-4-4-4-12 con versión 1-8 y variante RFC 4122, más los UUID nil y max.
// uuid.Parse acepta además urn:uuid:, llaves y cualquier versión, que no admitimos.
var uuidPattern = regexp.MustCompile(`(?i)^(?:[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}|00000000-0000-0000-0000-000000000000|ffffffff-ffff-ffff-ffff-ffffffffffff)$`)

var _ ValueObject = Uuid{}

// Uuid identificador de entidad en formato UUID.
type Uuid struct {
	id string
}

// NewUuid genera un identificador aleatorio (v4).
func NewUuid() Uuid {
	return Uuid{id: uuid.NewString()}
}

// ParseUuid valida id y lo envuelve. Devuelve *domain.InvalidUUIDError si no es un UUID.
func ParseUuid(id string) (Uuid, error) {
	if err := validateUuid(id); err != nil {
		return Uuid{}, err
	}
	return Uuid{id: id}, nil
}

// MustParseUuid como ParseUuid pero entra en pánico con entradas inválidas.
func MustParseUuid(id string) Uuid {
	u, err := ParseUuid(id)
	if err != nil {
		panic(err)
	}
	return u
}

func validateUuid(id string) error {
	if !uuidPattern.MatchString(id) {
		return &domain.InvalidUUIDError{Value: id}
	}
	if _, err := uuid.Parse(id); err != nil {
		return &domain.InvalidUUIDError{Value: id}
	}
	return nil
}

// ID devuelve el texto del identificador.
func (u Uuid) ID() string { return u.id }

func (u Uuid) String() string { return u.id }

// IsZero indica si el valor no fue inicializado con NewUuid o ParseUuid.
func (u Uuid) IsZero() bool { return u.id == "" }

// Equals compara por valor del identificador.
func (u Uuid) Equals(other ValueObject) bool {
	return Equal(u, other)
}
