package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const (
	categoryColumns       = `id, name, description, is_active, created_at`
	categorySelectColumns = `id::text, name, description, is_active, created_at`
)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Insert persiste una nueva categoría.
func (r *CategoryRepo) Insert(ctx context.Context, category *entity.Category) error {
	query := `INSERT INTO categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		category.CategoryID.ID(), category.Name, category.Description, category.IsActive, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// FindByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) FindByID(ctx context.Context, id valueobject.Uuid) (*entity.Category, error) {
	query := `SELECT ` + categorySelectColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(ctx, query, id.ID()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Update actualiza nombre, descripción y estado. created_at no se modifica.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $2, description = $3, is_active = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		category.CategoryID.ID(), category.Name, category.Description, category.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id valueobject.Uuid) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id.ID())
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista categorías filtrando por nombre (ILIKE) con paginación; devuelve también el total.
func (r *CategoryRepo) List(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, int, error) {
	where, args := listWhere(filter)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM categories%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		categorySelectColumns, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func listWhere(filter repository.CategoryFilter) (string, []any) {
	if filter.Filter == "" {
		return "", nil
	}
	return ` WHERE name ILIKE $1`, []any{"%" + escapeLike(filter.Filter) + "%"}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// scanCategory rehidrata la entidad desde una fila; la validación corre como en cualquier construcción.
func scanCategory(row pgx.Row) (*entity.Category, error) {
	var (
		rawID       string
		name        string
		description *string
		isActive    bool
		createdAt   time.Time
	)
	if err := row.Scan(&rawID, &name, &description, &isActive, &createdAt); err != nil {
		return nil, err
	}
	id, err := valueobject.ParseUuid(rawID)
	if err != nil {
		return nil, err
	}
	return entity.NewCategory(entity.CategoryProps{
		CategoryID:  &id,
		Name:        name,
		Description: description,
		IsActive:    &isActive,
		CreatedAt:   createdAt,
	}), nil
}
