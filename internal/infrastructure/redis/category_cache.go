package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/domain/valueobject"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

var _ repository.CategoryRepository = (*CachedCategoryRepo)(nil)

const (
	keyPrefix = "category:"
	// recentWriteTTL vida de la marca de escritura reciente y TTL de lo que se cachea mientras existe.
	recentWriteTTL = 5 * time.Second
)

// CachedCategoryRepo decora un CategoryRepository con caché read-through de FindByID.
// Los fallos de Redis se registran y se ignoran: la fuente de verdad es el repositorio decorado.
//
// Un FindByID que leyó la fila antes de un Update concurrente puede escribir el valor viejo
// después de la invalidación. Update y Delete dejan una marca de escritura reciente y, mientras
// existe, lo que se cachea usa recentWriteTTL, así el valor viejo dura segundos y no el TTL completo.
type CachedCategoryRepo struct {
	next   repository.CategoryRepository
	client goredis.UniversalClient
	ttl    time.Duration
	log    *logger.Logger
}

// NewCachedCategoryRepository construye el decorador.
func NewCachedCategoryRepository(next repository.CategoryRepository, client goredis.UniversalClient, ttl time.Duration, log *logger.Logger) *CachedCategoryRepo {
	return &CachedCategoryRepo{next: next, client: client, ttl: ttl, log: log}
}

// Insert delega; la categoría nueva se cachea en la primera lectura.
func (r *CachedCategoryRepo) Insert(ctx context.Context, category *entity.Category) error {
	return r.next.Insert(ctx, category)
}

// FindByID consulta la caché y, en un fallo, el repositorio; cachea solo resultados encontrados.
func (r *CachedCategoryRepo) FindByID(ctx context.Context, id valueobject.Uuid) (*entity.Category, error) {
	key := categoryKey(id)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		c, derr := decodeCategory(data)
		if derr == nil {
			return c, nil
		}
		r.log.Warn().Err(derr).Str("key", key).Msg("redis: entrada de caché corrupta")
		r.evict(ctx, key)
	case !errors.Is(err, goredis.Nil):
		r.log.Warn().Err(err).Str("key", key).Msg("redis GET falló")
	}

	c, err := r.next.FindByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	r.store(ctx, key, c)
	return c, nil
}

// Update delega e invalida la entrada.
func (r *CachedCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if err := r.next.Update(ctx, category); err != nil {
		return err
	}
	r.invalidate(ctx, categoryKey(category.CategoryID))
	return nil
}

// Delete delega e invalida la entrada.
func (r *CachedCategoryRepo) Delete(ctx context.Context, id valueobject.Uuid) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, categoryKey(id))
	return nil
}

// List no se cachea.
func (r *CachedCategoryRepo) List(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, int, error) {
	return r.next.List(ctx, filter)
}

func (r *CachedCategoryRepo) store(ctx context.Context, key string, c *entity.Category) {
	data, err := json.Marshal(toModel(c))
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("redis: serializar categoría")
		return
	}
	ttl := r.ttl
	if n, err := r.client.Exists(ctx, recentWriteKey(key)).Result(); err == nil && n > 0 {
		ttl = recentWriteTTL
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("redis SET falló")
	}
}

func (r *CachedCategoryRepo) evict(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("redis DEL falló")
	}
}

// invalidate borra la entrada y deja la marca de escritura reciente.
func (r *CachedCategoryRepo) invalidate(ctx context.Context, key string) {
	_, err := r.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.Set(ctx, recentWriteKey(key), "1", recentWriteTTL)
		return nil
	})
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("redis: invalidar entrada")
	}
}

func decodeCategory(data []byte) (*entity.Category, error) {
	var m categoryModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m.toEntity()
}

func categoryKey(id valueobject.Uuid) string {
	return keyPrefix + id.ID()
}

func recentWriteKey(key string) string {
	return key + ":written"
}
