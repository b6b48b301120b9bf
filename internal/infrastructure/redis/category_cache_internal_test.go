package redis

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// Un valor leído antes de un Update y cacheado después de la invalidación vive solo recentWriteTTL.
func TestCachedCategoryRepo_ValorViejoTrasUpdateExpiraPronto(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR no definida; se omite test de integración Redis")
	}
	ctx := context.Background()
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	inner := memory.NewCategoryRepository()
	repo := NewCachedCategoryRepository(inner, client, time.Hour, logger.Nop())

	c := entity.CreateCategory(entity.CategoryProps{Name: "Movie"})
	require.NoError(t, inner.Insert(ctx, c))
	key := categoryKey(c.CategoryID)
	t.Cleanup(func() { _ = client.Del(ctx, key, recentWriteKey(key)).Err() })

	stale, err := inner.FindByID(ctx, c.CategoryID)
	require.NoError(t, err)

	c.ChangeName("Series")
	require.NoError(t, repo.Update(ctx, c))

	// El lector lento escribe el valor viejo después de la invalidación.
	repo.store(ctx, key, stale)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, recentWriteTTL)

	// Sin escritura reciente se usa el TTL configurado.
	require.NoError(t, client.Del(ctx, key, recentWriteKey(key)).Err())
	repo.store(ctx, key, c)
	ttl, err = client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, recentWriteTTL)
}
