package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestOccurrenceCache_RoundTrip(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	repo := &OccurrenceRepository{redisClient: rdb}
	ctx := context.Background()

	id := uuid.New()
	cached, err := repo.GetOccurrenceFromCache(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, cached, "промах кеша - (nil, nil)")

	occurred := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	o := &models.Occurrence{
		ID:             id,
		Type:           models.TypeRescue,
		Status:         models.StatusInProgress,
		Municipality:   "Olinda",
		Address:        "Rua do Amparo, 1",
		Description:    "Resgate em altura",
		OccurrenceDate: occurred,
		ActivationDate: occurred,
		Images:         []models.OccurrenceImage{{ID: uuid.New(), OccurrenceID: id, URL: "https://cdn.example.com/a.jpg"}},
	}
	require.NoError(t, repo.SetOccurrenceCache(ctx, o))
	assert.Equal(t, occurrenceCacheTTL, mr.TTL(occurrenceCacheKey(id)))

	cached, err = repo.GetOccurrenceFromCache(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, o.Municipality, cached.Municipality)
	assert.Equal(t, o.Status, cached.Status)
	assert.True(t, o.OccurrenceDate.Equal(cached.OccurrenceDate))
	require.Len(t, cached.Images, 1)

	require.NoError(t, repo.InvalidateOccurrenceCache(ctx, id))
	assert.False(t, mr.Exists(occurrenceCacheKey(id)))
}

func TestOccurrenceCache_Expires(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	repo := &OccurrenceRepository{redisClient: rdb}
	ctx := context.Background()

	o := &models.Occurrence{ID: uuid.New()}
	require.NoError(t, repo.SetOccurrenceCache(ctx, o))
	mr.FastForward(occurrenceCacheTTL + time.Second)

	cached, err := repo.GetOccurrenceFromCache(ctx, o.ID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestOccurrenceCache_CorruptedValue(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	repo := &OccurrenceRepository{redisClient: rdb}

	id := uuid.New()
	require.NoError(t, mr.Set(occurrenceCacheKey(id), "{not json"))

	_, err := repo.GetOccurrenceFromCache(context.Background(), id)
	assert.Error(t, err)
}

func TestStatisticsCache_VersionInvalidation(t *testing.T) {
	_, rdb := setupTestRedis(t)
	repo := &OccurrenceRepository{redisClient: rdb}
	ctx := context.Background()

	recife := models.OccurrenceFilters{Municipality: "Recife"}
	olinda := models.OccurrenceFilters{Municipality: "Olinda"}

	stats := models.EmptyStatistics()
	stats.Total = 7
	require.NoError(t, repo.SetStatisticsCache(ctx, recife, stats, time.Minute))

	cached, err := repo.GetStatisticsFromCache(ctx, recife)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 7, cached.Total)

	cached, err = repo.GetStatisticsFromCache(ctx, olinda)
	require.NoError(t, err)
	assert.Nil(t, cached, "другие фильтры - другой ключ")

	require.NoError(t, repo.InvalidateStatisticsCache(ctx))

	cached, err = repo.GetStatisticsFromCache(ctx, recife)
	require.NoError(t, err)
	assert.Nil(t, cached, "после смены версии старые значения недоступны")
}

func TestStatisticsCacheKey(t *testing.T) {
	f := models.OccurrenceFilters{Type: models.TypeFire}

	k1, err := statisticsCacheKey(1, f)
	require.NoError(t, err)
	k2, err := statisticsCacheKey(1, f)
	require.NoError(t, err)
	k3, err := statisticsCacheKey(2, f)
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Contains(t, k1, "occurrence_stats:v1:")
}

func TestTokenRepository(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	repo := NewTokenRepository(rdb)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Hour))
	assert.Equal(t, time.Hour, mr.TTL(revokedTokenKey("jti-1")))

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Просроченный токен не записывается
	require.NoError(t, repo.Revoke(ctx, "jti-2", -time.Second))
	assert.False(t, mr.Exists(revokedTokenKey("jti-2")))
}
