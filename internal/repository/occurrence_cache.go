package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
)

const (
	occurrenceCacheTTL    = 5 * time.Minute
	statisticsVersionKey  = "occurrence_stats:version"
	statisticsCachePrefix = "occurrence_stats"
	occurrenceCachePrefix = "occurrence"
)

func occurrenceCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", occurrenceCachePrefix, id.String())
}

// statisticsCacheKey строит ключ из текущей версии и хеша фильтров.
// Смена версии делает недоступными все ранее сохраненные статистики.
func statisticsCacheKey(version int64, filters models.OccurrenceFilters) (string, error) {
	raw, err := json.Marshal(filters)
	if err != nil {
		return "", fmt.Errorf("failed to marshal statistics filters: %w", err)
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s:v%d:%s", statisticsCachePrefix, version, hex.EncodeToString(sum[:])), nil
}

// GetOccurrenceFromCache пытается получить происшествие из Redis. Промах - (nil, nil).
func (r *OccurrenceRepository) GetOccurrenceFromCache(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	val, err := r.redisClient.Get(ctx, occurrenceCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get occurrence from cache: %w", err)
	}

	o := &models.Occurrence{}
	if err := json.Unmarshal(val, o); err != nil {
		return nil, fmt.Errorf("failed to unmarshal occurrence from cache: %w", err)
	}
	return o, nil
}

// SetOccurrenceCache сохраняет происшествие в Redis на 5 минут
func (r *OccurrenceRepository) SetOccurrenceCache(ctx context.Context, o *models.Occurrence) error {
	val, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal occurrence for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, occurrenceCacheKey(o.ID), val, occurrenceCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set occurrence in cache: %w", err)
	}
	return nil
}

func (r *OccurrenceRepository) InvalidateOccurrenceCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, occurrenceCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate occurrence cache: %w", err)
	}
	return nil
}

func (r *OccurrenceRepository) statisticsVersion(ctx context.Context) (int64, error) {
	version, err := r.redisClient.Get(ctx, statisticsVersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get statistics cache version: %w", err)
	}
	return version, nil
}

// GetStatisticsFromCache возвращает статистику для фильтров. Промах - (nil, nil).
func (r *OccurrenceRepository) GetStatisticsFromCache(ctx context.Context, filters models.OccurrenceFilters) (*models.Statistics, error) {
	version, err := r.statisticsVersion(ctx)
	if err != nil {
		return nil, err
	}
	key, err := statisticsCacheKey(version, filters)
	if err != nil {
		return nil, err
	}

	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get statistics from cache: %w", err)
	}

	stats := &models.Statistics{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal statistics from cache: %w", err)
	}
	return stats, nil
}

func (r *OccurrenceRepository) SetStatisticsCache(ctx context.Context, filters models.OccurrenceFilters, stats *models.Statistics, ttl time.Duration) error {
	version, err := r.statisticsVersion(ctx)
	if err != nil {
		return err
	}
	key, err := statisticsCacheKey(version, filters)
	if err != nil {
		return err
	}
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal statistics for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set statistics in cache: %w", err)
	}
	return nil
}

// InvalidateStatisticsCache увеличивает версию, старые ключи истекают по TTL
func (r *OccurrenceRepository) InvalidateStatisticsCache(ctx context.Context) error {
	if err := r.redisClient.Incr(ctx, statisticsVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate statistics cache: %w", err)
	}
	return nil
}
