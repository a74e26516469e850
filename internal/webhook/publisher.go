package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
)

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks . WebhookPublisher

const (
	webhookQueueKey = "webhook_events"
)

// EventType - вид события происшествия
type EventType string

const (
	EventOccurrenceCreated       EventType = "occurrence.created"
	EventOccurrenceUpdated       EventType = "occurrence.updated"
	EventOccurrenceStatusChanged EventType = "occurrence.status_changed"
	EventOccurrenceDeleted       EventType = "occurrence.deleted"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Event        EventType                     `json:"event"`
	OccurrenceID uuid.UUID                     `json:"occurrence_id"`
	ActorID      uuid.UUID                     `json:"actor_id"`
	Timestamp    time.Time                     `json:"timestamp"`
	Occurrence   *models.Occurrence            `json:"occurrence,omitempty"`
	Changes      map[string]models.FieldChange `json:"changes,omitempty"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
