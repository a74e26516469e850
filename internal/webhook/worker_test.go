package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/occurrence_reporting_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url, secret string) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (WebhookEvent, string) {
	event := WebhookEvent{
		Event:        EventOccurrenceCreated,
		OccurrenceID: uuid.New(),
		ActorID:      uuid.New(),
		Timestamp:    time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestProcessWebhookEvent_SignsPayload(t *testing.T) {
	event, raw := testEvent(t)

	var gotBody, gotSignature, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "s3cr3t")
	ok := w.processWebhookEvent(context.Background(), event, raw)

	assert.True(t, ok)
	assert.Equal(t, raw, gotBody)
	assert.Equal(t, generateHMACSHA256(raw, "s3cr3t"), gotSignature)
	assert.Contains(t, gotContentType, "application/json")
}

func TestProcessWebhookEvent_NoSecretNoSignature(t *testing.T) {
	event, raw := testEvent(t)

	var hasSignature atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasSignature.Store(r.Header.Get(signatureHeader) != "")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	assert.True(t, w.processWebhookEvent(context.Background(), event, raw))
	assert.False(t, hasSignature.Load())
}

func TestProcessWebhookEvent_RetriesOnServerError(t *testing.T) {
	event, raw := testEvent(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	ok := w.processWebhookEvent(context.Background(), event, raw)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_GivesUpAfterMaxRetries(t *testing.T) {
	event, raw := testEvent(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	ok := w.processWebhookEvent(context.Background(), event, raw)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_NoURLSkipsDelivery(t *testing.T) {
	event, raw := testEvent(t)
	w := newTestWorker("", "")
	assert.False(t, w.processWebhookEvent(context.Background(), event, raw))
}

func TestWebhookWorker_DeliversQueuedEvents(t *testing.T) {
	received := make(chan WebhookEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event WebhookEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err == nil {
			received <- event
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	w := newTestWorker(srv.URL, "s3cr3t")
	w.redisClient = rdb

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	event, _ := testEvent(t)
	require.NoError(t, NewRedisWebhookPublisher(rdb).Publish(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, event.OccurrenceID, got.OccurrenceID)
		assert.Equal(t, EventOccurrenceCreated, got.Event)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}
}

func TestGenerateHMACSHA256(t *testing.T) {
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key"))
	assert.NotEqual(t, generateHMACSHA256("a", "key"), generateHMACSHA256("a", "other"))
}
