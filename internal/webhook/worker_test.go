package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/crime_analytics/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, webhookURL string) (*AlertWorker, *RedisAlertPublisher, *bytes.Buffer) {
	t.Helper()
	_, client := newTestRedis(t)
	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)

	cfg := &config.Config{
		WebhookURL:        webhookURL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewAlertWorker(client, logger, cfg), NewRedisAlertPublisher(client, time.Hour), logs
}

func TestAlertWorker_DeliversSignedAlert(t *testing.T) {
	// Подготовка
	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- r
		bodies <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, publisher, logs := newTestWorker(t, server.URL)
	alert := testAlert()
	_, err := publisher.Publish(context.Background(), alert)
	require.NoError(t, err)

	// Действие
	ok, err := worker.processNext(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.True(t, ok)
	req := <-received
	body := <-bodies
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, generateHMACSHA256(string(body), "s3cret"), req.Header.Get("X-Webhook-Signature"))

	var got HotspotAlert
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, alert.LocationID, got.LocationID)
	assert.Contains(t, logs.String(), "Hotspot alert delivered successfully.")
}

func TestAlertWorker_RetriesUntilSuccess(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker, _, _ := newTestWorker(t, server.URL)

	delivered := worker.deliver(context.Background(), testAlert(), `{"risk_level":"CRITICAL"}`)

	assert.True(t, delivered)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestAlertWorker_GivesUpAfterMaxRetries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, _, logs := newTestWorker(t, server.URL)

	delivered := worker.deliver(context.Background(), testAlert(), `{}`)

	assert.False(t, delivered)
	assert.Equal(t, int32(3), attempts.Load())
	assert.Contains(t, logs.String(), "Failed to deliver hotspot alert after 3 attempts.")
}

func TestAlertWorker_NoWebhookConfigured(t *testing.T) {
	worker, _, logs := newTestWorker(t, "")

	assert.False(t, worker.deliver(context.Background(), testAlert(), `{}`))
	assert.Contains(t, logs.String(), "Webhook URL is not configured")
}

func TestAlertWorker_SkipsMalformedPayload(t *testing.T) {
	_, client := newTestRedis(t)
	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)
	worker := NewAlertWorker(client, logger, &config.Config{WebhookTimeout: time.Second})
	require.NoError(t, client.LPush(context.Background(), alertQueueKey, "not json").Err())

	ok, err := worker.processNext(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, logs.String(), "Failed to unmarshal hotspot alert from Redis")
}

func TestAlertWorker_StopsOnCancel(t *testing.T) {
	worker, _, _ := newTestWorker(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	worker.Start(ctx)
	cancel()

	select {
	case <-worker.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestSleepCtx(t *testing.T) {
	assert.True(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleepCtx(ctx, time.Hour))
}
