package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_analytics/internal/config"
	"github.com/sirupsen/logrus"
)

// popTimeout ограничивает блокирующее ожидание, чтобы воркер замечал остановку
const popTimeout = time.Second

// AlertWorker - структура для доставки оповещений из очереди на вебхук
type AlertWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	done        chan struct{}
}

// NewAlertWorker создает новый AlertWorker
func NewAlertWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		done: make(chan struct{}),
	}
}

// Start запускает горутину для обработки очереди оповещений
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting hotspot alert worker...")
	go func() {
		defer close(w.done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping hotspot alert worker.")
				return
			}
			if _, err := w.processNext(ctx); err != nil && ctx.Err() == nil {
				w.logger.WithError(err).Error("Failed to pop hotspot alert from Redis")
				sleepCtx(ctx, w.cfg.WebhookTimeout)
			}
		}
	}()
}

// Done закрывается после остановки воркера
func (w *AlertWorker) Done() <-chan struct{} {
	return w.done
}

// processNext забирает одно событие из очереди. Возвращает false, если очередь пуста.
func (w *AlertWorker) processNext(ctx context.Context) (bool, error) {
	// BRPOP - блокирующее извлечение из правой части списка (очереди)
	result, err := w.redisClient.BRPop(ctx, popTimeout, alertQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	// result[0] - ключ, result[1] - значение
	payload := result[1]
	var alert HotspotAlert
	if err := json.Unmarshal([]byte(payload), &alert); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal hotspot alert from Redis")
		return true, nil
	}

	w.deliver(ctx, alert, payload)
	return true, nil
}

// deliver отправляет оповещение с экспоненциальной задержкой между попытками
func (w *AlertWorker) deliver(ctx context.Context, alert HotspotAlert, rawPayload string) bool {
	log := w.logger.WithField("location_id", alert.LocationID).WithField("risk_level", alert.RiskTier)
	log.Debug("Processing hotspot alert...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, rawPayload)
		switch {
		case err == nil && status >= 200 && status < 300:
			log.Info("Hotspot alert delivered successfully.")
			return true
		case err != nil:
			log.WithError(err).Warnf("Failed to send hotspot alert. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		default:
			log.Warnf("Alert delivery failed with status code %d. Retrying in %v. Retries left: %d", status, delay, maxRetries-1-i)
		}
		if i < maxRetries-1 {
			if !sleepCtx(ctx, delay) {
				break
			}
			delay *= 2 // Экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver hotspot alert after %d attempts.", maxRetries)
	return false
}

func (w *AlertWorker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// sleepCtx ждет d или отмены контекста, возвращает false при отмене
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
