package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_analytics/internal/models"
)

const (
	alertQueueKey    = "hotspot_alerts"
	alertCooldownKey = "hotspot_alert:%s:%s"
	defaultCooldown  = time.Hour
)

// HotspotAlert - событие о критической горячей точке для внешней системы оповещений
type HotspotAlert struct {
	LocationID    uuid.UUID       `json:"location_id"`
	LocationName  string          `json:"location_name"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	County        string          `json:"county,omitempty"`
	SubCounty     string          `json:"sub_county,omitempty"`
	IncidentCount int             `json:"incident_count"`
	RiskTier      models.RiskTier `json:"risk_level"`
	DaysBack      int             `json:"days_back"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewHotspotAlert формирует событие по найденной горячей точке
func NewHotspotAlert(h models.Hotspot, daysBack int, at time.Time) HotspotAlert {
	return HotspotAlert{
		LocationID:    h.LocationID,
		LocationName:  h.LocationName,
		Latitude:      h.Latitude,
		Longitude:     h.Longitude,
		County:        h.County,
		SubCounty:     h.SubCounty,
		IncidentCount: h.IncidentCount,
		RiskTier:      h.RiskTier,
		DaysBack:      daysBack,
		Timestamp:     at.UTC(),
	}
}

// AlertPublisher - интерфейс для публикации оповещений
type AlertPublisher interface {
	// Publish ставит оповещение в очередь. Возвращает false, если такое оповещение
	// уже отправлялось в течение периода подавления.
	Publish(ctx context.Context, alert HotspotAlert) (bool, error)
}

// RedisAlertPublisher - реализация AlertPublisher поверх списка Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
	cooldown    time.Duration
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client, cooldown time.Duration) *RedisAlertPublisher {
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	return &RedisAlertPublisher{
		redisClient: client,
		cooldown:    cooldown,
	}
}

// Publish публикует оповещение в очередь Redis, повторы по той же локации и уровню подавляются
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert HotspotAlert) (bool, error) {
	key := fmt.Sprintf(alertCooldownKey, alert.LocationID.String(), alert.RiskTier)
	fresh, err := p.redisClient.SetNX(ctx, key, alert.Timestamp.Unix(), p.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set hotspot alert cooldown: %w", err)
	}
	if !fresh {
		return false, nil
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return false, fmt.Errorf("failed to marshal hotspot alert: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		// снимаем подавление, чтобы следующий анализ повторил попытку
		p.redisClient.Del(ctx, key)
		return false, fmt.Errorf("failed to publish hotspot alert to Redis: %w", err)
	}
	return true, nil
}
