package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/config"
	"github.com/shenikar/crime_analytics/internal/metrics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/shenikar/crime_analytics/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AnalyticsRepository определяет контракт чтения журнала инцидентов.
// Все методы только читают данные и не учитывают удаленные инциденты.
type AnalyticsRepository interface {
	CountIncidents(ctx context.Context, filter models.IncidentFilter) (int, error)
	GroupIncidents(ctx context.Context, filter models.IncidentFilter, groupBy models.GroupBy) ([]models.GroupCount, error)
	CountByPeriod(ctx context.Context, filter models.IncidentFilter, period models.Period) ([]models.PeriodCount, error)
	AverageDurationHours(ctx context.Context, filter models.IncidentFilter, statuses []models.Status) (float64, error)
	EarliestIncident(ctx context.Context, filter models.IncidentFilter) (*time.Time, error)
	QueryIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	QueryLocations(ctx context.Context, filter models.LocationFilter) ([]*models.Location, error)
	QueryUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
}

// AnalyticsService определяет контракт аналитического движка.
// Запросы приходят уже авторизованными, проверка ролей выполняется до вызова.
type AnalyticsService interface {
	GetCrimeStatistics(ctx context.Context, req CrimeStatsRequest) (*models.CrimeStats, error)
	GetTrendAnalysis(ctx context.Context, req TrendRequest) (*models.TrendAnalysis, error)
	GetHotspotAnalysis(ctx context.Context, req HotspotRequest) (*models.HotspotAnalysis, error)
	GetNearbyLocations(ctx context.Context, req NearbyRequest) ([]models.NearbyLocation, error)
	GetPredictiveAnalysis(ctx context.Context, req PredictionRequest) (*models.PredictiveAnalysis, error)
	GetGeographicAnalytics(ctx context.Context, req WindowRequest) (*models.GeographicAnalytics, error)
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
	GetPerformanceAnalytics(ctx context.Context, req WindowRequest) (*models.PerformanceAnalytics, error)
	GetTimeBasedAnalytics(ctx context.Context, req TimeBasedRequest) (*models.TimeBasedAnalytics, error)
}

// analyticsService не хранит изменяемого состояния, один экземпляр обслуживает все запросы
type analyticsService struct {
	repo      AnalyticsRepository
	logger    *logrus.Logger
	publisher webhook.AlertPublisher
	metrics   *metrics.Metrics
	loc       *time.Location
	now       func() time.Time
}

func NewAnalyticsService(repo AnalyticsRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.AlertPublisher, m *metrics.Metrics) AnalyticsService {
	loc := time.UTC
	if cfg != nil && cfg.LedgerLocation != nil {
		loc = cfg.LedgerLocation
	}
	return &analyticsService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		metrics:   m,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *analyticsService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  method,
	})
}

// observe фиксирует длительность и результат операции в метриках
func (s *analyticsService) observe(operation string, started time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveRequest(operation, time.Since(started), outcome(err))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case analytics.IsValidation(err):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// storeError помечает ошибку хранилища как повторяемую.
// Отмена контекста возвращается как есть, чтобы вызывающий получил чистый сигнал отмены.
func storeError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", analytics.ErrStoreUnavailable, op, err)
}
