package service

import (
	"context"
	"time"

	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// GetPredictiveAnalysis строит наивный прогноз по историческим выборкам.
// Это эвристика на среднем и стандартном отклонении, а не обученная модель.
func (s *analyticsService) GetPredictiveAnalysis(ctx context.Context, req PredictionRequest) (result *models.PredictiveAnalysis, err error) {
	defer func(started time.Time) { s.observe("predictions", started, err) }(time.Now())
	log := s.log("GetPredictiveAnalysis").WithField("prediction_days", req.PredictionDays)

	if err := analytics.ValidatePredictionDays(req.PredictionDays); err != nil {
		log.WithError(err).Warn("Invalid predictive analysis request")
		return nil, err
	}
	if err := analytics.ValidateCategory(req.Category); err != nil {
		log.WithError(err).Warn("Invalid predictive analysis request")
		return nil, err
	}
	log.Info("Computing predictive analysis")

	now := s.now()
	samples, err := s.historicalSamples(ctx, baseFilter(req.LocationID, req.Category), now, req.PredictionDays)
	if err != nil {
		return nil, s.fail(log, "predictive analysis", err)
	}
	forecast := analytics.BuildForecast(samples, req.PredictionDays, now, s.loc)

	log.WithFields(logrus.Fields{
		"samples":    len(samples),
		"confidence": forecast.OverallConfidence,
	}).Info("Predictive analysis computed successfully")
	return &models.PredictiveAnalysis{
		Category:          req.Category,
		LocationID:        req.LocationID,
		PredictionDays:    req.PredictionDays,
		HistoricalSamples: samples,
		Mean:              forecast.Mean,
		StdDev:            forecast.StdDev,
		Predictions:       forecast.Predictions,
		OverallConfidence: forecast.OverallConfidence,
		TotalPredicted:    forecast.TotalPredicted,
		Recommendation:    forecast.Recommendation,
	}, nil
}

// historicalSamples считает инциденты в окнах по каждому смещению.
// Окна, закончившиеся до первого инцидента подходящего фильтра, выборкой не считаются.
func (s *analyticsService) historicalSamples(ctx context.Context, filter models.IncidentFilter, now time.Time, predictionDays int) ([]int, error) {
	earliest, err := s.repo.EarliestIncident(ctx, filter)
	if err != nil {
		return nil, storeError("earliest incident", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	samples := make([]int, 0, len(analytics.HistoricalOffsetsMonths))
	if earliest == nil {
		return samples, nil
	}

	for _, w := range analytics.SampleWindows(now, predictionDays) {
		if !w.End.After(*earliest) {
			continue
		}
		count, err := s.count(ctx, w.Filter(filter))
		if err != nil {
			return nil, err
		}
		samples = append(samples, count)
	}
	return samples, nil
}
