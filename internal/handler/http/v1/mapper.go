package v1

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/shenikar/crime_analytics/internal/service"
)

// parseLocationID разбирает необязательный идентификатор локации
func parseLocationID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid location_id: %w", err)
	}
	return &id, nil
}

// parseCategory не проверяет значение, неизвестную категорию отклоняет сервис
func parseCategory(raw string) *models.Category {
	if raw == "" {
		return nil
	}
	c := models.Category(raw)
	return &c
}

func QueryToCrimeStatsRequest(q CrimeStatsQuery) (service.CrimeStatsRequest, error) {
	locationID, err := parseLocationID(q.LocationID)
	if err != nil {
		return service.CrimeStatsRequest{}, err
	}
	return service.CrimeStatsRequest{
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		LocationID: locationID,
		Category:   parseCategory(q.CrimeType),
	}, nil
}

func QueryToTrendRequest(q TrendQuery) (service.TrendRequest, error) {
	locationID, err := parseLocationID(q.LocationID)
	if err != nil {
		return service.TrendRequest{}, err
	}
	return service.TrendRequest{
		Period:     q.Period,
		Category:   parseCategory(q.CrimeType),
		LocationID: locationID,
		DaysBack:   q.DaysBack,
	}, nil
}

func QueryToPredictionRequest(q PredictionQuery) (service.PredictionRequest, error) {
	locationID, err := parseLocationID(q.LocationID)
	if err != nil {
		return service.PredictionRequest{}, err
	}
	return service.PredictionRequest{
		PredictionDays: q.PredictionDays,
		LocationID:     locationID,
		Category:       parseCategory(q.CrimeType),
	}, nil
}

func QueryToTimeBasedRequest(q TimeBasedQuery) (service.TimeBasedRequest, error) {
	locationID, err := parseLocationID(q.LocationID)
	if err != nil {
		return service.TimeBasedRequest{}, err
	}
	return service.TimeBasedRequest{
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		LocationID: locationID,
		Category:   parseCategory(q.CrimeType),
	}, nil
}

// Дробные значения в ответах округляются до двух знаков. Проценты уже округлены движком.

func RoundCrimeStats(m *models.CrimeStats) *models.CrimeStats {
	out := *m
	out.AverageResolutionHours = analytics.Round2(m.AverageResolutionHours)
	return &out
}

func RoundPredictiveAnalysis(m *models.PredictiveAnalysis) *models.PredictiveAnalysis {
	out := *m
	out.Mean = analytics.Round2(m.Mean)
	out.StdDev = analytics.Round2(m.StdDev)
	out.OverallConfidence = analytics.Round2(m.OverallConfidence)
	out.Predictions = make([]models.Prediction, len(m.Predictions))
	for i, p := range m.Predictions {
		p.Confidence = analytics.Round2(p.Confidence)
		out.Predictions[i] = p
	}
	return &out
}

func RoundPerformanceAnalytics(m *models.PerformanceAnalytics) *models.PerformanceAnalytics {
	out := *m
	out.AverageResolutionHours = analytics.Round2(m.AverageResolutionHours)
	return &out
}

// ModelsToNearbyResponses преобразует найденные локации в DTO для ответа
func ModelsToNearbyResponses(nearby []models.NearbyLocation) []NearbyLocationResponse {
	responses := make([]NearbyLocationResponse, len(nearby))
	for i, n := range nearby {
		responses[i] = NearbyLocationResponse{
			ID:           n.Location.ID,
			Latitude:     n.Location.Latitude,
			Longitude:    n.Location.Longitude,
			County:       n.Location.County,
			SubCounty:    n.Location.SubCounty,
			City:         n.Location.City,
			Address:      n.Location.Address,
			LocationType: n.Location.LocationType,
			DistanceKM:   analytics.Round2(n.DistanceKM),
		}
	}
	return responses
}
