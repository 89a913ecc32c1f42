package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/models"
)

// Параметры запросов к движку. Лимиты (радиус, горизонт прогноза) проверяются на границе API.

type CrimeStatsRequest struct {
	StartDate  *time.Time
	EndDate    *time.Time
	LocationID *uuid.UUID
	Category   *models.Category
}

type TrendRequest struct {
	Period     string
	Category   *models.Category
	LocationID *uuid.UUID
	// DaysBack переопределяет глубину выборки периода, 0 - значение по умолчанию
	DaysBack int
}

type HotspotRequest struct {
	RadiusKM     float64
	MinIncidents int
	DaysBack     int
}

type NearbyRequest struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
}

type PredictionRequest struct {
	PredictionDays int
	LocationID     *uuid.UUID
	Category       *models.Category
}

type WindowRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type TimeBasedRequest struct {
	StartDate  *time.Time
	EndDate    *time.Time
	LocationID *uuid.UUID
	Category   *models.Category
}

func baseFilter(locationID *uuid.UUID, category *models.Category) models.IncidentFilter {
	return models.IncidentFilter{LocationID: locationID, Category: category}
}
