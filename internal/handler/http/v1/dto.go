package v1

import (
	"time"

	"github.com/google/uuid"
)

// Даты принимаются в формате RFC3339, например 2025-08-01T00:00:00Z

// CrimeStatsQuery DTO параметров статистики преступлений
// @Description DTO параметров статистики преступлений
type CrimeStatsQuery struct {
	StartDate  *time.Time `form:"start_date"`
	EndDate    *time.Time `form:"end_date"`
	LocationID string     `form:"location_id" validate:"omitempty,uuid"`
	CrimeType  string     `form:"crime_type"`
}

// TrendQuery DTO параметров анализа трендов
// @Description DTO параметров анализа трендов
type TrendQuery struct {
	Period     string `form:"period,default=monthly" validate:"oneof=daily weekly monthly yearly"`
	CrimeType  string `form:"crime_type"`
	LocationID string `form:"location_id" validate:"omitempty,uuid"`
	DaysBack   int    `form:"days_back" validate:"omitempty,gte=1,lte=3650"`
}

// HotspotQuery DTO параметров поиска горячих точек
// @Description DTO параметров поиска горячих точек
type HotspotQuery struct {
	RadiusKM     float64 `form:"radius_km,default=5" validate:"gte=0.1,lte=50"`
	MinIncidents int     `form:"min_incidents,default=5" validate:"gte=1"`
	DaysBack     int     `form:"days_back,default=30" validate:"gte=1,lte=365"`
}

// PredictionQuery DTO параметров прогноза
// @Description DTO параметров прогноза
type PredictionQuery struct {
	PredictionDays int    `form:"prediction_days,default=7" validate:"gte=1,lte=30"`
	LocationID     string `form:"location_id" validate:"omitempty,uuid"`
	CrimeType      string `form:"crime_type"`
}

// WindowQuery DTO для отчетов по временному окну
// @Description DTO для отчетов по временному окну
type WindowQuery struct {
	StartDate *time.Time `form:"start_date"`
	EndDate   *time.Time `form:"end_date"`
}

// TimeBasedQuery DTO параметров распределения по времени
// @Description DTO параметров распределения по времени
type TimeBasedQuery struct {
	StartDate  *time.Time `form:"start_date"`
	EndDate    *time.Time `form:"end_date"`
	LocationID string     `form:"location_id" validate:"omitempty,uuid"`
	CrimeType  string     `form:"crime_type"`
}

// NearbyQuery DTO для поиска локаций рядом с точкой
// @Description DTO для поиска локаций рядом с точкой
type NearbyQuery struct {
	Latitude  *float64 `form:"latitude" validate:"required,latitude"`
	Longitude *float64 `form:"longitude" validate:"required,longitude"`
	RadiusKM  float64  `form:"radius_km,default=10" validate:"gte=0.1,lte=100"`
}

// NearbyLocationResponse DTO локации с расстоянием до точки запроса
// @Description DTO локации с расстоянием до точки запроса
type NearbyLocationResponse struct {
	ID           uuid.UUID `json:"id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	County       string    `json:"county,omitempty"`
	SubCounty    string    `json:"sub_county,omitempty"`
	City         string    `json:"city,omitempty"`
	Address      *string   `json:"address,omitempty"`
	LocationType string    `json:"location_type"`
	DistanceKM   float64   `json:"distance_km"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки. Field заполняется для ошибок валидации.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
