package models

import (
	"time"

	"github.com/google/uuid"
)

// Производные сущности аналитики. Вычисляются на каждый запрос и нигде не сохраняются.

// GroupedStat - количество и доля инцидентов для одного значения группировки
type GroupedStat struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type LocationStat struct {
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	Count        int       `json:"count"`
}

type CrimeStats struct {
	TotalCrimes            int            `json:"total_crimes"`
	StartDate              time.Time      `json:"start_date"`
	EndDate                time.Time      `json:"end_date"`
	StatsByType            []GroupedStat  `json:"stats_by_type"`
	StatsBySeverity        []GroupedStat  `json:"stats_by_severity"`
	StatsByStatus          []GroupedStat  `json:"stats_by_status"`
	StatsByLocation        []LocationStat `json:"stats_by_location"`
	AverageResolutionHours float64        `json:"average_resolution_hours"`
}

// TrendPoint - точка временного ряда. PercentageChange равен nil для первой точки
// и когда предыдущее значение равно нулю.
type TrendPoint struct {
	Period           string    `json:"period"`
	PeriodStart      time.Time `json:"period_start"`
	Count            int       `json:"count"`
	PercentageChange *float64  `json:"percentage_change"`
}

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

type TrendAnalysis struct {
	Period                Period         `json:"period"`
	Category              *Category      `json:"crime_type,omitempty"`
	LocationID            *uuid.UUID     `json:"location_id,omitempty"`
	StartDate             time.Time      `json:"start_date"`
	EndDate               time.Time      `json:"end_date"`
	Trends                []TrendPoint   `json:"trends"`
	TotalChangePercentage float64        `json:"total_change_percentage"`
	Direction             TrendDirection `json:"trend_direction"`
}

// RiskTier - уровень риска горячей точки
type RiskTier string

const (
	RiskLow      RiskTier = "LOW"
	RiskMedium   RiskTier = "MEDIUM"
	RiskHigh     RiskTier = "HIGH"
	RiskCritical RiskTier = "CRITICAL"
)

type Hotspot struct {
	LocationID    uuid.UUID `json:"location_id"`
	LocationName  string    `json:"location_name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	IncidentCount int       `json:"incident_count"`
	RiskTier      RiskTier  `json:"risk_level"`
	County        string    `json:"county,omitempty"`
	SubCounty     string    `json:"sub_county,omitempty"`
}

type HotspotAnalysis struct {
	RadiusKM     float64   `json:"radius_km"`
	MinIncidents int       `json:"min_incidents"`
	DaysBack     int       `json:"days_back"`
	Hotspots     []Hotspot `json:"hotspots"`
}

type NearbyLocation struct {
	Location   Location `json:"location"`
	DistanceKM float64  `json:"distance_km"`
}

type Prediction struct {
	Date           time.Time `json:"date"`
	PredictedCount int       `json:"predicted_count"`
	Confidence     float64   `json:"confidence"`
	LowerBound     int       `json:"lower_bound"`
	UpperBound     int       `json:"upper_bound"`
}

type PredictiveAnalysis struct {
	Category          *Category    `json:"crime_type,omitempty"`
	LocationID        *uuid.UUID   `json:"location_id,omitempty"`
	PredictionDays    int          `json:"prediction_days"`
	HistoricalSamples []int        `json:"historical_samples"`
	Mean              float64      `json:"mean"`
	StdDev            float64      `json:"std_dev"`
	Predictions       []Prediction `json:"predictions"`
	OverallConfidence float64      `json:"overall_confidence"`
	TotalPredicted    int          `json:"total_predicted"`
	Recommendation    string       `json:"recommendation"`
}

type GeographicStats struct {
	County             string    `json:"county"`
	SubCounty          string    `json:"sub_county"`
	TotalIncidents     int       `json:"total_incidents"`
	MostCommonCategory *Category `json:"most_common_crime,omitempty"`
	SafetyScore        float64   `json:"safety_score"`
}

type GeographicAnalytics struct {
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	Regions       []GeographicStats `json:"regions"`
	Safest        []GeographicStats `json:"safest_areas"`
	MostDangerous []GeographicStats `json:"most_dangerous_areas"`
}

type DashboardSummary struct {
	TotalUsers      int          `json:"total_users"`
	ActiveUsers     int          `json:"active_users"`
	TotalReports    int          `json:"total_reports"`
	ResolvedReports int          `json:"resolved_reports"`
	PendingReports  int          `json:"pending_reports"`
	RecentTrends    []TrendPoint `json:"recent_trends"`
	TopHotspots     []Hotspot    `json:"top_hotspots"`
}

type OfficerStats struct {
	OfficerID       uuid.UUID `json:"officer_id"`
	AssignedReports int       `json:"assigned_reports"`
	ResolvedReports int       `json:"resolved_reports"`
	ResolutionRate  float64   `json:"resolution_rate"`
}

type PerformanceAnalytics struct {
	StartDate              time.Time      `json:"start_date"`
	EndDate                time.Time      `json:"end_date"`
	TotalReports           int            `json:"total_reports"`
	ResolvedReports        int            `json:"resolved_reports"`
	ResolutionRate         float64        `json:"resolution_rate"`
	AverageResolutionHours float64        `json:"average_resolution_hours"`
	ActiveOfficers         int            `json:"active_officers"`
	Officers               []OfficerStats `json:"officers"`
}

type TimeBasedAnalytics struct {
	StartDate           time.Time     `json:"start_date"`
	EndDate             time.Time     `json:"end_date"`
	TotalIncidents      int           `json:"total_incidents"`
	HourlyDistribution  []GroupedStat `json:"hourly_distribution"`
	WeekdayDistribution []GroupedStat `json:"weekday_distribution"`
	PeakHour            *int          `json:"peak_hour,omitempty"`
	PeakDay             string        `json:"peak_day,omitempty"`
}
