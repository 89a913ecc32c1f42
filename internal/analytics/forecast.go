package analytics

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shenikar/crime_analytics/internal/models"
)

// HistoricalOffsetsMonths - смещения назад (в месяцах по 30 дней), по одной выборке на смещение
var HistoricalOffsetsMonths = []int{1, 2, 3, 6, 12}

const (
	daysPerMonth = 30

	minConfidence = 0.3
	maxConfidence = 1.0

	lowConfidenceThreshold = 0.6
	veryHighVolume         = 20
	highVolume             = 10
	moderateVolume         = 5
)

// Тексты рекомендаций. Формулировки косметические, важны пороги и порядок проверок.
const (
	RecommendationLowConfidence = "Insufficient or highly variable historical data; treat this forecast as indicative only and rely on field intelligence."
	RecommendationVeryHigh      = "Very high incident volume expected: deploy additional patrols and put rapid response units on standby."
	RecommendationHigh          = "High incident volume expected: increase patrol frequency in affected areas."
	RecommendationModerate      = "Moderate incident volume expected: maintain regular patrols and monitor developing trends."
	RecommendationLow           = "Low incident volume expected: continue standard operations and community engagement."
)

// SampleWindows возвращает окна исторических выборок для прогноза на predictionDays дней
func SampleWindows(now time.Time, predictionDays int) []Window {
	windows := make([]Window, 0, len(HistoricalOffsetsMonths))
	for _, offset := range HistoricalOffsetsMonths {
		end := now.UTC().AddDate(0, 0, -offset*daysPerMonth)
		windows = append(windows, Window{Start: end.AddDate(0, 0, -predictionDays), End: end})
	}
	return windows
}

// ValidatePredictionDays проверяет горизонт прогноза
func ValidatePredictionDays(days int) error {
	if days < 1 {
		return invalid("prediction_days", "must be positive")
	}
	return nil
}

// Forecast - результат наивного прогноза
type Forecast struct {
	Mean              float64
	StdDev            float64
	Predictions       []models.Prediction
	OverallConfidence float64
	TotalPredicted    int
	Recommendation    string
}

// BuildForecast считает среднее и выборочное стандартное отклонение исторических выборок
// и строит прогноз по дням, начиная со дня, следующего за from
func BuildForecast(samples []int, predictionDays int, from time.Time, loc *time.Location) Forecast {
	if len(samples) == 0 || predictionDays < 1 {
		return Forecast{Predictions: []models.Prediction{}, Recommendation: Recommend(0, 0)}
	}

	data := stats.LoadRawData(samples)
	mean, _ := stats.Mean(data)
	stdev := 0.0
	if len(samples) >= 2 {
		stdev, _ = stats.StandardDeviationSample(data)
	}

	dailyAvg := mean / float64(predictionDays)
	confidence := clamp(1-stdev/math.Max(mean, 1), minConfidence, maxConfidence)
	predicted := int(math.Max(0, math.Floor(dailyAvg)))
	lower := int(math.Max(0, math.Floor(dailyAvg-stdev)))
	upper := int(math.Floor(dailyAvg + stdev))

	day := TruncatePeriod(from, models.PeriodDaily, loc)
	f := Forecast{Mean: mean, StdDev: stdev, Predictions: make([]models.Prediction, 0, predictionDays)}
	confidenceSum := 0.0
	for i := 1; i <= predictionDays; i++ {
		f.Predictions = append(f.Predictions, models.Prediction{
			Date:           day.AddDate(0, 0, i),
			PredictedCount: predicted,
			Confidence:     confidence,
			LowerBound:     lower,
			UpperBound:     upper,
		})
		confidenceSum += confidence
		f.TotalPredicted += predicted
	}
	f.OverallConfidence = confidenceSum / float64(len(f.Predictions))
	f.Recommendation = Recommend(f.OverallConfidence, f.TotalPredicted)
	return f
}

// Recommend выбирает рекомендацию. Низкая уверенность проверяется раньше объема.
func Recommend(confidence float64, totalPredicted int) string {
	switch {
	case confidence < lowConfidenceThreshold:
		return RecommendationLowConfidence
	case totalPredicted > veryHighVolume:
		return RecommendationVeryHigh
	case totalPredicted > highVolume:
		return RecommendationHigh
	case totalPredicted > moderateVolume:
		return RecommendationModerate
	default:
		return RecommendationLow
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
