package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shenikar/crime_analytics/internal/models"
)

// Пороги направления тренда в процентах, фиксированная политика
const (
	trendIncreasingThreshold = 5.0
	trendDecreasingThreshold = -5.0
)

var periodLookBackDays = map[models.Period]int{
	models.PeriodDaily:   30,
	models.PeriodWeekly:  84,
	models.PeriodMonthly: 365,
	models.PeriodYearly:  1095,
}

// ParsePeriod проверяет строку периода. Неизвестный период - ошибка валидации.
func ParsePeriod(s string) (models.Period, error) {
	p := models.Period(s)
	if _, ok := periodLookBackDays[p]; !ok {
		return "", invalid("period", "must be one of daily, weekly, monthly, yearly, got %q", s)
	}
	return p, nil
}

// LookBackDays возвращает глубину выборки по умолчанию для периода
func LookBackDays(p models.Period) int {
	return periodLookBackDays[p]
}

// TruncatePeriod возвращает начало календарного интервала в часовом поясе loc.
// Неделя начинается с понедельника.
func TruncatePeriod(t time.Time, p models.Period, loc *time.Location) time.Time {
	t = t.In(loc)
	switch p {
	case models.PeriodWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case models.PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case models.PeriodYearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

func nextPeriod(t time.Time, p models.Period) time.Time {
	switch p {
	case models.PeriodWeekly:
		return t.AddDate(0, 0, 7)
	case models.PeriodMonthly:
		return t.AddDate(0, 1, 0)
	case models.PeriodYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// PeriodLabel форматирует начало интервала: 2025-08-24, 2025-W34, 2025-08, 2025
func PeriodLabel(t time.Time, p models.Period) string {
	switch p {
	case models.PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case models.PeriodMonthly:
		return t.Format("2006-01")
	case models.PeriodYearly:
		return strconv.Itoa(t.Year())
	default:
		return t.Format("2006-01-02")
	}
}

// Trend - временной ряд с итоговым изменением и направлением
type Trend struct {
	Points                []models.TrendPoint
	TotalChangePercentage float64
	Direction             models.TrendDirection
}

// BuildTrend упорядочивает интервалы по возрастанию, заполняет нулями пропуски между
// первым и последним наблюдаемым интервалом и вычисляет изменения
func BuildTrend(buckets []models.PeriodCount, p models.Period, loc *time.Location) Trend {
	counts := make(map[time.Time]int, len(buckets))
	for _, b := range buckets {
		counts[TruncatePeriod(b.Start, p, loc)] += b.Count
	}
	if len(counts) == 0 {
		return Trend{Points: []models.TrendPoint{}, Direction: models.TrendStable}
	}

	starts := make([]time.Time, 0, len(counts))
	for start := range counts {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	points := make([]models.TrendPoint, 0, len(starts))
	last := starts[len(starts)-1]
	for cur := starts[0]; !cur.After(last); cur = TruncatePeriod(nextPeriod(cur, p), p, loc) {
		points = append(points, models.TrendPoint{
			Period:      PeriodLabel(cur, p),
			PeriodStart: cur,
			Count:       counts[cur],
		})
	}
	for i := 1; i < len(points); i++ {
		points[i].PercentageChange = PercentageChange(points[i-1].Count, points[i].Count)
	}

	trend := Trend{Points: points, Direction: models.TrendStable}
	if len(points) < 2 {
		return trend
	}
	first, final := points[0].Count, points[len(points)-1].Count
	if first > 0 {
		trend.TotalChangePercentage = Round2(float64(final-first) / float64(first) * 100)
	}
	trend.Direction = Direction(trend.TotalChangePercentage)
	return trend
}

// PercentageChange возвращает изменение в процентах, nil если предыдущее значение равно нулю
func PercentageChange(prev, cur int) *float64 {
	if prev <= 0 {
		return nil
	}
	change := Round2(float64(cur-prev) / float64(prev) * 100)
	return &change
}

// Direction классифицирует итоговое изменение
func Direction(totalChange float64) models.TrendDirection {
	switch {
	case totalChange > trendIncreasingThreshold:
		return models.TrendIncreasing
	case totalChange < trendDecreasingThreshold:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}
