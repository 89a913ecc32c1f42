// Package analytics содержит чистые алгоритмы аналитики: агрегацию, тренды,
// горячие точки и прогноз. Пакет не обращается к хранилищу.
package analytics

import (
	"time"

	"github.com/shenikar/crime_analytics/internal/models"
)

// DefaultWindowDays - окно по умолчанию, если границы не заданы
const DefaultWindowDays = 30

// Window - полуоткрытый интервал [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow подставляет границы по умолчанию: конец - now, начало - конец минус 30 дней
func ResolveWindow(now time.Time, start, end *time.Time) (Window, error) {
	w := Window{End: now.UTC()}
	if end != nil {
		w.End = end.UTC()
	}
	w.Start = w.End.AddDate(0, 0, -DefaultWindowDays)
	if start != nil {
		w.Start = start.UTC()
	}
	if !w.Start.Before(w.End) {
		return Window{}, invalid("start_date", "must be before end_date")
	}
	return w, nil
}

// LookBack возвращает окно длиной days дней, заканчивающееся в now
func LookBack(now time.Time, days int) Window {
	end := now.UTC()
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// Filter переносит окно в фильтр выборки
func (w Window) Filter(base models.IncidentFilter) models.IncidentFilter {
	base.Start = w.Start
	base.End = w.End
	return base
}
