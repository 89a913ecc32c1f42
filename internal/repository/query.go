package repository

import (
	"fmt"
	"strings"

	"github.com/shenikar/crime_analytics/internal/models"
)

// whereBuilder собирает условия WHERE с позиционными параметрами $1, $2, ...
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

// param добавляет аргумент без условия и возвращает его позицию
func (b *whereBuilder) param(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) sql() string {
	return strings.Join(b.conds, " AND ")
}

// incidentWhere строит условия по фильтру. Удаленные инциденты исключаются всегда.
func incidentWhere(f models.IncidentFilter) *whereBuilder {
	b := &whereBuilder{conds: []string{"deleted_at IS NULL"}}
	if !f.Start.IsZero() {
		b.add("created_at >= $%d", f.Start)
	}
	if !f.End.IsZero() {
		b.add("created_at < $%d", f.End)
	}
	if f.LocationID != nil {
		b.add("location_id = $%d", *f.LocationID)
	}
	if f.Category != nil {
		b.add("category = $%d", string(*f.Category))
	}
	if len(f.StatusIn) > 0 {
		b.add("status = ANY($%d)", statusStrings(f.StatusIn))
	}
	return b
}

func statusStrings(statuses []models.Status) []string {
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = string(st)
	}
	return out
}

// groupExpression возвращает SQL-выражение ключа группировки из закрытого списка.
// Для часа и дня недели время переводится в часовой пояс журнала.
func groupExpression(b *whereBuilder, groupBy models.GroupBy, tz string) (string, error) {
	switch groupBy {
	case models.GroupByCategory:
		return "category::text", nil
	case models.GroupBySeverity:
		return "severity::text", nil
	case models.GroupByStatus:
		return "status::text", nil
	case models.GroupByLocation:
		return "location_id::text", nil
	case models.GroupByAssignedOfficer:
		b.conds = append(b.conds, "assigned_officer_id IS NOT NULL")
		return "assigned_officer_id::text", nil
	case models.GroupByHourOfDay:
		return fmt.Sprintf("EXTRACT(HOUR FROM created_at AT TIME ZONE %s)::int::text", b.param(tz)), nil
	case models.GroupByDayOfWeek:
		return fmt.Sprintf("EXTRACT(ISODOW FROM created_at AT TIME ZONE %s)::int::text", b.param(tz)), nil
	}
	return "", fmt.Errorf("unsupported group by %q", groupBy)
}

var truncFields = map[models.Period]string{
	models.PeriodDaily:   "day",
	models.PeriodWeekly:  "week",
	models.PeriodMonthly: "month",
	models.PeriodYearly:  "year",
}

// periodExpression возвращает начало интервала в часовом поясе журнала как timestamptz
func periodExpression(b *whereBuilder, period models.Period, tz string) (string, error) {
	field, ok := truncFields[period]
	if !ok {
		return "", fmt.Errorf("unsupported period %q", period)
	}
	zone := b.param(tz)
	return fmt.Sprintf("date_trunc(%s, created_at AT TIME ZONE %s) AT TIME ZONE %s", b.param(field), zone, zone), nil
}
