package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentFilter - набор условий выборки инцидентов, условия объединяются через AND.
// Нулевые значения полей не ограничивают выборку.
type IncidentFilter struct {
	Start      time.Time
	End        time.Time
	LocationID *uuid.UUID
	Category   *Category
	StatusIn   []Status
}

// WithStatuses возвращает копию фильтра с заданным набором статусов
func (f IncidentFilter) WithStatuses(statuses ...Status) IncidentFilter {
	f.StatusIn = statuses
	return f
}

// LocationFilter - условия выборки локаций
type LocationFilter struct {
	ActiveOnly bool
	IDs        []uuid.UUID
}

// UserFilter - условия выборки пользователей
type UserFilter struct {
	Role       *Role
	ActiveOnly bool
}

// GroupBy - измерение, по которому группируются инциденты
type GroupBy string

const (
	GroupByCategory        GroupBy = "category"
	GroupBySeverity        GroupBy = "severity"
	GroupByStatus          GroupBy = "status"
	GroupByLocation        GroupBy = "location"
	GroupByAssignedOfficer GroupBy = "assigned_officer"
	GroupByHourOfDay       GroupBy = "hour_of_day"
	GroupByDayOfWeek       GroupBy = "day_of_week"
)

func (g GroupBy) Valid() bool {
	switch g {
	case GroupByCategory, GroupBySeverity, GroupByStatus, GroupByLocation,
		GroupByAssignedOfficer, GroupByHourOfDay, GroupByDayOfWeek:
		return true
	}
	return false
}

// GroupCount - необработанный результат группировки из хранилища
type GroupCount struct {
	Key   string
	Count int
}

// Period - календарный интервал для анализа трендов
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// PeriodCount - количество инцидентов в одном календарном интервале
type PeriodCount struct {
	Start time.Time
	Count int
}
