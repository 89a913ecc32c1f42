package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentWhere_EmptyFilterExcludesDeleted(t *testing.T) {
	b := incidentWhere(models.IncidentFilter{})

	assert.Equal(t, "deleted_at IS NULL", b.sql())
	assert.Empty(t, b.args)
}

func TestIncidentWhere_AllConditions(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	locationID := uuid.New()
	category := models.CategoryTheft

	b := incidentWhere(models.IncidentFilter{
		Start:      start,
		End:        end,
		LocationID: &locationID,
		Category:   &category,
		StatusIn:   []models.Status{models.StatusResolved, models.StatusClosed},
	})

	assert.Equal(t,
		"deleted_at IS NULL AND created_at >= $1 AND created_at < $2 AND location_id = $3 AND category = $4 AND status = ANY($5)",
		b.sql())
	assert.Equal(t, []any{start, end, locationID, "theft", []string{"resolved", "closed"}}, b.args)
}

func TestGroupExpression_TimeZoneParameter(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	b := incidentWhere(models.IncidentFilter{Start: start})

	expr, err := groupExpression(b, models.GroupByHourOfDay, "Africa/Nairobi")
	require.NoError(t, err)

	assert.Equal(t, "EXTRACT(HOUR FROM created_at AT TIME ZONE $2)::int::text", expr)
	assert.Equal(t, []any{start, "Africa/Nairobi"}, b.args)
}

func TestGroupExpression_AssignedOfficerSkipsUnassigned(t *testing.T) {
	b := incidentWhere(models.IncidentFilter{})

	expr, err := groupExpression(b, models.GroupByAssignedOfficer, "UTC")
	require.NoError(t, err)

	assert.Equal(t, "assigned_officer_id::text", expr)
	assert.Equal(t, "deleted_at IS NULL AND assigned_officer_id IS NOT NULL", b.sql())
}

func TestGroupExpression_Unsupported(t *testing.T) {
	_, err := groupExpression(incidentWhere(models.IncidentFilter{}), models.GroupBy("reporter"), "UTC")
	require.Error(t, err)
}

func TestPeriodExpression(t *testing.T) {
	b := incidentWhere(models.IncidentFilter{})

	expr, err := periodExpression(b, models.PeriodWeekly, "UTC")
	require.NoError(t, err)

	assert.Equal(t, "date_trunc($2, created_at AT TIME ZONE $1) AT TIME ZONE $1", expr)
	assert.Equal(t, []any{"UTC", "week"}, b.args)

	_, err = periodExpression(b, models.Period("hourly"), "UTC")
	require.Error(t, err)
}
