package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/shenikar/crime_analytics/internal/service"
)

// querier - часть pgxpool.Pool, которой пользуется репозиторий
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AnalyticsRepository читает журнал инцидентов из PostgreSQL. Запись не выполняется.
type AnalyticsRepository struct {
	db querier
	tz string
}

func NewAnalyticsRepository(db *pgxpool.Pool, loc *time.Location) service.AnalyticsRepository {
	tz := "UTC"
	if loc != nil {
		tz = loc.String()
	}
	return &AnalyticsRepository{
		db: db,
		tz: tz,
	}
}

// CountIncidents возвращает количество инцидентов по фильтру
func (r *AnalyticsRepository) CountIncidents(ctx context.Context, filter models.IncidentFilter) (int, error) {
	where := incidentWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM crime_reports WHERE %s`, where.sql())

	var total int
	if err := r.db.QueryRow(ctx, query, where.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return total, nil
}

// GroupIncidents возвращает пары (ключ, количество) по измерению groupBy
func (r *AnalyticsRepository) GroupIncidents(ctx context.Context, filter models.IncidentFilter, groupBy models.GroupBy) ([]models.GroupCount, error) {
	where := incidentWhere(filter)
	expr, err := groupExpression(where, groupBy, r.tz)
	if err != nil {
		return nil, fmt.Errorf("failed to group incidents: %w", err)
	}
	query := fmt.Sprintf(`
		SELECT %s AS key, COUNT(*) AS total
		FROM crime_reports
		WHERE %s
		GROUP BY 1
		ORDER BY 2 DESC, 1
	`, expr, where.sql())

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to group incidents by %s: %w", groupBy, err)
	}
	defer rows.Close()

	var groups []models.GroupCount
	for rows.Next() {
		var g models.GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, fmt.Errorf("failed to scan incident group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incident groups: %w", err)
	}
	return groups, nil
}

// CountByPeriod возвращает количество инцидентов по календарным интервалам
func (r *AnalyticsRepository) CountByPeriod(ctx context.Context, filter models.IncidentFilter, period models.Period) ([]models.PeriodCount, error) {
	where := incidentWhere(filter)
	expr, err := periodExpression(where, period, r.tz)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by period: %w", err)
	}
	query := fmt.Sprintf(`
		SELECT %s AS bucket, COUNT(*) AS total
		FROM crime_reports
		WHERE %s
		GROUP BY 1
		ORDER BY 1
	`, expr, where.sql())

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by %s period: %w", period, err)
	}
	defer rows.Close()

	var buckets []models.PeriodCount
	for rows.Next() {
		var b models.PeriodCount
		if err := rows.Scan(&b.Start, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan period bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate period buckets: %w", err)
	}
	return buckets, nil
}

// AverageDurationHours возвращает среднее время от создания до последнего изменения в часах.
// Статусы фильтра заменяются переданными.
func (r *AnalyticsRepository) AverageDurationHours(ctx context.Context, filter models.IncidentFilter, statuses []models.Status) (float64, error) {
	where := incidentWhere(filter.WithStatuses(statuses...))
	query := fmt.Sprintf(`
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at))) / 3600, 0)::float8
		FROM crime_reports
		WHERE %s
	`, where.sql())

	var hours float64
	if err := r.db.QueryRow(ctx, query, where.args...).Scan(&hours); err != nil {
		return 0, fmt.Errorf("failed to compute average duration: %w", err)
	}
	return hours, nil
}

// EarliestIncident возвращает время самого раннего инцидента или nil для пустой выборки
func (r *AnalyticsRepository) EarliestIncident(ctx context.Context, filter models.IncidentFilter) (*time.Time, error) {
	where := incidentWhere(filter)
	query := fmt.Sprintf(`SELECT MIN(created_at) FROM crime_reports WHERE %s`, where.sql())

	var earliest *time.Time
	if err := r.db.QueryRow(ctx, query, where.args...).Scan(&earliest); err != nil {
		return nil, fmt.Errorf("failed to find earliest incident: %w", err)
	}
	return earliest, nil
}

// QueryIncidents возвращает инциденты по фильтру в порядке создания
func (r *AnalyticsRepository) QueryIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	where := incidentWhere(filter)
	query := fmt.Sprintf(`
		SELECT
			id,
			report_number,
			category,
			severity,
			status,
			priority_score,
			is_emergency,
			location_id,
			assigned_officer_id,
			created_at,
			updated_at,
			deleted_at
		FROM crime_reports
		WHERE %s
		ORDER BY created_at, id
	`, where.sql())

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*models.Incident
	for rows.Next() {
		incident := &models.Incident{}
		if err := rows.Scan(
			&incident.ID,
			&incident.ReportNumber,
			&incident.Category,
			&incident.Severity,
			&incident.Status,
			&incident.PriorityScore,
			&incident.IsEmergency,
			&incident.LocationID,
			&incident.AssignedOfficerID,
			&incident.CreatedAt,
			&incident.UpdatedAt,
			&incident.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan incident: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incidents: %w", err)
	}
	return incidents, nil
}

// QueryLocations возвращает локации. Поиск по ID находит и неактивные локации,
// чтобы у исторических инцидентов оставалось название.
func (r *AnalyticsRepository) QueryLocations(ctx context.Context, filter models.LocationFilter) ([]*models.Location, error) {
	where := &whereBuilder{conds: []string{"TRUE"}}
	if filter.ActiveOnly {
		where.conds = append(where.conds, "is_active", "deleted_at IS NULL")
	}
	if filter.IDs != nil {
		where.add("id = ANY($%d)", filter.IDs)
	}
	query := fmt.Sprintf(`
		SELECT
			id,
			latitude,
			longitude,
			COALESCE(county, ''),
			COALESCE(sub_county, ''),
			COALESCE(city, ''),
			address,
			location_type,
			is_active
		FROM locations
		WHERE %s
		ORDER BY id
	`, where.sql())

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		loc := &models.Location{}
		if err := rows.Scan(
			&loc.ID,
			&loc.Latitude,
			&loc.Longitude,
			&loc.County,
			&loc.SubCounty,
			&loc.City,
			&loc.Address,
			&loc.LocationType,
			&loc.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}
	return locations, nil
}

// QueryUsers возвращает пользователей по роли и активности
func (r *AnalyticsRepository) QueryUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	where := &whereBuilder{conds: []string{"deleted_at IS NULL"}}
	if filter.Role != nil {
		where.add("role = $%d", string(*filter.Role))
	}
	if filter.ActiveOnly {
		where.conds = append(where.conds, "is_active")
	}
	query := fmt.Sprintf(`
		SELECT id, role, is_active, last_login
		FROM users
		WHERE %s
		ORDER BY id
	`, where.sql())

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Role, &user.IsActive, &user.LastLogin); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
