// Package memory - журнал инцидентов в памяти процесса с той же семантикой,
// что и PostgreSQL-репозиторий. Используется в тестах и для локальной отладки.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
)

type Store struct {
	mu        sync.RWMutex
	incidents []*models.Incident
	locations []*models.Location
	users     []*models.User
	loc       *time.Location
}

func NewStore(loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{loc: loc}
}

func (s *Store) AddIncidents(incidents ...*models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = append(s.incidents, incidents...)
}

func (s *Store) AddLocations(locations ...*models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append(s.locations, locations...)
}

func (s *Store) AddUsers(users ...*models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, users...)
}

func matches(i *models.Incident, f models.IncidentFilter) bool {
	if i.IsDeleted() {
		return false
	}
	if !f.Start.IsZero() && i.CreatedAt.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && !i.CreatedAt.Before(f.End) {
		return false
	}
	if f.LocationID != nil && i.LocationID != *f.LocationID {
		return false
	}
	if f.Category != nil && i.Category != *f.Category {
		return false
	}
	if len(f.StatusIn) > 0 {
		for _, st := range f.StatusIn {
			if i.Status == st {
				return true
			}
		}
		return false
	}
	return true
}

// selectIncidents возвращает подходящие инциденты в порядке created_at, id
func (s *Store) selectIncidents(f models.IncidentFilter) []*models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Incident
	for _, i := range s.incidents {
		if matches(i, f) {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.Before(out[b].CreatedAt)
		}
		return out[a].ID.String() < out[b].ID.String()
	})
	return out
}

func (s *Store) CountIncidents(ctx context.Context, filter models.IncidentFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(s.selectIncidents(filter)), nil
}

func (s *Store) groupKey(i *models.Incident, groupBy models.GroupBy) (string, bool, error) {
	switch groupBy {
	case models.GroupByCategory:
		return string(i.Category), true, nil
	case models.GroupBySeverity:
		return string(i.Severity), true, nil
	case models.GroupByStatus:
		return string(i.Status), true, nil
	case models.GroupByLocation:
		return i.LocationID.String(), true, nil
	case models.GroupByAssignedOfficer:
		if i.AssignedOfficerID == nil {
			return "", false, nil
		}
		return i.AssignedOfficerID.String(), true, nil
	case models.GroupByHourOfDay:
		return strconv.Itoa(i.CreatedAt.In(s.loc).Hour()), true, nil
	case models.GroupByDayOfWeek:
		return strconv.Itoa(analytics.ISOWeekday(i.CreatedAt.In(s.loc).Weekday())), true, nil
	}
	return "", false, fmt.Errorf("unsupported group by %q", groupBy)
}

func (s *Store) GroupIncidents(ctx context.Context, filter models.IncidentFilter, groupBy models.GroupBy) ([]models.GroupCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, i := range s.selectIncidents(filter) {
		key, ok, err := s.groupKey(i, groupBy)
		if err != nil {
			return nil, fmt.Errorf("failed to group incidents: %w", err)
		}
		if ok {
			counts[key]++
		}
	}
	groups := make([]models.GroupCount, 0, len(counts))
	for key, n := range counts {
		groups = append(groups, models.GroupCount{Key: key, Count: n})
	}
	sort.Slice(groups, func(a, b int) bool {
		if groups[a].Count != groups[b].Count {
			return groups[a].Count > groups[b].Count
		}
		return groups[a].Key < groups[b].Key
	})
	return groups, nil
}

func (s *Store) CountByPeriod(ctx context.Context, filter models.IncidentFilter, period models.Period) ([]models.PeriodCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := analytics.ParsePeriod(string(period)); err != nil {
		return nil, fmt.Errorf("failed to count incidents by period: %w", err)
	}
	counts := make(map[time.Time]int)
	for _, i := range s.selectIncidents(filter) {
		counts[analytics.TruncatePeriod(i.CreatedAt, period, s.loc)]++
	}
	buckets := make([]models.PeriodCount, 0, len(counts))
	for start, n := range counts {
		buckets = append(buckets, models.PeriodCount{Start: start, Count: n})
	}
	sort.Slice(buckets, func(a, b int) bool {
		return buckets[a].Start.Before(buckets[b].Start)
	})
	return buckets, nil
}

func (s *Store) AverageDurationHours(ctx context.Context, filter models.IncidentFilter, statuses []models.Status) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	selected := s.selectIncidents(filter.WithStatuses(statuses...))
	if len(selected) == 0 {
		return 0, nil
	}
	var sum float64
	for _, i := range selected {
		sum += i.UpdatedAt.Sub(i.CreatedAt).Hours()
	}
	return sum / float64(len(selected)), nil
}

func (s *Store) EarliestIncident(ctx context.Context, filter models.IncidentFilter) (*time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selected := s.selectIncidents(filter)
	if len(selected) == 0 {
		return nil, nil
	}
	earliest := selected[0].CreatedAt
	return &earliest, nil
}

func (s *Store) QueryIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.selectIncidents(filter), nil
}

func (s *Store) QueryLocations(ctx context.Context, filter models.LocationFilter) ([]*models.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids map[string]struct{}
	if filter.IDs != nil {
		ids = make(map[string]struct{}, len(filter.IDs))
		for _, id := range filter.IDs {
			ids[id.String()] = struct{}{}
		}
	}

	var out []*models.Location
	for _, loc := range s.locations {
		if filter.ActiveOnly && !loc.IsActive {
			continue
		}
		if ids != nil {
			if _, ok := ids[loc.ID.String()]; !ok {
				continue
			}
		}
		out = append(out, loc)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].ID.String() < out[b].ID.String()
	})
	return out, nil
}

func (s *Store) QueryUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.User
	for _, u := range s.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.ActiveOnly && !u.IsActive {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}
