package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
)

// Общие примитивы подсчета. Каждое чтение из хранилища - точка приостановки,
// после нее проверяется отмена запроса.

func (s *analyticsService) count(ctx context.Context, filter models.IncidentFilter) (int, error) {
	total, err := s.repo.CountIncidents(ctx, filter)
	if err != nil {
		return 0, storeError("count incidents", err)
	}
	return total, ctx.Err()
}

// groupCount считает общее количество один раз и использует его для процентов всех групп
func (s *analyticsService) groupCount(ctx context.Context, filter models.IncidentFilter, groupBy models.GroupBy) ([]models.GroupedStat, int, error) {
	total, err := s.count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	groups, err := s.groupRaw(ctx, filter, groupBy)
	if err != nil {
		return nil, 0, err
	}
	return analytics.GroupStats(groups, total), total, nil
}

func (s *analyticsService) groupRaw(ctx context.Context, filter models.IncidentFilter, groupBy models.GroupBy) ([]models.GroupCount, error) {
	groups, err := s.repo.GroupIncidents(ctx, filter, groupBy)
	if err != nil {
		return nil, storeError("group incidents by "+string(groupBy), err)
	}
	return groups, ctx.Err()
}

func (s *analyticsService) averageDurationHours(ctx context.Context, filter models.IncidentFilter, statuses []models.Status) (float64, error) {
	hours, err := s.repo.AverageDurationHours(ctx, filter, statuses)
	if err != nil {
		return 0, storeError("average duration", err)
	}
	return hours, ctx.Err()
}

func (s *analyticsService) countByPeriod(ctx context.Context, filter models.IncidentFilter, period models.Period) ([]models.PeriodCount, error) {
	buckets, err := s.repo.CountByPeriod(ctx, filter, period)
	if err != nil {
		return nil, storeError("count incidents by "+string(period)+" period", err)
	}
	return buckets, ctx.Err()
}

// locationsByID загружает локации по набору ключей группировки
func (s *analyticsService) locationsByID(ctx context.Context, filter models.LocationFilter) (map[uuid.UUID]*models.Location, error) {
	locations, err := s.repo.QueryLocations(ctx, filter)
	if err != nil {
		return nil, storeError("query locations", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Location, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}
	return byID, nil
}
