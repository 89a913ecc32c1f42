package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

func (s *analyticsService) fail(log *logrus.Entry, what string, err error) error {
	log.WithError(err).Error("Failed to compute " + what)
	return fmt.Errorf("service: could not compute %s: %w", what, err)
}

// GetCrimeStatistics считает распределения инцидентов по категории, тяжести, статусу и локации
func (s *analyticsService) GetCrimeStatistics(ctx context.Context, req CrimeStatsRequest) (result *models.CrimeStats, err error) {
	defer func(started time.Time) { s.observe("crime_stats", started, err) }(time.Now())
	log := s.log("GetCrimeStatistics")

	if err := analytics.ValidateCategory(req.Category); err != nil {
		log.WithError(err).Warn("Invalid crime statistics request")
		return nil, err
	}
	window, err := analytics.ResolveWindow(s.now(), req.StartDate, req.EndDate)
	if err != nil {
		log.WithError(err).Warn("Invalid crime statistics request")
		return nil, err
	}
	filter := window.Filter(baseFilter(req.LocationID, req.Category))
	log = log.WithFields(logrus.Fields{"start": window.Start, "end": window.End})
	log.Info("Computing crime statistics")

	byType, total, err := s.groupCount(ctx, filter, models.GroupByCategory)
	if err != nil {
		return nil, s.fail(log, "crime statistics", err)
	}
	bySeverity, err := s.groupRaw(ctx, filter, models.GroupBySeverity)
	if err != nil {
		return nil, s.fail(log, "crime statistics", err)
	}
	byStatus, err := s.groupRaw(ctx, filter, models.GroupByStatus)
	if err != nil {
		return nil, s.fail(log, "crime statistics", err)
	}
	byLocation, err := s.locationStats(ctx, filter)
	if err != nil {
		return nil, s.fail(log, "crime statistics", err)
	}
	avgHours, err := s.averageDurationHours(ctx, filter, models.ResolvedStatuses)
	if err != nil {
		return nil, s.fail(log, "crime statistics", err)
	}

	log.WithField("total", total).Info("Crime statistics computed successfully")
	return &models.CrimeStats{
		TotalCrimes:            total,
		StartDate:              window.Start,
		EndDate:                window.End,
		StatsByType:            byType,
		StatsBySeverity:        analytics.GroupStats(bySeverity, total),
		StatsByStatus:          analytics.GroupStats(byStatus, total),
		StatsByLocation:        byLocation,
		AverageResolutionHours: avgHours,
	}, nil
}

func (s *analyticsService) locationStats(ctx context.Context, filter models.IncidentFilter) ([]models.LocationStat, error) {
	groups, err := s.groupRaw(ctx, filter, models.GroupByLocation)
	if err != nil {
		return nil, err
	}
	stats := make([]models.LocationStat, 0, len(groups))
	if len(groups) == 0 {
		return stats, nil
	}

	ids := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		if id, err := uuid.Parse(g.Key); err == nil {
			ids = append(ids, id)
		}
	}
	locations, err := s.locationsByID(ctx, models.LocationFilter{IDs: ids})
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		id, err := uuid.Parse(g.Key)
		if err != nil {
			continue
		}
		name := id.String()
		if loc, ok := locations[id]; ok {
			name = loc.DisplayName()
		}
		stats = append(stats, models.LocationStat{LocationID: id, LocationName: name, Count: g.Count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].LocationID.String() < stats[j].LocationID.String()
	})
	return stats, nil
}
