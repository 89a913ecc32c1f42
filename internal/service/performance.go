package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// GetPerformanceAnalytics считает показатели раскрываемости в целом и по сотрудникам
func (s *analyticsService) GetPerformanceAnalytics(ctx context.Context, req WindowRequest) (result *models.PerformanceAnalytics, err error) {
	defer func(started time.Time) { s.observe("performance", started, err) }(time.Now())
	log := s.log("GetPerformanceAnalytics")

	window, err := analytics.ResolveWindow(s.now(), req.StartDate, req.EndDate)
	if err != nil {
		log.WithError(err).Warn("Invalid performance analytics request")
		return nil, err
	}
	log = log.WithFields(logrus.Fields{"start": window.Start, "end": window.End})
	log.Info("Computing performance analytics")

	filter := window.Filter(models.IncidentFilter{})
	resolvedFilter := filter.WithStatuses(models.ResolvedStatuses...)

	total, err := s.count(ctx, filter)
	if err != nil {
		return nil, s.fail(log, "performance analytics", err)
	}
	resolved, err := s.count(ctx, resolvedFilter)
	if err != nil {
		return nil, s.fail(log, "performance analytics", err)
	}
	avgHours, err := s.averageDurationHours(ctx, filter, models.ResolvedStatuses)
	if err != nil {
		return nil, s.fail(log, "performance analytics", err)
	}
	assigned, err := s.groupRaw(ctx, filter, models.GroupByAssignedOfficer)
	if err != nil {
		return nil, s.fail(log, "performance analytics", err)
	}
	closedByOfficer, err := s.groupRaw(ctx, resolvedFilter, models.GroupByAssignedOfficer)
	if err != nil {
		return nil, s.fail(log, "performance analytics", err)
	}

	role := models.RolePoliceOfficer
	officers, err := s.repo.QueryUsers(ctx, models.UserFilter{Role: &role, ActiveOnly: true})
	if err != nil {
		return nil, s.fail(log, "performance analytics", storeError("query users", err))
	}
	if err := ctx.Err(); err != nil {
		return nil, s.fail(log, "performance analytics", err)
	}

	log.WithField("total_reports", total).Info("Performance analytics computed successfully")
	return &models.PerformanceAnalytics{
		StartDate:              window.Start,
		EndDate:                window.End,
		TotalReports:           total,
		ResolvedReports:        resolved,
		ResolutionRate:         analytics.Percentage(resolved, total),
		AverageResolutionHours: avgHours,
		ActiveOfficers:         len(officers),
		Officers:               officerStats(officers, assigned, closedByOfficer),
	}, nil
}

// officerStats объединяет активных сотрудников и сотрудников, на которых есть назначения
func officerStats(officers []*models.User, assigned, resolved []models.GroupCount) []models.OfficerStats {
	byID := make(map[uuid.UUID]*models.OfficerStats)
	get := func(id uuid.UUID) *models.OfficerStats {
		st, ok := byID[id]
		if !ok {
			st = &models.OfficerStats{OfficerID: id}
			byID[id] = st
		}
		return st
	}
	for _, o := range officers {
		get(o.ID)
	}
	for _, g := range assigned {
		if id, err := uuid.Parse(g.Key); err == nil {
			get(id).AssignedReports = g.Count
		}
	}
	for _, g := range resolved {
		if id, err := uuid.Parse(g.Key); err == nil {
			get(id).ResolvedReports = g.Count
		}
	}

	stats := make([]models.OfficerStats, 0, len(byID))
	for _, st := range byID {
		st.ResolutionRate = analytics.Percentage(st.ResolvedReports, st.AssignedReports)
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].AssignedReports != stats[j].AssignedReports {
			return stats[i].AssignedReports > stats[j].AssignedReports
		}
		return stats[i].OfficerID.String() < stats[j].OfficerID.String()
	})
	return stats
}
