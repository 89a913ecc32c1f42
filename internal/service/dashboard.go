package service

import (
	"context"
	"time"

	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
)

// Параметры сводки для панели мониторинга
const (
	dashboardTrendDays    = 7
	dashboardHotspotDays  = 30
	dashboardMinIncidents = 3
	dashboardTopHotspots  = 5
)

// GetDashboardSummary собирает сводку: пользователи, заявления за 30 дней,
// дневной тренд за неделю и главные горячие точки
func (s *analyticsService) GetDashboardSummary(ctx context.Context) (result *models.DashboardSummary, err error) {
	defer func(started time.Time) { s.observe("dashboard_summary", started, err) }(time.Now())
	log := s.log("GetDashboardSummary")
	log.Info("Computing dashboard summary")

	users, err := s.repo.QueryUsers(ctx, models.UserFilter{})
	if err != nil {
		return nil, s.fail(log, "dashboard summary", storeError("query users", err))
	}
	if err := ctx.Err(); err != nil {
		return nil, s.fail(log, "dashboard summary", err)
	}
	activeUsers := 0
	for _, u := range users {
		if u.IsActive {
			activeUsers++
		}
	}

	now := s.now()
	filter := analytics.LookBack(now, analytics.DefaultWindowDays).Filter(models.IncidentFilter{})
	total, err := s.count(ctx, filter)
	if err != nil {
		return nil, s.fail(log, "dashboard summary", err)
	}
	resolved, err := s.count(ctx, filter.WithStatuses(models.ResolvedStatuses...))
	if err != nil {
		return nil, s.fail(log, "dashboard summary", err)
	}
	pending, err := s.count(ctx, filter.WithStatuses(models.PendingStatuses...))
	if err != nil {
		return nil, s.fail(log, "dashboard summary", err)
	}

	recent, err := s.trend(ctx, analytics.LookBack(now, dashboardTrendDays).Filter(models.IncidentFilter{}), models.PeriodDaily)
	if err != nil {
		return nil, s.fail(log, "dashboard summary", err)
	}
	hotspots, err := s.findHotspots(ctx, dashboardHotspotDays, dashboardMinIncidents)
	if err != nil {
		return nil, s.fail(log, "dashboard summary", err)
	}
	if len(hotspots) > dashboardTopHotspots {
		hotspots = hotspots[:dashboardTopHotspots]
	}

	log.WithField("total_reports", total).Info("Dashboard summary computed successfully")
	return &models.DashboardSummary{
		TotalUsers:      len(users),
		ActiveUsers:     activeUsers,
		TotalReports:    total,
		ResolvedReports: resolved,
		PendingReports:  pending,
		RecentTrends:    recent.Points,
		TopHotspots:     hotspots,
	}, nil
}
