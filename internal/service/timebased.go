package service

import (
	"context"
	"strconv"
	"time"

	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// GetTimeBasedAnalytics строит распределения инцидентов по часу суток и дню недели
func (s *analyticsService) GetTimeBasedAnalytics(ctx context.Context, req TimeBasedRequest) (result *models.TimeBasedAnalytics, err error) {
	defer func(started time.Time) { s.observe("time_based", started, err) }(time.Now())
	log := s.log("GetTimeBasedAnalytics")

	if err := analytics.ValidateCategory(req.Category); err != nil {
		log.WithError(err).Warn("Invalid time based analytics request")
		return nil, err
	}
	window, err := analytics.ResolveWindow(s.now(), req.StartDate, req.EndDate)
	if err != nil {
		log.WithError(err).Warn("Invalid time based analytics request")
		return nil, err
	}
	log = log.WithFields(logrus.Fields{"start": window.Start, "end": window.End})
	log.Info("Computing time based analytics")

	filter := window.Filter(baseFilter(req.LocationID, req.Category))
	total, err := s.count(ctx, filter)
	if err != nil {
		return nil, s.fail(log, "time based analytics", err)
	}
	hours, err := s.groupRaw(ctx, filter, models.GroupByHourOfDay)
	if err != nil {
		return nil, s.fail(log, "time based analytics", err)
	}
	weekdays, err := s.groupRaw(ctx, filter, models.GroupByDayOfWeek)
	if err != nil {
		return nil, s.fail(log, "time based analytics", err)
	}

	result = &models.TimeBasedAnalytics{
		StartDate:           window.Start,
		EndDate:             window.End,
		TotalIncidents:      total,
		HourlyDistribution:  analytics.Distribution(hours, analytics.HourKeys(), total),
		WeekdayDistribution: analytics.NameWeekdays(analytics.Distribution(weekdays, analytics.WeekdayKeys(), total)),
	}
	if i := analytics.Peak(result.HourlyDistribution); i >= 0 {
		hour, _ := strconv.Atoi(result.HourlyDistribution[i].Key)
		result.PeakHour = &hour
	}
	if i := analytics.Peak(result.WeekdayDistribution); i >= 0 {
		result.PeakDay = result.WeekdayDistribution[i].Key
	}

	log.WithField("total", total).Info("Time based analytics computed successfully")
	return result, nil
}
