package service

import (
	"context"
	"time"

	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// GetTrendAnalysis строит временной ряд по календарным интервалам и общее направление тренда
func (s *analyticsService) GetTrendAnalysis(ctx context.Context, req TrendRequest) (result *models.TrendAnalysis, err error) {
	defer func(started time.Time) { s.observe("trends", started, err) }(time.Now())
	log := s.log("GetTrendAnalysis").WithField("period", req.Period)

	period, err := analytics.ParsePeriod(req.Period)
	if err != nil {
		log.WithError(err).Warn("Invalid trend analysis request")
		return nil, err
	}
	if err := analytics.ValidateCategory(req.Category); err != nil {
		log.WithError(err).Warn("Invalid trend analysis request")
		return nil, err
	}
	days := analytics.LookBackDays(period)
	if req.DaysBack != 0 {
		if err := analytics.ValidatePositive("days_back", float64(req.DaysBack)); err != nil {
			log.WithError(err).Warn("Invalid trend analysis request")
			return nil, err
		}
		days = req.DaysBack
	}

	window := analytics.LookBack(s.now(), days)
	log = log.WithFields(logrus.Fields{"start": window.Start, "end": window.End})
	log.Info("Computing trend analysis")

	trend, err := s.trend(ctx, window.Filter(baseFilter(req.LocationID, req.Category)), period)
	if err != nil {
		return nil, s.fail(log, "trend analysis", err)
	}

	log.WithFields(logrus.Fields{
		"points":    len(trend.Points),
		"direction": trend.Direction,
	}).Info("Trend analysis computed successfully")
	return &models.TrendAnalysis{
		Period:                period,
		Category:              req.Category,
		LocationID:            req.LocationID,
		StartDate:             window.Start,
		EndDate:               window.End,
		Trends:                trend.Points,
		TotalChangePercentage: trend.TotalChangePercentage,
		Direction:             trend.Direction,
	}, nil
}

func (s *analyticsService) trend(ctx context.Context, filter models.IncidentFilter, period models.Period) (analytics.Trend, error) {
	buckets, err := s.countByPeriod(ctx, filter, period)
	if err != nil {
		return analytics.Trend{}, err
	}
	return analytics.BuildTrend(buckets, period, s.loc), nil
}
