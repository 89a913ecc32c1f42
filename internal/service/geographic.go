package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// GetGeographicAnalytics группирует инциденты по округам и районам и ранжирует их
func (s *analyticsService) GetGeographicAnalytics(ctx context.Context, req WindowRequest) (result *models.GeographicAnalytics, err error) {
	defer func(started time.Time) { s.observe("geographic", started, err) }(time.Now())
	log := s.log("GetGeographicAnalytics")

	window, err := analytics.ResolveWindow(s.now(), req.StartDate, req.EndDate)
	if err != nil {
		log.WithError(err).Warn("Invalid geographic analytics request")
		return nil, err
	}
	log = log.WithFields(logrus.Fields{"start": window.Start, "end": window.End})
	log.Info("Computing geographic analytics")

	incidents, err := s.repo.QueryIncidents(ctx, window.Filter(models.IncidentFilter{}))
	if err != nil {
		return nil, s.fail(log, "geographic analytics", storeError("query incidents", err))
	}
	if err := ctx.Err(); err != nil {
		return nil, s.fail(log, "geographic analytics", err)
	}

	locations := map[uuid.UUID]*models.Location{}
	if ids := distinctLocationIDs(incidents); len(ids) > 0 {
		locations, err = s.locationsByID(ctx, models.LocationFilter{IDs: ids})
		if err != nil {
			return nil, s.fail(log, "geographic analytics", err)
		}
	}

	regions := analytics.BuildRegions(incidents, locations)
	safest, dangerous := analytics.RankRegions(regions)

	log.WithField("regions", len(regions)).Info("Geographic analytics computed successfully")
	return &models.GeographicAnalytics{
		StartDate:     window.Start,
		EndDate:       window.End,
		Regions:       regions,
		Safest:        safest,
		MostDangerous: dangerous,
	}, nil
}

func distinctLocationIDs(incidents []*models.Incident) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(incidents))
	ids := make([]uuid.UUID, 0)
	for _, inc := range incidents {
		if _, ok := seen[inc.LocationID]; ok {
			continue
		}
		seen[inc.LocationID] = struct{}{}
		ids = append(ids, inc.LocationID)
	}
	return ids
}
