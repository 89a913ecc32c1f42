package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/shenikar/crime_analytics/internal/webhook"
	"github.com/sirupsen/logrus"
)

// GetHotspotAnalysis находит локации, где за последние DaysBack дней набралось
// не меньше MinIncidents инцидентов
func (s *analyticsService) GetHotspotAnalysis(ctx context.Context, req HotspotRequest) (result *models.HotspotAnalysis, err error) {
	defer func(started time.Time) { s.observe("hotspots", started, err) }(time.Now())
	log := s.log("GetHotspotAnalysis").WithFields(logrus.Fields{
		"min_incidents": req.MinIncidents,
		"days_back":     req.DaysBack,
	})

	params := []struct {
		field string
		value float64
	}{
		{"radius_km", req.RadiusKM},
		{"min_incidents", float64(req.MinIncidents)},
		{"days_back", float64(req.DaysBack)},
	}
	for _, p := range params {
		if err := analytics.ValidatePositive(p.field, p.value); err != nil {
			log.WithError(err).Warn("Invalid hotspot analysis request")
			return nil, err
		}
	}
	log.Info("Computing hotspot analysis")

	hotspots, err := s.findHotspots(ctx, req.DaysBack, req.MinIncidents)
	if err != nil {
		return nil, s.fail(log, "hotspot analysis", err)
	}
	s.publishAlerts(ctx, log, hotspots, req.DaysBack)

	log.WithField("hotspots", len(hotspots)).Info("Hotspot analysis computed successfully")
	return &models.HotspotAnalysis{
		RadiusKM:     req.RadiusKM,
		MinIncidents: req.MinIncidents,
		DaysBack:     req.DaysBack,
		Hotspots:     hotspots,
	}, nil
}

func (s *analyticsService) findHotspots(ctx context.Context, daysBack, minIncidents int) ([]models.Hotspot, error) {
	filter := analytics.LookBack(s.now(), daysBack).Filter(models.IncidentFilter{})
	groups, err := s.groupRaw(ctx, filter, models.GroupByLocation)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0)
	for _, g := range groups {
		if g.Count < minIncidents {
			continue
		}
		if id, err := uuid.Parse(g.Key); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []models.Hotspot{}, nil
	}

	locations, err := s.locationsByID(ctx, models.LocationFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	return analytics.BuildHotspots(groups, locations, minIncidents), nil
}

// publishAlerts отправляет оповещения о критических горячих точках.
// Ошибки публикации только логируются и не влияют на результат анализа.
func (s *analyticsService) publishAlerts(ctx context.Context, log *logrus.Entry, hotspots []models.Hotspot, daysBack int) {
	if s.publisher == nil {
		return
	}
	for _, h := range hotspots {
		if h.RiskTier != models.RiskCritical {
			continue
		}
		if ctx.Err() != nil {
			return
		}
		published, err := s.publisher.Publish(ctx, webhook.NewHotspotAlert(h, daysBack, s.now()))
		switch {
		case err != nil:
			log.WithError(err).WithField("location_id", h.LocationID).Warn("Failed to publish hotspot alert")
			s.observeAlert("failed")
		case published:
			log.WithField("location_id", h.LocationID).Info("Hotspot alert published")
			s.observeAlert("published")
		default:
			s.observeAlert("suppressed")
		}
	}
}

func (s *analyticsService) observeAlert(result string) {
	if s.metrics != nil {
		s.metrics.ObserveAlert(result)
	}
}

// GetNearbyLocations возвращает активные локации в радиусе RadiusKM от точки
func (s *analyticsService) GetNearbyLocations(ctx context.Context, req NearbyRequest) (result []models.NearbyLocation, err error) {
	defer func(started time.Time) { s.observe("nearby_locations", started, err) }(time.Now())
	log := s.log("GetNearbyLocations").WithFields(logrus.Fields{
		"latitude":  req.Latitude,
		"longitude": req.Longitude,
		"radius_km": req.RadiusKM,
	})

	if err := analytics.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		log.WithError(err).Warn("Invalid nearby locations request")
		return nil, err
	}
	if err := analytics.ValidatePositive("radius_km", req.RadiusKM); err != nil {
		log.WithError(err).Warn("Invalid nearby locations request")
		return nil, err
	}
	log.Info("Searching nearby locations")

	locations, err := s.repo.QueryLocations(ctx, models.LocationFilter{ActiveOnly: true})
	if err != nil {
		return nil, s.fail(log, "nearby locations", storeError("query locations", err))
	}
	if err := ctx.Err(); err != nil {
		return nil, s.fail(log, "nearby locations", err)
	}

	nearby := analytics.Nearby(locations, req.Latitude, req.Longitude, req.RadiusKM)
	log.WithField("count", len(nearby)).Info("Nearby locations found")
	return nearby, nil
}
