package analytics

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/models"
)

// EarthRadiusKM - средний радиус Земли
const EarthRadiusKM = 6371.0

// RiskTierFor назначает уровень риска относительно порога minIncidents:
// >= 4x CRITICAL, >= 2x HIGH, >= 1.5x MEDIUM, иначе LOW
func RiskTierFor(count, minIncidents int) models.RiskTier {
	c, m := float64(count), float64(minIncidents)
	switch {
	case c >= 4*m:
		return models.RiskCritical
	case c >= 2*m:
		return models.RiskHigh
	case c >= 1.5*m:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// BuildHotspots отбрасывает группы ниже порога, присваивает уровень риска и сортирует
// по убыванию количества, затем по id локации. Группы без известной локации пропускаются.
func BuildHotspots(groups []models.GroupCount, locations map[uuid.UUID]*models.Location, minIncidents int) []models.Hotspot {
	hotspots := make([]models.Hotspot, 0)
	for _, g := range groups {
		if g.Count < minIncidents {
			continue
		}
		id, err := uuid.Parse(g.Key)
		if err != nil {
			continue
		}
		loc, ok := locations[id]
		if !ok {
			continue
		}
		hotspots = append(hotspots, models.Hotspot{
			LocationID:    id,
			LocationName:  loc.DisplayName(),
			Latitude:      loc.Latitude,
			Longitude:     loc.Longitude,
			IncidentCount: g.Count,
			RiskTier:      RiskTierFor(g.Count, minIncidents),
			County:        loc.County,
			SubCounty:     loc.SubCounty,
		})
	}
	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].IncidentCount != hotspots[j].IncidentCount {
			return hotspots[i].IncidentCount > hotspots[j].IncidentCount
		}
		return hotspots[i].LocationID.String() < hotspots[j].LocationID.String()
	})
	return hotspots
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKM - расстояние по сферической теореме косинусов.
// Аргумент acos ограничивается [-1, 1], иначе для совпадающих точек получается NaN.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := radians(lat1), radians(lat2)
	cosAngle := math.Sin(phi1)*math.Sin(phi2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Cos(radians(lon2)-radians(lon1))
	cosAngle = math.Max(-1, math.Min(1, cosAngle))
	return math.Acos(cosAngle) * EarthRadiusKM
}

// Nearby оставляет активные локации в радиусе radiusKM и сортирует по возрастанию расстояния
func Nearby(locations []*models.Location, lat, lon, radiusKM float64) []models.NearbyLocation {
	nearby := make([]models.NearbyLocation, 0)
	for _, loc := range locations {
		if !loc.IsActive {
			continue
		}
		d := DistanceKM(lat, lon, loc.Latitude, loc.Longitude)
		if d <= radiusKM {
			nearby = append(nearby, models.NearbyLocation{Location: *loc, DistanceKM: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKM != nearby[j].DistanceKM {
			return nearby[i].DistanceKM < nearby[j].DistanceKM
		}
		return nearby[i].Location.ID.String() < nearby[j].Location.ID.String()
	})
	return nearby
}

// ValidateCoordinates проверяет диапазоны широты и долготы
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return invalid("latitude", "must be within [-90, 90]")
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return invalid("longitude", "must be within [-180, 180]")
	}
	return nil
}
