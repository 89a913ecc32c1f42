package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/models"
)

const (
	// TopRegions - размер списков самых безопасных и самых опасных районов
	TopRegions = 5

	unknownRegion = "unknown"
)

// SafetyScore - ограниченная оценка безопасности района
func SafetyScore(totalIncidents int) float64 {
	score := 100 - float64(totalIncidents)*2
	if score < 0 {
		return 0
	}
	return score
}

type regionKey struct {
	county    string
	subCounty string
}

type regionAcc struct {
	key        regionKey
	total      int
	categories map[models.Category]int
	order      []models.Category
}

// BuildRegions группирует инциденты по (county, sub_county). Инциденты должны идти
// в детерминированном порядке: при равенстве частот побеждает категория, встреченная первой.
func BuildRegions(incidents []*models.Incident, locations map[uuid.UUID]*models.Location) []models.GeographicStats {
	accs := make(map[regionKey]*regionAcc)
	for _, inc := range incidents {
		if inc.IsDeleted() {
			continue
		}
		key := regionKey{county: unknownRegion, subCounty: unknownRegion}
		if loc, ok := locations[inc.LocationID]; ok {
			if loc.County != "" {
				key.county = loc.County
			}
			if loc.SubCounty != "" {
				key.subCounty = loc.SubCounty
			}
		}
		acc, ok := accs[key]
		if !ok {
			acc = &regionAcc{key: key, categories: make(map[models.Category]int)}
			accs[key] = acc
		}
		acc.total++
		if _, seen := acc.categories[inc.Category]; !seen {
			acc.order = append(acc.order, inc.Category)
		}
		acc.categories[inc.Category]++
	}

	regions := make([]models.GeographicStats, 0, len(accs))
	for _, acc := range accs {
		stat := models.GeographicStats{
			County:         acc.key.county,
			SubCounty:      acc.key.subCounty,
			TotalIncidents: acc.total,
			SafetyScore:    SafetyScore(acc.total),
		}
		best := 0
		for _, c := range acc.order {
			if acc.categories[c] > best {
				category := c
				stat.MostCommonCategory = &category
				best = acc.categories[c]
			}
		}
		regions = append(regions, stat)
	}
	sortRegions(regions, true)
	return regions
}

// RankRegions возвращает самые безопасные (меньше инцидентов) и самые опасные районы
func RankRegions(regions []models.GeographicStats) (safest, dangerous []models.GeographicStats) {
	asc := append([]models.GeographicStats(nil), regions...)
	sortRegions(asc, false)
	desc := append([]models.GeographicStats(nil), regions...)
	sortRegions(desc, true)
	return head(asc, TopRegions), head(desc, TopRegions)
}

func sortRegions(regions []models.GeographicStats, descending bool) {
	sort.SliceStable(regions, func(i, j int) bool {
		a, b := regions[i], regions[j]
		if a.TotalIncidents != b.TotalIncidents {
			if descending {
				return a.TotalIncidents > b.TotalIncidents
			}
			return a.TotalIncidents < b.TotalIncidents
		}
		if a.County != b.County {
			return a.County < b.County
		}
		return a.SubCounty < b.SubCounty
	})
}

func head(regions []models.GeographicStats, n int) []models.GeographicStats {
	if len(regions) > n {
		return regions[:n]
	}
	return regions
}
