package analytics

import (
	"math"
	"sort"

	"github.com/shenikar/crime_analytics/internal/models"
)

// Round2 округляет значение до двух знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percentage возвращает count/total*100 с округлением до двух знаков, 0 при total == 0
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(count) / float64(total) * 100)
}

// GroupStats превращает результат группировки в GroupedStat.
// total вычисляется один раз вызывающей стороной и используется для всех групп.
// Результат упорядочен по убыванию количества, затем по ключу.
func GroupStats(groups []models.GroupCount, total int) []models.GroupedStat {
	stats := make([]models.GroupedStat, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, models.GroupedStat{
			Key:        g.Key,
			Count:      g.Count,
			Percentage: Percentage(g.Count, total),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Key < stats[j].Key
	})
	return stats
}

// Distribution строит распределение по фиксированному набору ключей в заданном порядке,
// отсутствующие ключи получают нулевое значение
func Distribution(groups []models.GroupCount, keys []string, total int) []models.GroupedStat {
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.Key] += g.Count
	}
	stats := make([]models.GroupedStat, 0, len(keys))
	for _, key := range keys {
		stats = append(stats, models.GroupedStat{
			Key:        key,
			Count:      counts[key],
			Percentage: Percentage(counts[key], total),
		})
	}
	return stats
}

// Peak возвращает индекс первого элемента с максимальным ненулевым количеством, -1 если все нули
func Peak(stats []models.GroupedStat) int {
	peak, best := -1, 0
	for i, s := range stats {
		if s.Count > best {
			peak, best = i, s.Count
		}
	}
	return peak
}
