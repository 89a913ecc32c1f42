package analytics

import (
	"strconv"
	"time"

	"github.com/shenikar/crime_analytics/internal/models"
)

// ISO-номера дней недели (1 - понедельник) в том виде, в котором их возвращает хранилище
var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// HourKeys - ключи группировки по часу суток, 0..23
func HourKeys() []string {
	keys := make([]string, 24)
	for h := range keys {
		keys[h] = strconv.Itoa(h)
	}
	return keys
}

// WeekdayKeys - ключи группировки по дню недели, 1..7
func WeekdayKeys() []string {
	keys := make([]string, len(weekdayNames))
	for i := range keys {
		keys[i] = strconv.Itoa(i + 1)
	}
	return keys
}

// ISOWeekday переводит time.Weekday в ISO-номер
func ISOWeekday(d time.Weekday) int {
	return (int(d)+6)%7 + 1
}

// WeekdayName возвращает название дня по ISO-номеру в виде строки
func WeekdayName(key string) string {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(weekdayNames) {
		return key
	}
	return weekdayNames[n-1]
}

// NameWeekdays заменяет ISO-номера в распределении на названия дней
func NameWeekdays(stats []models.GroupedStat) []models.GroupedStat {
	named := make([]models.GroupedStat, len(stats))
	for i, s := range stats {
		s.Key = WeekdayName(s.Key)
		named[i] = s
	}
	return named
}
