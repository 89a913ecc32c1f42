package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/config"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/shenikar/crime_analytics/internal/repository/memory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тесты на журнале в памяти: проверяют связку сервиса и хранилища целиком

func newLedgerService(t *testing.T) (*analyticsService, *memory.Store) {
	t.Helper()
	store := memory.NewStore(time.UTC)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAnalyticsService(store, logger, &config.Config{LedgerLocation: time.UTC}, nil, nil).(*analyticsService)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

type ledgerIncident struct {
	category models.Category
	status   models.Status
	location uuid.UUID
	ago      time.Duration
}

func seed(store *memory.Store, items ...ledgerIncident) {
	for _, it := range items {
		at := testNow.Add(-it.ago)
		store.AddIncidents(&models.Incident{
			ID:         uuid.New(),
			Category:   it.category,
			Severity:   models.SeverityMedium,
			Status:     it.status,
			LocationID: it.location,
			CreatedAt:  at,
			UpdatedAt:  at.Add(6 * time.Hour),
		})
	}
}

func repeat(n int, it ledgerIncident) []ledgerIncident {
	out := make([]ledgerIncident, n)
	for i := range out {
		out[i] = it
		out[i].ago = it.ago + time.Duration(i)*time.Minute
	}
	return out
}

func TestLedger_CrimeStatisticsShareOfCategory(t *testing.T) {
	svc, store := newLedgerService(t)
	loc := &models.Location{ID: uuid.New(), City: "Mombasa", IsActive: true}
	store.AddLocations(loc)
	seed(store, repeat(30, ledgerIncident{models.CategoryTheft, models.StatusResolved, loc.ID, 48 * time.Hour})...)
	seed(store, repeat(70, ledgerIncident{models.CategoryAssault, models.StatusSubmitted, loc.ID, 72 * time.Hour})...)
	// вне окна по умолчанию
	seed(store, ledgerIncident{models.CategoryTheft, models.StatusSubmitted, loc.ID, 40 * 24 * time.Hour})

	stats, err := svc.GetCrimeStatistics(context.Background(), CrimeStatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 100, stats.TotalCrimes)
	assert.Contains(t, stats.StatsByType, models.GroupedStat{Key: "theft", Count: 30, Percentage: 30})

	sum, pct := 0, 0.0
	for _, s := range stats.StatsByType {
		sum += s.Count
		pct += s.Percentage
	}
	assert.Equal(t, stats.TotalCrimes, sum)
	assert.InDelta(t, 100, pct, 0.05)

	require.Len(t, stats.StatsByLocation, 1)
	assert.Equal(t, "Mombasa", stats.StatsByLocation[0].LocationName)
	assert.InDelta(t, 6.0, stats.AverageResolutionHours, 1e-9)
}

func TestLedger_SoftDeletedIncidentsAreInvisible(t *testing.T) {
	svc, store := newLedgerService(t)
	locationID := uuid.New()
	seed(store, ledgerIncident{models.CategoryFraud, models.StatusSubmitted, locationID, time.Hour})
	deletedAt := testNow
	store.AddIncidents(&models.Incident{
		ID:         uuid.New(),
		Category:   models.CategoryFraud,
		Status:     models.StatusSubmitted,
		LocationID: locationID,
		CreatedAt:  testNow.Add(-2 * time.Hour),
		UpdatedAt:  testNow,
		DeletedAt:  &deletedAt,
	})

	stats, err := svc.GetCrimeStatistics(context.Background(), CrimeStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCrimes)
}

func TestLedger_EmptyLedgerIsNotAnError(t *testing.T) {
	svc, _ := newLedgerService(t)
	ctx := context.Background()

	stats, err := svc.GetCrimeStatistics(ctx, CrimeStatsRequest{})
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCrimes)
	assert.Empty(t, stats.StatsByType)
	assert.Zero(t, stats.AverageResolutionHours)

	trend, err := svc.GetTrendAnalysis(ctx, TrendRequest{Period: "monthly"})
	require.NoError(t, err)
	assert.Empty(t, trend.Trends)
	assert.Equal(t, models.TrendStable, trend.Direction)

	prediction, err := svc.GetPredictiveAnalysis(ctx, PredictionRequest{PredictionDays: 7})
	require.NoError(t, err)
	assert.Zero(t, prediction.OverallConfidence)
	assert.Zero(t, prediction.TotalPredicted)
	assert.Equal(t, analytics.RecommendationLowConfidence, prediction.Recommendation)

	timeBased, err := svc.GetTimeBasedAnalytics(ctx, TimeBasedRequest{})
	require.NoError(t, err)
	assert.Nil(t, timeBased.PeakHour)
	assert.Empty(t, timeBased.PeakDay)
	assert.Len(t, timeBased.HourlyDistribution, 24)
}

func TestLedger_DailyTrend(t *testing.T) {
	svc, store := newLedgerService(t)
	locationID := uuid.New()
	day := 24 * time.Hour
	// 10 инцидентов три дня назад, ни одного позавчера, 5 вчера
	seed(store, repeat(10, ledgerIncident{models.CategoryTheft, models.StatusSubmitted, locationID, 3 * day})...)
	seed(store, repeat(5, ledgerIncident{models.CategoryTheft, models.StatusSubmitted, locationID, day})...)

	trend, err := svc.GetTrendAnalysis(context.Background(), TrendRequest{Period: "daily"})
	require.NoError(t, err)

	require.Len(t, trend.Trends, 3)
	assert.Equal(t, []int{10, 0, 5}, []int{trend.Trends[0].Count, trend.Trends[1].Count, trend.Trends[2].Count})
	assert.Nil(t, trend.Trends[0].PercentageChange)
	require.NotNil(t, trend.Trends[1].PercentageChange)
	assert.Equal(t, -100.0, *trend.Trends[1].PercentageChange)
	assert.Nil(t, trend.Trends[2].PercentageChange)
	assert.Equal(t, models.TrendDecreasing, trend.Direction)
}

func TestLedger_HotspotCriticalTier(t *testing.T) {
	svc, store := newLedgerService(t)
	hot := &models.Location{ID: uuid.New(), City: "Kibera", County: "Nairobi", IsActive: true}
	calm := &models.Location{ID: uuid.New(), City: "Karen", County: "Nairobi", IsActive: true}
	store.AddLocations(hot, calm)
	seed(store, repeat(20, ledgerIncident{models.CategoryRobbery, models.StatusSubmitted, hot.ID, time.Hour})...)
	seed(store, repeat(4, ledgerIncident{models.CategoryRobbery, models.StatusSubmitted, calm.ID, time.Hour})...)

	result, err := svc.GetHotspotAnalysis(context.Background(), HotspotRequest{RadiusKM: 1, MinIncidents: 5, DaysBack: 30})
	require.NoError(t, err)

	require.Len(t, result.Hotspots, 1)
	assert.Equal(t, hot.ID, result.Hotspots[0].LocationID)
	assert.Equal(t, 20, result.Hotspots[0].IncidentCount)
	assert.Equal(t, models.RiskCritical, result.Hotspots[0].RiskTier)
}

func TestLedger_PredictionFromHistory(t *testing.T) {
	svc, store := newLedgerService(t)
	locationID := uuid.New()
	day := 24 * time.Hour
	// по 7 инцидентов в каждом окне выборки: 30, 60, 90, 180 и 360 дней назад
	for _, offset := range analytics.HistoricalOffsetsMonths {
		seed(store, repeat(7, ledgerIncident{models.CategoryTheft, models.StatusSubmitted, locationID, time.Duration(offset*30)*day + 2*day})...)
	}

	result, err := svc.GetPredictiveAnalysis(context.Background(), PredictionRequest{PredictionDays: 7})
	require.NoError(t, err)

	assert.Equal(t, []int{7, 7, 7, 7, 7}, result.HistoricalSamples)
	require.Len(t, result.Predictions, 7)
	for _, p := range result.Predictions {
		assert.Equal(t, 1, p.PredictedCount)
		assert.LessOrEqual(t, p.LowerBound, p.PredictedCount)
		assert.GreaterOrEqual(t, p.UpperBound, p.PredictedCount)
	}
	assert.Equal(t, 7, result.TotalPredicted)
	assert.Equal(t, analytics.RecommendationModerate, result.Recommendation)
}

func TestLedger_GeographicAnalytics(t *testing.T) {
	svc, store := newLedgerService(t)
	kibra := &models.Location{ID: uuid.New(), County: "Nairobi", SubCounty: "Kibra", IsActive: true}
	nyali := &models.Location{ID: uuid.New(), County: "Mombasa", SubCounty: "Nyali", IsActive: true}
	store.AddLocations(kibra, nyali)
	seed(store, repeat(3, ledgerIncident{models.CategoryAssault, models.StatusSubmitted, kibra.ID, time.Hour})...)
	seed(store, ledgerIncident{models.CategoryFraud, models.StatusSubmitted, nyali.ID, time.Hour})

	geo, err := svc.GetGeographicAnalytics(context.Background(), WindowRequest{})
	require.NoError(t, err)

	require.Len(t, geo.Regions, 2)
	assert.Equal(t, "Kibra", geo.MostDangerous[0].SubCounty)
	assert.Equal(t, "Nyali", geo.Safest[0].SubCounty)
	assert.Equal(t, 98.0, geo.Safest[0].SafetyScore)
	require.NotNil(t, geo.MostDangerous[0].MostCommonCategory)
	assert.Equal(t, models.CategoryAssault, *geo.MostDangerous[0].MostCommonCategory)
}

func TestLedger_TimeBasedPeaks(t *testing.T) {
	svc, store := newLedgerService(t)
	locationID := uuid.New()
	// testNow - воскресенье 12:00 UTC
	seed(store, repeat(3, ledgerIncident{models.CategoryTheft, models.StatusSubmitted, locationID, 2 * time.Hour})...)
	seed(store, ledgerIncident{models.CategoryTheft, models.StatusSubmitted, locationID, 26 * time.Hour})

	result, err := svc.GetTimeBasedAnalytics(context.Background(), TimeBasedRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalIncidents)
	require.NotNil(t, result.PeakHour)
	assert.Equal(t, 9, *result.PeakHour)
	assert.Equal(t, "sunday", result.PeakDay)
	assert.Equal(t, 75.0, result.WeekdayDistribution[6].Percentage)
	assert.Equal(t, 1, result.WeekdayDistribution[5].Count)
}

func TestLedger_PerformanceAndDashboard(t *testing.T) {
	svc, store := newLedgerService(t)
	loc := &models.Location{ID: uuid.New(), City: "Eldoret", IsActive: true}
	store.AddLocations(loc)
	officer := &models.User{ID: uuid.New(), Role: models.RolePoliceOfficer, IsActive: true}
	store.AddUsers(
		officer,
		&models.User{ID: uuid.New(), Role: models.RolePoliceOfficer, IsActive: false},
		&models.User{ID: uuid.New(), Role: models.RoleCitizen, IsActive: true},
	)
	for i, status := range []models.Status{models.StatusResolved, models.StatusClosed, models.StatusInProgress, models.StatusRejected} {
		at := testNow.Add(-time.Duration(i+1) * time.Hour)
		store.AddIncidents(&models.Incident{
			ID:                uuid.New(),
			Category:          models.CategoryBurglary,
			Status:            status,
			LocationID:        loc.ID,
			AssignedOfficerID: &officer.ID,
			CreatedAt:         at,
			UpdatedAt:         at.Add(4 * time.Hour),
		})
	}
	ctx := context.Background()

	perf, err := svc.GetPerformanceAnalytics(ctx, WindowRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, perf.TotalReports)
	assert.Equal(t, 2, perf.ResolvedReports)
	assert.Equal(t, 50.0, perf.ResolutionRate)
	assert.InDelta(t, 4.0, perf.AverageResolutionHours, 1e-9)
	assert.Equal(t, 1, perf.ActiveOfficers)
	require.Len(t, perf.Officers, 1)
	assert.Equal(t, models.OfficerStats{OfficerID: officer.ID, AssignedReports: 4, ResolvedReports: 2, ResolutionRate: 50}, perf.Officers[0])

	summary, err := svc.GetDashboardSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalUsers)
	assert.Equal(t, 2, summary.ActiveUsers)
	assert.Equal(t, 4, summary.TotalReports)
	assert.Equal(t, 2, summary.ResolvedReports)
	assert.Equal(t, 1, summary.PendingReports)
	require.Len(t, summary.RecentTrends, 1)
	assert.Equal(t, 4, summary.RecentTrends[0].Count)
	require.Len(t, summary.TopHotspots, 1)
	assert.Equal(t, models.RiskLow, summary.TopHotspots[0].RiskTier)
}
