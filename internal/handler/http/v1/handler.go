package v1

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_analytics/internal/analytics"
	"github.com/shenikar/crime_analytics/internal/config"
	"github.com/shenikar/crime_analytics/internal/service"
	"github.com/sirupsen/logrus"
)

// retryAfterSeconds - подсказка клиенту при недоступности хранилища
const retryAfterSeconds = "5"

type Handler struct {
	analyticsService service.AnalyticsService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(analyticsService service.AnalyticsService, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New()
	// В ошибках валидации используем имена query-параметров
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Handler{
		analyticsService: analyticsService,
		logger:           logger,
		validate:         validate,
		cfg:              cfg,
	}
}

// bindQuery разбирает и проверяет query-параметры, при ошибке отвечает 400
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		resp := ErrorResponse{Error: err.Error()}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			resp.Field = fieldErrs[0].Field()
		}
		c.JSON(http.StatusBadRequest, resp)
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var vErr *analytics.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.WithError(err).Warn("Rejected analytics request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Error(), Field: vErr.Field})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		log.WithError(err).Warn("Analytics request canceled")
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "analytics request timed out"})
	case errors.Is(err, analytics.ErrStoreUnavailable):
		log.WithError(err).Error("Analytics store unavailable")
		c.Header("Retry-After", retryAfterSeconds)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "analytics store unavailable"})
	default:
		log.WithError(err).Error("Failed to compute analytics")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func (h *Handler) badRequest(c *gin.Context, log *logrus.Entry, err error) {
	log.WithError(err).Warn("Failed to map query")
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// @Summary Get crime statistics
// @Description Incident counts by category, severity, status and location within a time window (default: last 30 days).
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param start_date query string false "Window start (RFC3339)"
// @Param end_date query string false "Window end (RFC3339)"
// @Param location_id query string false "Location ID"
// @Param crime_type query string false "Crime category"
// @Success 200 {object} models.CrimeStats
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/crime-stats [get]
func (h *Handler) getCrimeStats(c *gin.Context) {
	log := h.logger.WithField("method", "getCrimeStats")
	var query CrimeStatsQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	req, err := QueryToCrimeStatsRequest(query)
	if err != nil {
		h.badRequest(c, log, err)
		return
	}

	stats, err := h.analyticsService.GetCrimeStatistics(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RoundCrimeStats(stats))
}

// @Summary Get trend analysis
// @Description Incident time series by calendar period with percentage change and overall direction.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param period query string false "Period" Enums(daily, weekly, monthly, yearly) default(monthly)
// @Param crime_type query string false "Crime category"
// @Param location_id query string false "Location ID"
// @Param days_back query int false "Override the period look-back in days"
// @Success 200 {object} models.TrendAnalysis
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	log := h.logger.WithField("method", "getTrends")
	var query TrendQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	req, err := QueryToTrendRequest(query)
	if err != nil {
		h.badRequest(c, log, err)
		return
	}

	trend, err := h.analyticsService.GetTrendAnalysis(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// @Summary Get crime hotspots
// @Description Locations with at least min_incidents incidents in the last days_back days, with risk level. Critical hotspots trigger webhook alerts.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param radius_km query number false "Radius in km, echoed in the response" default(5)
// @Param min_incidents query int false "Minimum incidents per location" default(5)
// @Param days_back query int false "Look-back in days" default(30)
// @Success 200 {object} models.HotspotAnalysis
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/hotspots [get]
func (h *Handler) getHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "getHotspots")
	var query HotspotQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	result, err := h.analyticsService.GetHotspotAnalysis(c.Request.Context(), service.HotspotRequest{
		RadiusKM:     query.RadiusKM,
		MinIncidents: query.MinIncidents,
		DaysBack:     query.DaysBack,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get incident forecast
// @Description Naive per-day incident forecast from historical samples.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param prediction_days query int false "Forecast horizon in days" default(7)
// @Param location_id query string false "Location ID"
// @Param crime_type query string false "Crime category"
// @Success 200 {object} models.PredictiveAnalysis
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/predictions [get]
func (h *Handler) getPredictions(c *gin.Context) {
	log := h.logger.WithField("method", "getPredictions")
	var query PredictionQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	req, err := QueryToPredictionRequest(query)
	if err != nil {
		h.badRequest(c, log, err)
		return
	}

	result, err := h.analyticsService.GetPredictiveAnalysis(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RoundPredictiveAnalysis(result))
}

// @Summary Get dashboard summary
// @Description Users, reports of the last 30 days, 7-day daily trend and top hotspots.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/dashboard-summary [get]
func (h *Handler) getDashboardSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboardSummary")

	summary, err := h.analyticsService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get performance analytics
// @Description Resolution rate and time overall and per officer.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param start_date query string false "Window start (RFC3339)"
// @Param end_date query string false "Window end (RFC3339)"
// @Success 200 {object} models.PerformanceAnalytics
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/performance [get]
func (h *Handler) getPerformance(c *gin.Context) {
	log := h.logger.WithField("method", "getPerformance")
	var query WindowQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	result, err := h.analyticsService.GetPerformanceAnalytics(c.Request.Context(), service.WindowRequest{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RoundPerformanceAnalytics(result))
}

// @Summary Get geographic analytics
// @Description Incidents by county and sub-county with safety score, safest and most dangerous areas.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param start_date query string false "Window start (RFC3339)"
// @Param end_date query string false "Window end (RFC3339)"
// @Success 200 {object} models.GeographicAnalytics
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/geographic [get]
func (h *Handler) getGeographic(c *gin.Context) {
	log := h.logger.WithField("method", "getGeographic")
	var query WindowQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	result, err := h.analyticsService.GetGeographicAnalytics(c.Request.Context(), service.WindowRequest{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get time based analytics
// @Description Incident distribution by hour of day and day of week with peaks.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param start_date query string false "Window start (RFC3339)"
// @Param end_date query string false "Window end (RFC3339)"
// @Param location_id query string false "Location ID"
// @Param crime_type query string false "Crime category"
// @Success 200 {object} models.TimeBasedAnalytics
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /analytics/time-based [get]
func (h *Handler) getTimeBased(c *gin.Context) {
	log := h.logger.WithField("method", "getTimeBased")
	var query TimeBasedQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	req, err := QueryToTimeBasedRequest(query)
	if err != nil {
		h.badRequest(c, log, err)
		return
	}

	result, err := h.analyticsService.GetTimeBasedAnalytics(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Find nearby locations
// @Description Active locations within radius_km of a point, nearest first.
// @Tags Locations
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius_km query number false "Radius in km" default(10)
// @Success 200 {array} NearbyLocationResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} ErrorResponse "Analytics store unavailable"
// @Failure 504 {object} ErrorResponse "Request timed out"
// @Router /locations/nearby [get]
func (h *Handler) getNearbyLocations(c *gin.Context) {
	log := h.logger.WithField("method", "getNearbyLocations")
	var query NearbyQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	nearby, err := h.analyticsService.GetNearbyLocations(c.Request.Context(), service.NearbyRequest{
		Latitude:  *query.Latitude,
		Longitude: *query.Longitude,
		RadiusKM:  query.RadiusKM,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyResponses(nearby))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
