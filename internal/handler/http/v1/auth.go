package v1

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analytics/internal/config"
	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// roleKey - ключ роли вызывающего в gin.Context
const roleKey = "caller_role"

// AnalyticsRoles - роли, которым доступна аналитика
var AnalyticsRoles = []models.Role{models.RolePoliceOfficer, models.RoleAdmin, models.RoleAnalyst}

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Роль, привязанная к ключу, сохраняется в контексте запроса.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		role, ok := cfg.APIKeys[apiKey]
		if !ok {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(roleKey, models.Role(role))
		c.Next()
	}
}

// RequireRoles пропускает запрос, только если роль вызывающего входит в allowed.
// Движок аналитики получает уже авторизованный запрос.
func RequireRoles(log *logrus.Logger, allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(roleKey)
		role, ok := value.(models.Role)
		if !exists || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}
		for _, r := range allowed {
			if r == role {
				c.Next()
				return
			}
		}
		log.WithField("role", role).WithField("path", c.FullPath()).Warn("Access denied for role")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// RequestTimeoutMiddleware ограничивает время обработки запроса
func RequestTimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
