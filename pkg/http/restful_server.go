package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts"
	"liyu1981.xyz/inventory-alert-service/pkg/limiter"
	"liyu1981.xyz/inventory-alert-service/pkg/scheduler"
)

type RestfulServer struct {
	Server           *gin.Engine
	Alerts           *alerts.Alerts
	Scheduler        *scheduler.Scheduler
	RateLimiterStore *limiter.RateLimiterStore
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

// RateLimit rejects requests once the calling client's bucket is empty.
// Clients are keyed by IP.
func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.RateLimiterStore.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	alertsGroup := rs.Server.Group("/alerts", rs.RateLimit())
	{
		alertsGroup.GET("", rs.GetAlerts)
		alertsGroup.GET("/stock", rs.GetStockAlerts)
		alertsGroup.GET("/expiry", rs.GetExpiryAlerts)
		alertsGroup.PATCH("/read-all", rs.MarkAllAsRead)
		alertsGroup.PATCH("/:id/read", rs.MarkAsRead)
		alertsGroup.POST("/sync", rs.SyncAlerts)
		alertsGroup.GET("/stream", rs.StreamAlerts)
		alertsGroup.GET("/ws", rs.StreamAlertsWS)
	}

	rs.Server.POST("/inventory/changed", rs.RateLimit(), rs.InventoryChanged)
	rs.Server.DELETE("/inventory/products/:id/alerts", rs.RateLimit(), rs.DeleteProductAlerts)
	rs.Server.POST("/clients/:client_ip/limiter", rs.PostLimiter)
}
