package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, alerts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, alerts.ErrInvalidType),
		errors.Is(err, alerts.ErrInvalidSeverity),
		errors.Is(err, alerts.ErrInvalidParams):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (rs *RestfulServer) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (rs *RestfulServer) parseQueryParams(c *gin.Context) (models.QueryParams, bool) {
	var params models.QueryParams
	if issues := alerts.QueryParamsSchema.Parse(zhttp.Request(c.Request), &params); len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": issues})
		return params, false
	}
	return params, true
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	params, ok := rs.parseQueryParams(c)
	if !ok {
		return
	}

	page, err := rs.Alerts.Query.GetAlerts(c.Request.Context(), params)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rs *RestfulServer) GetStockAlerts(c *gin.Context) {
	params, ok := rs.parseQueryParams(c)
	if !ok {
		return
	}

	page, err := rs.Alerts.Query.GetStockAlerts(c.Request.Context(), params)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rs *RestfulServer) GetExpiryAlerts(c *gin.Context) {
	params, ok := rs.parseQueryParams(c)
	if !ok {
		return
	}

	page, err := rs.Alerts.Query.GetExpiryAlerts(c.Request.Context(), params)
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rs *RestfulServer) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	view, err := rs.Alerts.Query.MarkAsRead(c.Request.Context(), uint(id))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) MarkAllAsRead(c *gin.Context) {
	updated, err := rs.Alerts.Query.MarkAllAsRead(c.Request.Context(), c.Query("type"))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

type SyncResponse struct {
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Resolved int `json:"resolved"`
}

func (rs *RestfulServer) SyncAlerts(c *gin.Context) {
	report, err := rs.Alerts.Reconciler.SyncAllAlerts(c.Request.Context(), models.SyncOptions{
		Source: models.SyncSourceManual,
		Emit:   true,
	})
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SyncResponse{
		Created:  len(report.Created),
		Updated:  len(report.Updated),
		Resolved: len(report.Resolved),
	})
}

// InventoryChanged is called by the inventory collaborators after a write.
// With a scheduler the pass is queued; without one it runs inline.
func (rs *RestfulServer) InventoryChanged(c *gin.Context) {
	if rs.Scheduler != nil {
		queued := rs.Scheduler.Trigger(models.SyncSourceInventory)
		c.JSON(http.StatusAccepted, gin.H{"queued": queued})
		return
	}

	if err := rs.Alerts.Reconciler.NotifyInventoryChanged(c.Request.Context()); err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": false})
}

// DeleteProductAlerts drops every alert of a product, resolved or not. The
// inventory side calls it before deleting the product row.
func (rs *RestfulServer) DeleteProductAlerts(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	deleted, err := rs.Alerts.Store.DeleteForProduct(c.Request.Context(), uint(id))
	if err != nil {
		rs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required().GTE(0),
	"burst": z.Int().Required().GTE(1),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	clientIP := c.Param("client_ip")

	var req LimiterRequest
	if issues := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": issues})
		return
	}

	rs.SetLimiter(clientIP, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
