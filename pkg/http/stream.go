package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	"nhooyr.io/websocket"
)

const wsWriteTimeout = 5 * time.Second

// StreamAlerts relays bus events as server-sent events until the client goes
// away. Events published before the subscription are not replayed.
func (rs *RestfulServer) StreamAlerts(c *gin.Context) {
	if rs.Alerts.Bus == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream unavailable"})
		return
	}

	sub := rs.Alerts.Bus.Subscribe(events.DefaultBuffer)
	defer rs.Alerts.Bus.Unsubscribe(sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			c.SSEvent(ev.Type, ev)
			c.Writer.Flush()
		}
	}
}

// StreamAlertsWS relays bus events as JSON text messages over a websocket.
func (rs *RestfulServer) StreamAlertsWS(c *gin.Context) {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)

	if rs.Alerts.Bus == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream unavailable"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		logger.Warn("Websocket accept failed", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	sub := rs.Alerts.Bus.Subscribe(events.DefaultBuffer)
	defer rs.Alerts.Bus.Unsubscribe(sub)

	// the stream is one-way; CloseRead handles control frames and cancels
	// ctx once the peer closes
	ctx := conn.CloseRead(c.Request.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "shutting down")
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				logger.Error("Failed to encode event", zap.String("type", ev.Type), zap.Error(err))
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
			err = conn.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				logger.Debug("Websocket client gone", zap.Error(err))
				return
			}
		}
	}
}
