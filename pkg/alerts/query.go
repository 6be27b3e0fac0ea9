package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

// ParseAlertType maps the user-facing type filter. Empty and "all" mean no
// filter.
func ParseAlertType(value string) (*models.AlertType, error) {
	var alertType models.AlertType
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return nil, nil
	case "stock":
		alertType = models.AlertTypeStockLow
	case "expiry":
		alertType = models.AlertTypeExpiry
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, value)
	}
	return &alertType, nil
}

func ParseSeverity(value string) (*models.AlertSeverity, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	severity := models.AlertSeverity(strings.ToUpper(strings.TrimSpace(value)))
	if severity.Weight() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeverity, value)
	}
	return &severity, nil
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func (a *Alerts) getAlerts(ctx context.Context, params models.QueryParams) (*models.AlertPage, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryQuery),
	)

	alertType, err := ParseAlertType(params.Type)
	if err != nil {
		return nil, err
	}
	severity, err := ParseSeverity(params.Severity)
	if err != nil {
		return nil, err
	}

	window := params.WindowDays
	if window <= 0 {
		window = a.windowDays()
	}
	if window > MaxWindowDays {
		window = MaxWindowDays
	}
	page, pageSize := normalizePaging(params.Page, params.PageSize)

	filter := models.AlertFilter{
		Type:       alertType,
		Severity:   severity,
		WindowDays: window,
		UnreadOnly: params.UnreadOnly,
		Search:     params.Search,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}

	if _, err := a.Reconciler.SyncAllAlerts(ctx, models.SyncOptions{
		Source: models.SyncSourceQuery,
		Emit:   false,
	}); err != nil {
		logger.Error("Refusing to serve stale alerts", zap.Error(err))
		if errors.Is(err, ErrReconcile) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrReconcile, err)
	}

	result := &models.AlertPage{}
	err = a.Store.Transaction(ctx, func(ctx context.Context) error {
		data, err := a.Store.List(ctx, filter)
		if err != nil {
			return err
		}
		total, unread, err := a.Store.Count(ctx, filter)
		if err != nil {
			return err
		}

		totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
		if totalPages < 1 {
			totalPages = 1
		}

		result.Data = data
		result.Meta = models.PageMeta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			Unread:     unread,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	if result.Data == nil {
		result.Data = []models.AlertView{}
	}

	logger.Debug("Alerts listed", zap.Int64("total", result.Meta.Total), zap.Int("page", page))
	return result, nil
}

func (a *Alerts) markAsRead(ctx context.Context, id uint) (*models.AlertView, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryQuery),
	)

	view, changed, err := a.Store.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed {
		logger.Info("Alert marked as read", zap.Uint("alert_id", id))
		a.publish(events.EventAlertUpdated, *view)
	}
	return view, nil
}

func (a *Alerts) markAllAsRead(ctx context.Context, value string) (int64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryQuery),
	)

	alertType, err := ParseAlertType(value)
	if err != nil {
		return 0, err
	}

	updated, err := a.Store.MarkAllRead(ctx, alertType)
	if err != nil {
		return 0, err
	}

	logger.Info("Alerts marked as read", zap.String("type", value), zap.Int64("updated", updated))
	return updated, nil
}

type IQueryImpl struct {
	alerts *Alerts
}

func (iq *IQueryImpl) GetAlerts(ctx context.Context, params models.QueryParams) (*models.AlertPage, error) {
	return iq.alerts.getAlerts(ctx, params)
}

func (iq *IQueryImpl) GetStockAlerts(ctx context.Context, params models.QueryParams) (*models.AlertPage, error) {
	params.Type = "stock"
	return iq.alerts.getAlerts(ctx, params)
}

func (iq *IQueryImpl) GetExpiryAlerts(ctx context.Context, params models.QueryParams) (*models.AlertPage, error) {
	params.Type = "expiry"
	return iq.alerts.getAlerts(ctx, params)
}

func (iq *IQueryImpl) MarkAsRead(ctx context.Context, id uint) (*models.AlertView, error) {
	return iq.alerts.markAsRead(ctx, id)
}

func (iq *IQueryImpl) MarkAllAsRead(ctx context.Context, alertType string) (int64, error) {
	return iq.alerts.markAllAsRead(ctx, alertType)
}

func (a *Alerts) GetIQuery() IQuery {
	return &IQueryImpl{alerts: a}
}
