package alerts

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/db"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

type txKey struct{}

// likeEscaper makes search terms match literally under LIKE ... ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

const alertViewColumns = "alerts.*, " +
	"products.name AS product_name, products.stock_actual AS product_stock_actual, products.stock_minimo AS product_stock_minimo, " +
	"brands.name AS brand_name, categories.name AS category_name, " +
	"suppliers.id AS supplier_id, suppliers.name AS supplier_name, suppliers.contact AS supplier_contact, " +
	"suppliers.phone AS supplier_phone, suppliers.email AS supplier_email, " +
	"lots.code AS lot_code, lots.quantity AS lot_quantity, lots.expires_at AS lot_expires_at"

const alertViewOrder = "CASE alerts.severity WHEN 'CRITICAL' THEN 3 WHEN 'WARNING' THEN 2 ELSE 1 END DESC, " +
	"alerts.vence_en_dias IS NULL, alerts.vence_en_dias ASC, " +
	"alerts.stock_actual IS NULL, alerts.stock_actual ASC, " +
	"alerts.created_at DESC, alerts.id DESC"

// conn returns the transaction carried by ctx, or the shared connection.
func (a *Alerts) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return a.Db.Conn.WithContext(ctx)
}

func (a *Alerts) transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return a.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (a *Alerts) listActive(ctx context.Context, alertType models.AlertType) ([]models.Alert, error) {
	var alerts []models.Alert
	err := a.conn(ctx).
		Where("type = ? AND resolved_at IS NULL", alertType).
		Order("created_at ASC, id ASC").
		Find(&alerts).Error
	return alerts, err
}

// upsertActive inserts alert unless an active alert already holds its key, in
// which case alert is overwritten with the existing row and false is returned.
func (a *Alerts) upsertActive(ctx context.Context, alert *models.Alert) (bool, error) {
	conn := a.conn(ctx)

	result := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(alert)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	query := conn.Where("type = ? AND resolved_at IS NULL", alert.Type)
	if alert.Type == models.AlertTypeExpiry {
		query = query.Where("lot_id = ?", alert.LotID)
	} else {
		query = query.Where("product_id = ?", alert.ProductID)
	}

	var existing models.Alert
	if err := query.Take(&existing).Error; err != nil {
		return false, fmt.Errorf("fetch active alert after conflict: %w", err)
	}
	*alert = existing
	return false, nil
}

func (a *Alerts) applyBatch(ctx context.Context, batch models.AlertBatch) (*models.SyncReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStore),
	)

	report := &models.SyncReport{Resolved: []uint{}}

	err := a.transaction(ctx, func(ctx context.Context) error {
		conn := a.conn(ctx)

		var createdIDs, updatedIDs []uint

		for i := range batch.Create {
			alert := batch.Create[i]
			created, err := a.upsertActive(ctx, &alert)
			if err != nil {
				return fmt.Errorf("create alert: %w", err)
			}
			if !created {
				logger.Debug("Active alert already present", zap.Uint("alert_id", alert.ID))
				continue
			}
			createdIDs = append(createdIDs, alert.ID)
		}

		for _, change := range batch.Update {
			result := conn.Model(&models.Alert{}).
				Where("id = ? AND resolved_at IS NULL", change.ID).
				Updates(map[string]any{
					"severity":      change.Severity,
					"mensaje":       change.Mensaje,
					"stock_actual":  change.StockActual,
					"stock_minimo":  change.StockMinimo,
					"vence_en_dias": change.VenceEnDias,
					"leida":         change.Leida,
				})
			if result.Error != nil {
				return fmt.Errorf("update alert %d: %w", change.ID, result.Error)
			}
			if result.RowsAffected > 0 {
				updatedIDs = append(updatedIDs, change.ID)
			}
		}

		for _, id := range batch.Resolve {
			result := conn.Model(&models.Alert{}).
				Where("id = ? AND resolved_at IS NULL", id).
				Update("resolved_at", batch.ResolvedAt)
			if result.Error != nil {
				return fmt.Errorf("resolve alert %d: %w", id, result.Error)
			}
			if result.RowsAffected > 0 {
				report.Resolved = append(report.Resolved, id)
			}
		}

		var err error
		if report.Created, err = a.viewsByIDs(ctx, createdIDs); err != nil {
			return err
		}
		if report.Updated, err = a.viewsByIDs(ctx, updatedIDs); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (a *Alerts) joinedAlerts(ctx context.Context) *gorm.DB {
	return a.conn(ctx).Table("alerts").
		Joins("LEFT JOIN products ON products.id = alerts.product_id").
		Joins("LEFT JOIN brands ON brands.id = products.brand_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN suppliers ON suppliers.id = products.supplier_id").
		Joins("LEFT JOIN lots ON lots.id = alerts.lot_id")
}

func (a *Alerts) viewsByIDs(ctx context.Context, ids []uint) ([]models.AlertView, error) {
	views := []models.AlertView{}
	if len(ids) == 0 {
		return views, nil
	}
	err := a.joinedAlerts(ctx).
		Select(alertViewColumns).
		Where("alerts.id IN ?", ids).
		Order("alerts.id ASC").
		Scan(&views).Error
	return views, err
}

func applyAlertFilter(query *gorm.DB, filter models.AlertFilter) *gorm.DB {
	query = query.Where("alerts.resolved_at IS NULL")

	if filter.Type != nil {
		query = query.Where("alerts.type = ?", *filter.Type)
	}
	if filter.Severity != nil {
		query = query.Where("alerts.severity = ?", *filter.Severity)
	}
	if filter.UnreadOnly {
		query = query.Where("alerts.leida = ?", false)
	}
	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		lower := "LOWER"
		if query.Dialector.Name() == "sqlite" {
			lower = db.UnicodeLowerFunc
		}
		like := "%" + likeEscaper.Replace(term) + "%"
		query = query.Where(
			fmt.Sprintf(
				`(%[1]s(products.name) LIKE ? ESCAPE '\' OR %[1]s(COALESCE(brands.name, '')) LIKE ? ESCAPE '\' OR %[1]s(COALESCE(categories.name, '')) LIKE ? ESCAPE '\')`,
				lower,
			),
			like, like, like,
		)
	}
	if filter.WindowDays > 0 && (filter.Type == nil || *filter.Type == models.AlertTypeExpiry) {
		query = query.Where(
			"(alerts.type = ? OR alerts.vence_en_dias <= ?)",
			models.AlertTypeStockLow, filter.WindowDays*2,
		)
	}
	return query
}

func (a *Alerts) list(ctx context.Context, filter models.AlertFilter) ([]models.AlertView, error) {
	views := []models.AlertView{}
	query := applyAlertFilter(a.joinedAlerts(ctx).Select(alertViewColumns), filter).Order(alertViewOrder)
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	err := query.Scan(&views).Error
	return views, err
}

func (a *Alerts) count(ctx context.Context, filter models.AlertFilter) (int64, int64, error) {
	var total, unread int64
	if err := applyAlertFilter(a.joinedAlerts(ctx), filter).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := applyAlertFilter(a.joinedAlerts(ctx), filter).Where("alerts.leida = ?", false).Count(&unread).Error; err != nil {
		return 0, 0, err
	}
	return total, unread, nil
}

func (a *Alerts) get(ctx context.Context, id uint) (*models.AlertView, error) {
	views, err := a.viewsByIDs(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 || !views[0].IsActive() {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

func (a *Alerts) markRead(ctx context.Context, id uint) (*models.AlertView, bool, error) {
	var view *models.AlertView
	var changed bool

	err := a.transaction(ctx, func(ctx context.Context) error {
		current, err := a.get(ctx, id)
		if err != nil {
			return err
		}
		if current.Leida {
			view = current
			return nil
		}

		result := a.conn(ctx).Model(&models.Alert{}).
			Where("id = ? AND resolved_at IS NULL AND leida = ?", id, false).
			Update("leida", true)
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected > 0

		view, err = a.get(ctx, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return view, changed, nil
}

func (a *Alerts) markAllRead(ctx context.Context, alertType *models.AlertType) (int64, error) {
	query := a.conn(ctx).Model(&models.Alert{}).Where("resolved_at IS NULL AND leida = ?", false)
	if alertType != nil {
		query = query.Where("type = ?", *alertType)
	}
	result := query.Update("leida", true)
	return result.RowsAffected, result.Error
}

// deleteForProduct hard-deletes every alert of a product, active or not. It is
// only meant for collaborators removing the product itself.
func (a *Alerts) deleteForProduct(ctx context.Context, productID uint) (int64, error) {
	result := a.conn(ctx).Where("product_id = ?", productID).Delete(&models.Alert{})
	return result.RowsAffected, result.Error
}

type IStoreImpl struct {
	alerts *Alerts
}

func (is *IStoreImpl) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return is.alerts.transaction(ctx, fn)
}

func (is *IStoreImpl) ListActive(ctx context.Context, alertType models.AlertType) ([]models.Alert, error) {
	return is.alerts.listActive(ctx, alertType)
}

func (is *IStoreImpl) UpsertActive(ctx context.Context, alert *models.Alert) (bool, error) {
	return is.alerts.upsertActive(ctx, alert)
}

func (is *IStoreImpl) ApplyBatch(ctx context.Context, batch models.AlertBatch) (*models.SyncReport, error) {
	return is.alerts.applyBatch(ctx, batch)
}

func (is *IStoreImpl) List(ctx context.Context, filter models.AlertFilter) ([]models.AlertView, error) {
	return is.alerts.list(ctx, filter)
}

func (is *IStoreImpl) Count(ctx context.Context, filter models.AlertFilter) (int64, int64, error) {
	return is.alerts.count(ctx, filter)
}

func (is *IStoreImpl) Get(ctx context.Context, id uint) (*models.AlertView, error) {
	return is.alerts.get(ctx, id)
}

func (is *IStoreImpl) MarkRead(ctx context.Context, id uint) (*models.AlertView, bool, error) {
	return is.alerts.markRead(ctx, id)
}

func (is *IStoreImpl) MarkAllRead(ctx context.Context, alertType *models.AlertType) (int64, error) {
	return is.alerts.markAllRead(ctx, alertType)
}

func (is *IStoreImpl) DeleteForProduct(ctx context.Context, productID uint) (int64, error) {
	return is.alerts.deleteForProduct(ctx, productID)
}

func (a *Alerts) GetIStore() IStore {
	return &IStoreImpl{alerts: a}
}
