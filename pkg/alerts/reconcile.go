package alerts

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

func (a *Alerts) syncAllAlerts(ctx context.Context, opts models.SyncOptions) (*models.SyncReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAlertsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReconcile),
	)

	window := opts.WindowDays
	if window <= 0 {
		window = a.windowDays()
	}
	source := opts.Source
	if source == "" {
		source = models.SyncSourceManual
	}
	now := a.now()

	var batch models.AlertBatch
	var report *models.SyncReport

	err := a.Store.Transaction(ctx, func(ctx context.Context) error {
		products, err := a.Inventory.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		lots, err := a.Inventory.ListLotsExpiringBefore(ctx, now.AddDate(0, 0, window*2))
		if err != nil {
			return fmt.Errorf("list lots: %w", err)
		}

		activeStock, err := a.Store.ListActive(ctx, models.AlertTypeStockLow)
		if err != nil {
			return fmt.Errorf("list active stock alerts: %w", err)
		}
		activeExpiry, err := a.Store.ListActive(ctx, models.AlertTypeExpiry)
		if err != nil {
			return fmt.Errorf("list active expiry alerts: %w", err)
		}

		batch = diffStock(products, activeStock, window)
		batch.Merge(diffExpiry(lots, activeExpiry, window, now))
		batch.ResolvedAt = now

		if batch.Empty() {
			report = &models.SyncReport{Created: []models.AlertView{}, Updated: []models.AlertView{}, Resolved: []uint{}}
			return nil
		}

		report, err = a.Store.ApplyBatch(ctx, batch)
		return err
	})
	if err != nil {
		logger.Error("Alerts sync failed",
			zap.String("source", string(source)),
			zap.Int("window_days", window),
			zap.Int("would_create", len(batch.Create)),
			zap.Int("would_update", len(batch.Update)),
			zap.Int("would_resolve", len(batch.Resolve)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrReconcile, err)
	}

	logger.Info("Alerts synchronized",
		zap.String("source", string(source)),
		zap.Int("window_days", window),
		zap.Int("created", len(report.Created)),
		zap.Int("updated", len(report.Updated)),
		zap.Int("resolved", len(report.Resolved)),
	)

	if opts.Emit {
		a.emitChanges(report)
	}
	return report, nil
}

func (a *Alerts) emitChanges(report *models.SyncReport) {
	for _, view := range report.Created {
		a.publish(events.EventAlertCreated, view)
	}
	for _, view := range report.Updated {
		a.publish(events.EventAlertUpdated, view)
	}
	for _, id := range report.Resolved {
		a.publish(events.EventAlertResolved, events.ResolvedPayload{ID: id})
	}
}

// indexActive keeps the newest active alert per key. Older duplicates are
// returned for resolution.
func indexActive(active []models.Alert, keyFn func(models.Alert) uint) (map[uint]models.Alert, []uint) {
	byKey := common.KeyBy(active, keyFn)

	var duplicates []uint
	for _, alert := range active {
		if byKey[keyFn(alert)].ID != alert.ID {
			duplicates = append(duplicates, alert.ID)
		}
	}
	return byKey, duplicates
}

// nextLeida clears the read flag only when severity escalates.
func nextLeida(existing models.Alert, severity models.AlertSeverity) bool {
	if severity.Weight() > existing.Severity.Weight() {
		return false
	}
	return existing.Leida
}

func diffStock(products []models.ProductSnapshot, active []models.Alert, window int) models.AlertBatch {
	var batch models.AlertBatch

	byProduct, duplicates := indexActive(active, func(alert models.Alert) uint { return alert.ProductID })
	batch.Resolve = append(batch.Resolve, duplicates...)

	seen := make(map[uint]bool, len(products))
	for _, product := range products {
		seen[product.ID] = true

		verdict := EvaluateStock(product.StockActual, product.StockMinimo)
		existing, found := byProduct[product.ID]

		switch {
		case verdict == nil:
			if found {
				batch.Resolve = append(batch.Resolve, existing.ID)
			}
		case !found:
			batch.Create = append(batch.Create, models.Alert{
				Type:        models.AlertTypeStockLow,
				Severity:    verdict.Severity,
				ProductID:   product.ID,
				Mensaje:     verdict.Message,
				StockActual: intPtr(verdict.StockActual),
				StockMinimo: intPtr(verdict.StockMinimo),
				WindowDias:  window,
			})
		case existing.Severity != verdict.Severity ||
			existing.Mensaje != verdict.Message ||
			!intPtrEquals(existing.StockActual, verdict.StockActual) ||
			!intPtrEquals(existing.StockMinimo, verdict.StockMinimo):
			batch.Update = append(batch.Update, models.AlertChange{
				ID:          existing.ID,
				Severity:    verdict.Severity,
				Mensaje:     verdict.Message,
				StockActual: intPtr(verdict.StockActual),
				StockMinimo: intPtr(verdict.StockMinimo),
				VenceEnDias: existing.VenceEnDias,
				Leida:       nextLeida(existing, verdict.Severity),
			})
		}
	}

	for _, alert := range active {
		if !seen[alert.ProductID] && byProduct[alert.ProductID].ID == alert.ID {
			batch.Resolve = append(batch.Resolve, alert.ID)
		}
	}
	return batch
}

func diffExpiry(lots []models.LotSnapshot, active []models.Alert, window int, now time.Time) models.AlertBatch {
	var batch models.AlertBatch

	var keyed []models.Alert
	for _, alert := range active {
		if alert.LotID == nil {
			batch.Resolve = append(batch.Resolve, alert.ID)
			continue
		}
		keyed = append(keyed, alert)
	}

	byLot, duplicates := indexActive(keyed, func(alert models.Alert) uint { return *alert.LotID })
	batch.Resolve = append(batch.Resolve, duplicates...)

	seen := make(map[uint]bool, len(lots))
	for _, lot := range lots {
		seen[lot.ID] = true

		verdict := EvaluateExpiry(lot.ExpiresAt, lot.Quantity, window, now)
		existing, found := byLot[lot.ID]

		switch {
		case verdict == nil:
			if found {
				batch.Resolve = append(batch.Resolve, existing.ID)
			}
		case !found:
			lotID := lot.ID
			batch.Create = append(batch.Create, models.Alert{
				Type:        models.AlertTypeExpiry,
				Severity:    verdict.Severity,
				ProductID:   lot.ProductID,
				LotID:       &lotID,
				Mensaje:     verdict.Message,
				StockActual: intPtr(lot.Product.StockActual),
				StockMinimo: intPtr(lot.Product.StockMinimo),
				VenceEnDias: intPtr(verdict.DaysUntil),
				WindowDias:  window,
			})
		case existing.Severity != verdict.Severity ||
			existing.Mensaje != verdict.Message ||
			!intPtrEquals(existing.VenceEnDias, verdict.DaysUntil) ||
			!intPtrEquals(existing.StockActual, lot.Product.StockActual) ||
			!intPtrEquals(existing.StockMinimo, lot.Product.StockMinimo):
			batch.Update = append(batch.Update, models.AlertChange{
				ID:          existing.ID,
				Severity:    verdict.Severity,
				Mensaje:     verdict.Message,
				StockActual: intPtr(lot.Product.StockActual),
				StockMinimo: intPtr(lot.Product.StockMinimo),
				VenceEnDias: intPtr(verdict.DaysUntil),
				Leida:       nextLeida(existing, verdict.Severity),
			})
		}
	}

	for _, alert := range keyed {
		if !seen[*alert.LotID] && byLot[*alert.LotID].ID == alert.ID {
			batch.Resolve = append(batch.Resolve, alert.ID)
		}
	}
	return batch
}

func intPtr(v int) *int {
	return &v
}

func intPtrEquals(p *int, v int) bool {
	return p != nil && *p == v
}

func (a *Alerts) notifyInventoryChanged(ctx context.Context) error {
	_, err := a.syncAllAlerts(ctx, models.SyncOptions{
		Source: models.SyncSourceInventory,
		Emit:   true,
	})
	return err
}

type IReconcilerImpl struct {
	alerts *Alerts
}

func (ir *IReconcilerImpl) SyncAllAlerts(ctx context.Context, opts models.SyncOptions) (*models.SyncReport, error) {
	return ir.alerts.syncAllAlerts(ctx, opts)
}

func (ir *IReconcilerImpl) NotifyInventoryChanged(ctx context.Context) error {
	return ir.alerts.notifyInventoryChanged(ctx)
}

func (a *Alerts) GetIReconciler() IReconciler {
	return &IReconcilerImpl{alerts: a}
}
