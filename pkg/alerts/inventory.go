package alerts

import (
	"context"
	"time"

	"gorm.io/gorm"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

func (a *Alerts) listProducts(ctx context.Context) ([]models.ProductSnapshot, error) {
	var products []models.ProductSnapshot
	err := a.conn(ctx).Model(&models.Product{}).
		Select("id, name, stock_actual, stock_minimo").
		Order("id ASC").
		Scan(&products).Error
	return products, err
}

// sqlite stores times as text carrying the writer's offset, so comparisons go
// through julianday to compare instants.
func expiresAtColumns(conn *gorm.DB) (column, param string) {
	if conn.Dialector.Name() == "sqlite" {
		return "julianday(expires_at)", "julianday(?)"
	}
	return "expires_at", "?"
}

func (a *Alerts) listLotsExpiringBefore(ctx context.Context, before time.Time) ([]models.LotSnapshot, error) {
	conn := a.conn(ctx)
	column, param := expiresAtColumns(conn)

	var lots []models.Lot
	err := conn.
		Preload("Product").
		Where(column+" <= "+param, before.UTC()).
		Order(column + " ASC, id ASC").
		Find(&lots).Error
	if err != nil {
		return nil, err
	}

	return common.Mapper(lots, func(lot models.Lot) models.LotSnapshot {
		return models.LotSnapshot{
			ID:        lot.ID,
			ProductID: lot.ProductID,
			Quantity:  lot.Quantity,
			ExpiresAt: lot.ExpiresAt,
			Product: models.ProductSnapshot{
				ID:          lot.Product.ID,
				Name:        lot.Product.Name,
				StockActual: lot.Product.StockActual,
				StockMinimo: lot.Product.StockMinimo,
			},
		}
	}), nil
}

type IInventoryImpl struct {
	alerts *Alerts
}

func (ii *IInventoryImpl) ListProducts(ctx context.Context) ([]models.ProductSnapshot, error) {
	return ii.alerts.listProducts(ctx)
}

func (ii *IInventoryImpl) ListLotsExpiringBefore(ctx context.Context, before time.Time) ([]models.LotSnapshot, error) {
	return ii.alerts.listLotsExpiringBefore(ctx, before)
}

func (a *Alerts) GetIInventory() IInventory {
	return &IInventoryImpl{alerts: a}
}
