package alerts

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts/mocks"
	"liyu1981.xyz/inventory-alert-service/pkg/db"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

var testNow = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func GetMockAlertsWithMemorySqliteDialector(t *testing.T, useMockInventory, useMockStore, useMockReconciler bool) (
	*gomock.Controller,
	*Alerts,
	*mocks.MockIInventory,
	*mocks.MockIStore,
	*mocks.MockIReconciler,
) {
	ctrl := gomock.NewController(t)

	mockIInventory := mocks.NewMockIInventory(ctrl)
	mockIStore := mocks.NewMockIStore(ctrl)
	mockIReconciler := mocks.NewMockIReconciler(ctrl)

	dbInstance, err := db.Open(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)

	alertsObj := &Alerts{
		Db:         *dbInstance,
		Bus:        events.NewBus(),
		Clock:      &fakeClock{now: testNow},
		WindowDays: DefaultWindowDays,
	}
	t.Cleanup(alertsObj.Bus.Close)

	inventoryService := alertsObj.GetIInventory()
	if useMockInventory {
		inventoryService = mockIInventory
	}

	storeService := alertsObj.GetIStore()
	if useMockStore {
		storeService = mockIStore
	}

	reconcilerService := alertsObj.GetIReconciler()
	if useMockReconciler {
		reconcilerService = mockIReconciler
	}

	alertsObj.WithServices(ServiceOpts{
		Inventory:  inventoryService,
		Store:      storeService,
		Reconciler: reconcilerService,
		Query:      alertsObj.GetIQuery(),
	})

	return ctrl, alertsObj, mockIInventory, mockIStore, mockIReconciler
}

func clockOf(a *Alerts) *fakeClock {
	return a.Clock.(*fakeClock)
}

func seedProduct(t *testing.T, a *Alerts, name string, stockActual, stockMinimo int) models.Product {
	t.Helper()
	product := models.Product{Name: name, StockActual: stockActual, StockMinimo: stockMinimo}
	require.NoError(t, a.Db.Conn.Create(&product).Error)
	return product
}

func seedLot(t *testing.T, a *Alerts, productID uint, quantity int, expiresAt time.Time) models.Lot {
	t.Helper()
	lot := models.Lot{ProductID: productID, Quantity: quantity, ExpiresAt: expiresAt}
	require.NoError(t, a.Db.Conn.Omit(clause.Associations).Create(&lot).Error)
	return lot
}

func setStock(t *testing.T, a *Alerts, productID uint, stockActual int) {
	t.Helper()
	require.NoError(t, a.Db.Conn.Model(&models.Product{}).Where("id = ?", productID).Update("stock_actual", stockActual).Error)
}

func activeAlerts(t *testing.T, a *Alerts) []models.Alert {
	t.Helper()
	var alerts []models.Alert
	require.NoError(t, a.Db.Conn.Where("resolved_at IS NULL").Order("id").Find(&alerts).Error)
	return alerts
}

func loadAlert(t *testing.T, a *Alerts, id uint) models.Alert {
	t.Helper()
	var alert models.Alert
	require.NoError(t, a.Db.Conn.First(&alert, id).Error)
	return alert
}

func drain(sub *events.Subscription) []events.Event {
	var received []events.Event
	for {
		select {
		case ev := <-sub.C:
			received = append(received, ev)
		default:
			return received
		}
	}
}

func manualSync() models.SyncOptions {
	return models.SyncOptions{Source: models.SyncSourceManual, Emit: true}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
