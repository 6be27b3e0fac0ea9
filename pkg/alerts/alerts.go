package alerts

//go:generate mockgen -source=alerts.go -destination=mocks/mock_alerts.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/db"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

const DefaultWindowDays = 30

var (
	ErrNotFound        = errors.New("alert not found")
	ErrReconcile       = errors.New("alert reconciliation failed")
	ErrInvalidType     = errors.New("invalid alert type")
	ErrInvalidSeverity = errors.New("invalid alert severity")
	ErrInvalidParams   = errors.New("invalid query params")
)

// IInventory is the read-only view of the inventory collaborators.
type IInventory interface {
	ListProducts(ctx context.Context) ([]models.ProductSnapshot, error)
	ListLotsExpiringBefore(ctx context.Context, before time.Time) ([]models.LotSnapshot, error)
}

type IStore interface {
	// Transaction runs fn with a ctx carrying one database transaction. Store
	// calls made with that ctx join it; nested calls reuse it.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	ListActive(ctx context.Context, alertType models.AlertType) ([]models.Alert, error)
	UpsertActive(ctx context.Context, alert *models.Alert) (bool, error)
	ApplyBatch(ctx context.Context, batch models.AlertBatch) (*models.SyncReport, error)
	List(ctx context.Context, filter models.AlertFilter) ([]models.AlertView, error)
	Count(ctx context.Context, filter models.AlertFilter) (int64, int64, error)
	Get(ctx context.Context, id uint) (*models.AlertView, error)
	MarkRead(ctx context.Context, id uint) (*models.AlertView, bool, error)
	MarkAllRead(ctx context.Context, alertType *models.AlertType) (int64, error)
	DeleteForProduct(ctx context.Context, productID uint) (int64, error)
}

type IReconciler interface {
	SyncAllAlerts(ctx context.Context, opts models.SyncOptions) (*models.SyncReport, error)
	NotifyInventoryChanged(ctx context.Context) error
}

type IQuery interface {
	GetAlerts(ctx context.Context, params models.QueryParams) (*models.AlertPage, error)
	GetStockAlerts(ctx context.Context, params models.QueryParams) (*models.AlertPage, error)
	GetExpiryAlerts(ctx context.Context, params models.QueryParams) (*models.AlertPage, error)
	MarkAsRead(ctx context.Context, id uint) (*models.AlertView, error)
	MarkAllAsRead(ctx context.Context, alertType string) (int64, error)
}

type Alerts struct {
	Db         db.DB
	Inventory  IInventory
	Store      IStore
	Reconciler IReconciler
	Query      IQuery
	Bus        *events.Bus
	Clock      common.Clock
	WindowDays int
}

type ServiceOpts struct {
	Inventory  IInventory
	Store      IStore
	Reconciler IReconciler
	Query      IQuery
}

func (a *Alerts) WithServices(opts ServiceOpts) *Alerts {
	if opts.Inventory != nil {
		a.Inventory = opts.Inventory
	}
	if opts.Store != nil {
		a.Store = opts.Store
	}
	if opts.Reconciler != nil {
		a.Reconciler = opts.Reconciler
	}
	if opts.Query != nil {
		a.Query = opts.Query
	}
	return a
}

// WithDefaultServices wires every service to its database-backed
// implementation.
func (a *Alerts) WithDefaultServices() *Alerts {
	return a.WithServices(ServiceOpts{
		Inventory:  a.GetIInventory(),
		Store:      a.GetIStore(),
		Reconciler: a.GetIReconciler(),
		Query:      a.GetIQuery(),
	})
}

func (a *Alerts) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock.Now()
}

func (a *Alerts) windowDays() int {
	if a.WindowDays <= 0 {
		return DefaultWindowDays
	}
	return a.WindowDays
}

func (a *Alerts) publish(eventType string, payload any) {
	if a.Bus == nil {
		return
	}
	a.Bus.Publish(events.NewEvent(eventType, payload))
}
