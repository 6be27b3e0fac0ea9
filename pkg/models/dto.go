package models

import "time"

// AlertView is the flat read-side row: an alert joined with the display data
// of its product, brand, category, supplier and lot.
type AlertView struct {
	Alert

	ProductName        *string    `json:"productoNombre"`
	ProductStockActual *int       `json:"productoStockActual"`
	ProductStockMinimo *int       `json:"productoStockMinimo"`
	BrandName          *string    `json:"marca"`
	CategoryName       *string    `json:"categoria"`
	SupplierID         *uint      `json:"proveedorId"`
	SupplierName       *string    `json:"proveedorNombre"`
	SupplierContact    *string    `json:"proveedorContacto"`
	SupplierPhone      *string    `json:"proveedorTelefono"`
	SupplierEmail      *string    `json:"proveedorEmail"`
	LotCode            *string    `json:"loteCodigo"`
	LotQuantity        *int       `json:"loteCantidad"`
	LotExpiresAt       *time.Time `json:"loteFechaVenc"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	Unread     int64 `json:"unread"`
}

type AlertPage struct {
	Data []AlertView `json:"data"`
	Meta PageMeta    `json:"meta"`
}

// QueryParams is the user-facing filter. Type is one of all|stock|expiry and
// Severity one of info|warning|critical (case-insensitive).
type QueryParams struct {
	Type       string `json:"type" zog:"type"`
	Severity   string `json:"severity" zog:"severity"`
	WindowDays int    `json:"windowDays" zog:"windowDays"`
	UnreadOnly bool   `json:"unreadOnly" zog:"unreadOnly"`
	Search     string `json:"search" zog:"search"`
	Page       int    `json:"page" zog:"page"`
	PageSize   int    `json:"pageSize" zog:"pageSize"`
}

// AlertFilter is the normalized store-level form of QueryParams.
type AlertFilter struct {
	Type       *AlertType
	Severity   *AlertSeverity
	WindowDays int
	UnreadOnly bool
	Search     string
	Offset     int
	Limit      int
}

type SyncSource string

const (
	SyncSourceManual    SyncSource = "manual"
	SyncSourceCron      SyncSource = "cron"
	SyncSourceInventory SyncSource = "inventory"
	SyncSourceQuery     SyncSource = "query"
)

type SyncOptions struct {
	Source     SyncSource
	WindowDays int
	Emit       bool
}

// AlertChange is a staged mutation of an active alert's mutable fields.
type AlertChange struct {
	ID          uint
	Severity    AlertSeverity
	Mensaje     string
	StockActual *int
	StockMinimo *int
	VenceEnDias *int
	Leida       bool
}

// AlertBatch is everything one reconciliation pass wants to write.
type AlertBatch struct {
	Create     []Alert
	Update     []AlertChange
	Resolve    []uint
	ResolvedAt time.Time
}

func (b *AlertBatch) Empty() bool {
	return len(b.Create) == 0 && len(b.Update) == 0 && len(b.Resolve) == 0
}

func (b *AlertBatch) Merge(other AlertBatch) {
	b.Create = append(b.Create, other.Create...)
	b.Update = append(b.Update, other.Update...)
	b.Resolve = append(b.Resolve, other.Resolve...)
}

type SyncReport struct {
	Created  []AlertView `json:"created"`
	Updated  []AlertView `json:"updated"`
	Resolved []uint      `json:"resolved"`
}

func (r *SyncReport) Empty() bool {
	return len(r.Created) == 0 && len(r.Updated) == 0 && len(r.Resolved) == 0
}

// ProductSnapshot is what the inventory provider exposes per product.
type ProductSnapshot struct {
	ID          uint   `json:"id"`
	Name        string `json:"nombre"`
	StockActual int    `json:"stockActual"`
	StockMinimo int    `json:"stockMinimo"`
}

// LotSnapshot is a lot joined with its product's stock numbers.
type LotSnapshot struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"productoId"`
	Quantity  int             `json:"cantidad"`
	ExpiresAt time.Time       `json:"fechaVenc"`
	Product   ProductSnapshot `json:"producto"`
}
