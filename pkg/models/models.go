package models

import "time"

type AlertType string

const (
	AlertTypeStockLow AlertType = "STOCK_LOW"
	AlertTypeExpiry   AlertType = "EXPIRY"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "INFO"
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// Weight ranks severities for escalation checks. Unknown values rank below INFO.
func (s AlertSeverity) Weight() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"nombre"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"nombre"`
}

type Supplier struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"nombre"`
	Contact *string `json:"contacto"`
	Phone   *string `json:"telefono"`
	Email   *string `json:"email"`
}

// Product and Lot are owned by the inventory collaborators; the alert engine
// only reads them.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"index;not null" json:"nombre"`
	StockActual int    `gorm:"not null;default:0" json:"stockActual"`
	StockMinimo int    `gorm:"not null;default:0" json:"stockMinimo"`
	BrandID     *uint  `gorm:"index" json:"marcaId"`
	CategoryID  *uint  `gorm:"index" json:"categoriaId"`
	SupplierID  *uint  `gorm:"index" json:"proveedorId"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Brand    *Brand    `json:"-"`
	Category *Category `json:"-"`
	Supplier *Supplier `json:"-"`
}

type Lot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"productoId"`
	Code      *string   `json:"codigo"`
	Quantity  int       `gorm:"not null;default:0" json:"cantidad"`
	ExpiresAt time.Time `gorm:"index" json:"fechaVenc"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Alert is the only entity written by the reconciliation engine. Active rows
// (ResolvedAt == nil) are unique per product for STOCK_LOW and per lot for
// EXPIRY; the partial unique indexes are created in pkg/db.
type Alert struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Type        AlertType     `gorm:"type:varchar(20);not null;index;check:type IN ('STOCK_LOW','EXPIRY')" json:"type"`
	Severity    AlertSeverity `gorm:"type:varchar(20);not null;check:severity IN ('INFO','WARNING','CRITICAL')" json:"severity"`
	ProductID   uint          `gorm:"index;not null" json:"productoId"`
	LotID       *uint         `gorm:"index" json:"loteId"`
	Mensaje     string        `gorm:"not null" json:"mensaje"`
	StockActual *int          `json:"stockActual"`
	StockMinimo *int          `json:"stockMinimo"`
	VenceEnDias *int          `json:"venceEnDias"`
	WindowDias  int           `gorm:"not null" json:"windowDias"`
	Leida       bool          `gorm:"not null;default:false" json:"leida"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	ResolvedAt  *time.Time    `gorm:"index" json:"resolvedAt"`
}

func (a *Alert) IsActive() bool {
	return a.ResolvedAt == nil
}
