package alerts

import (
	"fmt"
	"math"
	"time"

	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

type StockVerdict struct {
	Severity    models.AlertSeverity
	Message     string
	StockActual int
	StockMinimo int
}

type ExpiryVerdict struct {
	Severity  models.AlertSeverity
	Message   string
	DaysUntil int
}

// EvaluateStock returns nil when stock is above its minimum.
func EvaluateStock(stockActual, stockMinimo int) *StockVerdict {
	verdict := &StockVerdict{StockActual: stockActual, StockMinimo: stockMinimo}

	switch {
	case stockActual <= 0:
		verdict.Severity = models.SeverityCritical
		verdict.Message = "no stock available"
	case stockActual <= stockMinimo:
		verdict.Severity = models.SeverityWarning
		verdict.Message = fmt.Sprintf("low stock (%d/%d)", stockActual, stockMinimo)
	default:
		return nil
	}
	return verdict
}

// DaysUntil rounds the remaining time up to whole days. Negative means the
// date is already past.
func DaysUntil(fechaVenc, now time.Time) int {
	return int(math.Ceil(float64(fechaVenc.Sub(now)) / float64(24*time.Hour)))
}

// EvaluateExpiry returns nil for empty lots, lots beyond twice the window and
// inputs it cannot judge (zero date, non-positive window).
func EvaluateExpiry(fechaVenc time.Time, cantidad, windowDias int, now time.Time) *ExpiryVerdict {
	if fechaVenc.IsZero() || windowDias <= 0 || cantidad <= 0 {
		return nil
	}

	days := DaysUntil(fechaVenc, now)
	if days > windowDias*2 {
		return nil
	}

	verdict := &ExpiryVerdict{DaysUntil: days, Message: fmt.Sprintf("expires in %d days", days)}

	switch {
	case days <= 3:
		verdict.Severity = models.SeverityCritical
		if days < 0 {
			verdict.Message = fmt.Sprintf("expired %d days ago", -days)
		}
	case days <= windowDias:
		verdict.Severity = models.SeverityWarning
	default:
		verdict.Severity = models.SeverityInfo
	}
	return verdict
}
