package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

func TestEvaluateStock(t *testing.T) {
	tests := []struct {
		name        string
		stockActual int
		stockMinimo int
		severity    models.AlertSeverity
		message     string
	}{
		{"empty", 0, 10, models.SeverityCritical, "no stock available"},
		{"negative stock from upstream", -4, 10, models.SeverityCritical, "no stock available"},
		{"empty with zero minimum", 0, 0, models.SeverityCritical, "no stock available"},
		{"low", 5, 10, models.SeverityWarning, "low stock (5/10)"},
		{"at minimum", 10, 10, models.SeverityWarning, "low stock (10/10)"},
		{"above minimum", 11, 10, "", ""},
		{"above zero minimum", 1, 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := EvaluateStock(tt.stockActual, tt.stockMinimo)
			if tt.severity == "" {
				assert.Nil(t, verdict)
				return
			}
			require.NotNil(t, verdict)
			assert.Equal(t, tt.severity, verdict.Severity)
			assert.Equal(t, tt.message, verdict.Message)
			assert.Equal(t, tt.stockActual, verdict.StockActual)
			assert.Equal(t, tt.stockMinimo, verdict.StockMinimo)
		})
	}
}

func TestEvaluateStockPartition(t *testing.T) {
	for actual := -3; actual <= 15; actual++ {
		for minimo := 0; minimo <= 12; minimo++ {
			verdict := EvaluateStock(actual, minimo)
			switch {
			case actual <= 0:
				require.NotNil(t, verdict)
				assert.Equal(t, models.SeverityCritical, verdict.Severity)
			case actual <= minimo:
				require.NotNil(t, verdict)
				assert.Equal(t, models.SeverityWarning, verdict.Severity)
			default:
				assert.Nil(t, verdict, "actual=%d minimo=%d", actual, minimo)
			}
		}
	}
}

func TestDaysUntil(t *testing.T) {
	day := 24 * time.Hour

	assert.Equal(t, 10, DaysUntil(testNow.Add(10*day), testNow))
	assert.Equal(t, 1, DaysUntil(testNow.Add(time.Hour), testNow))
	assert.Equal(t, 0, DaysUntil(testNow, testNow))
	assert.Equal(t, 0, DaysUntil(testNow.Add(-time.Hour), testNow))
	assert.Equal(t, -2, DaysUntil(testNow.Add(-2*day), testNow))
	assert.Equal(t, 3, DaysUntil(testNow.Add(2*day+time.Minute), testNow))
}

func TestEvaluateExpiry(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name      string
		expiresIn time.Duration
		quantity  int
		window    int
		severity  models.AlertSeverity
		message   string
		daysUntil int
	}{
		{"expired two days ago", -2 * day, 5, 30, models.SeverityCritical, "expired 2 days ago", -2},
		{"expires today", 0, 5, 30, models.SeverityCritical, "expires in 0 days", 0},
		{"expires in three days", 3 * day, 5, 30, models.SeverityCritical, "expires in 3 days", 3},
		{"expires in four days", 4 * day, 5, 30, models.SeverityWarning, "expires in 4 days", 4},
		{"expires in ten days", 10 * day, 5, 30, models.SeverityWarning, "expires in 10 days", 10},
		{"at window edge", 30 * day, 5, 30, models.SeverityWarning, "expires in 30 days", 30},
		{"beyond window", 31 * day, 5, 30, models.SeverityInfo, "expires in 31 days", 31},
		{"at horizon", 60 * day, 5, 30, models.SeverityInfo, "expires in 60 days", 60},
		{"beyond horizon", 61 * day, 5, 30, "", "", 0},
		{"empty lot", 2 * day, 0, 30, "", "", 0},
		{"negative quantity", 2 * day, -1, 30, "", "", 0},
		{"non positive window", 2 * day, 5, 0, "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := EvaluateExpiry(testNow.Add(tt.expiresIn), tt.quantity, tt.window, testNow)
			if tt.severity == "" {
				assert.Nil(t, verdict)
				return
			}
			require.NotNil(t, verdict)
			assert.Equal(t, tt.severity, verdict.Severity)
			assert.Equal(t, tt.message, verdict.Message)
			assert.Equal(t, tt.daysUntil, verdict.DaysUntil)
		})
	}
}

func TestEvaluateExpiryZeroDate(t *testing.T) {
	assert.Nil(t, EvaluateExpiry(time.Time{}, 5, 30, testNow))
}

func TestEvaluateExpiryPartition(t *testing.T) {
	for _, window := range []int{1, 3, 5, 30, 90} {
		for days := -200; days <= 200; days++ {
			verdict := EvaluateExpiry(testNow.AddDate(0, 0, days), 1, window, testNow)
			switch {
			case days <= 3 && days <= window*2:
				require.NotNil(t, verdict, "days=%d window=%d", days, window)
				assert.Equal(t, models.SeverityCritical, verdict.Severity)
			case days <= window:
				require.NotNil(t, verdict, "days=%d window=%d", days, window)
				assert.Equal(t, models.SeverityWarning, verdict.Severity)
			case days <= window*2:
				require.NotNil(t, verdict, "days=%d window=%d", days, window)
				assert.Equal(t, models.SeverityInfo, verdict.Severity)
			default:
				assert.Nil(t, verdict, "days=%d window=%d", days, window)
			}
		}
	}
}
