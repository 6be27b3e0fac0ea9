package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeverityWeight(t *testing.T) {
	assert.Equal(t, 1, SeverityInfo.Weight())
	assert.Equal(t, 2, SeverityWarning.Weight())
	assert.Equal(t, 3, SeverityCritical.Weight())
	assert.Equal(t, 0, AlertSeverity("bogus").Weight())

	assert.Less(t, SeverityInfo.Weight(), SeverityWarning.Weight())
	assert.Less(t, SeverityWarning.Weight(), SeverityCritical.Weight())
}

func TestAlertBatchMerge(t *testing.T) {
	batch := AlertBatch{}
	assert.True(t, batch.Empty())

	batch.Merge(AlertBatch{Create: []Alert{{Type: AlertTypeStockLow}}, Resolve: []uint{1}})
	batch.Merge(AlertBatch{Update: []AlertChange{{ID: 2}}, Resolve: []uint{3}})

	assert.False(t, batch.Empty())
	assert.Len(t, batch.Create, 1)
	assert.Len(t, batch.Update, 1)
	assert.Equal(t, []uint{1, 3}, batch.Resolve)
}

func TestAlertIsActive(t *testing.T) {
	alert := Alert{}
	assert.True(t, alert.IsActive())

	now := time.Now()
	alert.ResolvedAt = &now
	assert.False(t, alert.IsActive())
}
