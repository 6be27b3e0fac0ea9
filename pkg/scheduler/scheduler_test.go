package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/inventory-alert-service/pkg/alerts/mocks"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func waitFor(t *testing.T, ch <-chan models.SyncSource) models.SyncSource {
	t.Helper()
	select {
	case source := <-ch:
		return source
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a reconciliation pass")
	}
	return ""
}

func TestNextRunAt(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before scan hour", time.Date(2025, 3, 1, 1, 30, 0, 0, loc), time.Date(2025, 3, 1, 2, 0, 0, 0, loc)},
		{"exactly at scan hour", time.Date(2025, 3, 1, 2, 0, 0, 0, loc), time.Date(2025, 3, 2, 2, 0, 0, 0, loc)},
		{"after scan hour", time.Date(2025, 3, 1, 14, 0, 0, 0, loc), time.Date(2025, 3, 2, 2, 0, 0, 0, loc)},
		{"end of month", time.Date(2025, 2, 28, 23, 0, 0, 0, loc), time.Date(2025, 3, 1, 2, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(NextRunAt(tt.now, 2)), "got %v", NextRunAt(tt.now, 2))
		})
	}
}

func TestFirstDelay(t *testing.T) {
	s := NewScheduler(nil, time.Hour, 2)
	s.Clock = fixedClock{now: time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC)}
	assert.Equal(t, time.Hour, s.firstDelay())

	s.ScanHour = -1
	s.Interval = 5 * time.Minute
	assert.Equal(t, 5*time.Minute, s.firstDelay())
}

func TestTriggerRunsEmittingPass(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := make(chan models.SyncSource, 4)
	reconciler := mocks.NewMockIReconciler(ctrl)
	reconciler.EXPECT().
		SyncAllAlerts(gomock.Any(), models.SyncOptions{Source: models.SyncSourceInventory, Emit: true}).
		DoAndReturn(func(ctx context.Context, opts models.SyncOptions) (*models.SyncReport, error) {
			calls <- opts.Source
			return &models.SyncReport{}, nil
		})

	s := NewScheduler(reconciler, time.Hour, -1)
	s.Start(context.Background())
	defer s.Stop()

	assert.True(t, s.Trigger(models.SyncSourceInventory))
	assert.Equal(t, models.SyncSourceInventory, waitFor(t, calls))
}

func TestTriggersCoalesceWhileBusy(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan models.SyncSource, 4)
	release := make(chan struct{})
	var count atomic.Int32

	reconciler := mocks.NewMockIReconciler(ctrl)
	reconciler.EXPECT().
		SyncAllAlerts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts models.SyncOptions) (*models.SyncReport, error) {
			count.Add(1)
			started <- opts.Source
			<-release
			return &models.SyncReport{}, nil
		}).
		Times(2)

	s := NewScheduler(reconciler, time.Hour, -1)
	s.Start(context.Background())

	require.True(t, s.Trigger(models.SyncSourceManual))
	waitFor(t, started)

	queued := 0
	for range 5 {
		if s.Trigger(models.SyncSourceInventory) {
			queued++
		}
	}
	assert.Equal(t, 1, queued)

	release <- struct{}{}
	assert.Equal(t, models.SyncSourceInventory, waitFor(t, started))
	release <- struct{}{}

	s.Stop()
	assert.Equal(t, int32(2), count.Load())
}

func TestNextDelayFollowsLocalScanHour(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name     string
		interval time.Duration
		scanHour int
		now      time.Time
		want     time.Duration
	}{
		{"daily across fall back", 24 * time.Hour, 2, time.Date(2025, 11, 1, 2, 0, 0, 0, newYork), 25 * time.Hour},
		{"daily on a plain day", 24 * time.Hour, 2, time.Date(2025, 10, 20, 2, 0, 5, 0, newYork), 24*time.Hour - 5*time.Second},
		{"every two days", 48 * time.Hour, 2, time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC), 45 * time.Hour},
		{"sub-daily interval", 6 * time.Hour, 2, time.Date(2025, 11, 1, 2, 0, 0, 0, newYork), 6 * time.Hour},
		{"fractional days", 36 * time.Hour, 2, time.Date(2025, 11, 1, 2, 0, 0, 0, newYork), 36 * time.Hour},
		{"alignment disabled", 24 * time.Hour, -1, time.Date(2025, 11, 1, 2, 0, 0, 0, newYork), 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(nil, tt.interval, tt.scanHour)
			s.Clock = fixedClock{now: tt.now}
			assert.Equal(t, tt.want, s.nextDelay())
		})
	}
}

func TestTimerRunsCronPasses(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := make(chan models.SyncSource, 16)
	reconciler := mocks.NewMockIReconciler(ctrl)
	reconciler.EXPECT().
		SyncAllAlerts(gomock.Any(), models.SyncOptions{Source: models.SyncSourceCron, Emit: true}).
		DoAndReturn(func(ctx context.Context, opts models.SyncOptions) (*models.SyncReport, error) {
			select {
			case calls <- opts.Source:
			default:
			}
			return &models.SyncReport{}, nil
		}).
		MinTimes(2)

	s := NewScheduler(reconciler, 20*time.Millisecond, -1)
	s.Start(context.Background())

	assert.Equal(t, models.SyncSourceCron, waitFor(t, calls))
	assert.Equal(t, models.SyncSourceCron, waitFor(t, calls))

	s.Stop()
}

func TestFailuresAreLoggedAndSwallowed(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := make(chan models.SyncSource, 4)
	reconciler := mocks.NewMockIReconciler(ctrl)
	reconciler.EXPECT().
		SyncAllAlerts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts models.SyncOptions) (*models.SyncReport, error) {
			calls <- opts.Source
			return nil, errors.New("database is locked")
		}).
		Times(2)

	s := NewScheduler(reconciler, time.Hour, -1)
	s.Start(context.Background())

	s.Trigger(models.SyncSourceManual)
	waitFor(t, calls)
	s.Trigger(models.SyncSourceManual)
	waitFor(t, calls)

	s.Stop()

	assert.Contains(t, buf.String(), `"msg":"Scheduled alerts sync failed"`)
	assert.Contains(t, buf.String(), `"logger":"scheduler"`)
	assert.Contains(t, buf.String(), `"error":"database is locked"`)
}

func TestStopIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	s := NewScheduler(nil, time.Hour, 2)
	s.Stop()

	s.Start(context.Background())
	s.Stop()
	s.Stop()
}
