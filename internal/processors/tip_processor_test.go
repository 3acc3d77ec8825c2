package processors_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"driver-tips/internal/models"
	"driver-tips/internal/processors"
	"driver-tips/internal/shared/svcerrors"
	"driver-tips/internal/stores"
	storemocks "driver-tips/internal/stores/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func tipEvent(amount string) *models.TipEvent {
	return &models.TipEvent{
		DriverID:  "d1",
		Amount:    decimal.RequireFromString(amount),
		EventTime: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestApplyTip_IncrementsBothBucketsWithSameNow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockAggregateStore(ctrl)
	processor := processors.NewTipProcessor(aggregateStore)

	var mu sync.Mutex
	seen := map[string]time.Time{}

	aggregateStore.EXPECT().
		Increment(gomock.Any(), "d1", gomock.Any(), decimal.RequireFromString("5.50"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, key string, _ decimal.Decimal, now time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			seen[key] = now
			return nil
		}).
		Times(2)

	err := processor.ApplyTip(context.Background(), tipEvent("5.50"))
	require.NoError(t, err)

	require.Contains(t, seen, "DAY#2024-01-15")
	require.Contains(t, seen, "WEEK#2024-W03")
	assert.Equal(t, seen["DAY#2024-01-15"], seen["WEEK#2024-W03"], "both increments must share one now timestamp")
}

func TestApplyTip_FailsWhenOneIncrementFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		failKey      string
		cause        error
		wantCode     string
		wantCategory string
	}{
		{
			name:         "day bucket unavailable",
			failKey:      "DAY#2024-01-15",
			cause:        stores.ErrStoreUnavailable,
			wantCode:     "TIP_9001",
			wantCategory: "unavailable",
		},
		{
			name:         "week bucket throttled",
			failKey:      "WEEK#2024-W03",
			cause:        stores.ErrStoreThrottled,
			wantCode:     "TIP_9002",
			wantCategory: "resource_exhausted",
		},
		{
			name:         "week bucket unknown failure",
			failKey:      "WEEK#2024-W03",
			cause:        errors.New("wire torn"),
			wantCode:     "TIP_9000",
			wantCategory: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			aggregateStore := storemocks.NewMockAggregateStore(ctrl)
			processor := processors.NewTipProcessor(aggregateStore)

			aggregateStore.EXPECT().
				Increment(gomock.Any(), "d1", gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _, key string, _ decimal.Decimal, _ time.Time) error {
					if key == tt.failKey {
						return tt.cause
					}
					return nil
				}).
				Times(2)

			err := processor.ApplyTip(context.Background(), tipEvent("5.50"))
			require.Error(t, err)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, tt.wantCategory, svcErr.Category)
		})
	}
}

func TestApplyTip_ReadReflectsWrite(t *testing.T) {
	t.Parallel()

	store := stores.NewMemoryAggregateStore()
	processor := processors.NewTipProcessor(store)
	ctx := context.Background()

	require.NoError(t, processor.ApplyTip(ctx, tipEvent("5.50")))

	day, err := store.Get(ctx, "d1", "DAY#2024-01-15")
	require.NoError(t, err)
	assert.True(t, day.TotalAmount.Equal(decimal.RequireFromString("5.50")), "got %s", day.TotalAmount)

	week, err := store.Get(ctx, "d1", "WEEK#2024-W03")
	require.NoError(t, err)
	assert.True(t, week.TotalAmount.Equal(decimal.RequireFromString("5.50")), "got %s", week.TotalAmount)
}

func TestApplyTip_DuplicateDelivery_NoDeduplication(t *testing.T) {
	t.Parallel()

	store := stores.NewMemoryAggregateStore()
	processor := processors.NewTipProcessor(store)
	ctx := context.Background()

	require.NoError(t, processor.ApplyTip(ctx, tipEvent("5.50")))
	require.NoError(t, processor.ApplyTip(ctx, tipEvent("5.50")))

	day, err := store.Get(ctx, "d1", "DAY#2024-01-15")
	require.NoError(t, err)
	assert.True(t, day.TotalAmount.Equal(decimal.RequireFromString("11.00")), "got %s", day.TotalAmount)

	week, err := store.Get(ctx, "d1", "WEEK#2024-W03")
	require.NoError(t, err)
	assert.True(t, week.TotalAmount.Equal(decimal.RequireFromString("11.00")), "got %s", week.TotalAmount)
}
