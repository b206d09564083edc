package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/mocks"
)

var metricsNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func newMetricsFixture(t *testing.T) (*MetricsService, *mocks.MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewMetricsService(MetricsServiceOptions{
		Backend: backend,
		Now:     func() time.Time { return metricsNow },
	})
	return svc, backend
}

func dashboardUsers() []any {
	return []any{
		map[string]any{"userId": "u-1", "status": true, "isPremium": true, "isEmailVerified": true},
		map[string]any{"userId": "u-2", "status": true, "isPremium": false, "isEmailVerified": false},
		map[string]any{"userId": "u-3", "status": false, "isPremium": false, "isEmailVerified": true},
	}
}

func dashboardOrders() []any {
	return []any{
		map[string]any{
			"id": "o-1", "amountVnd": float64(100000),
			"createdAt": "2024-05-02T10:00:00Z", "paidAt": "2024-05-02T10:05:00Z",
		},
		map[string]any{
			"id": "o-2", "amountVnd": float64(250000),
			"createdAt": "2024-05-15T09:00:00Z", "paidAt": nil,
		},
		map[string]any{
			"id": "o-3", "amountVnd": float64(80000),
			"createdAt": "2024-04-28T08:00:00Z", "paidAt": "2024-04-29T08:00:00Z",
		},
	}
}

func TestSummaryAggregatesAllSources(t *testing.T) {
	svc, backend := newMetricsFixture(t)

	backend.EXPECT().Get(gomock.Any(), "/Auth/Get All User", gomock.Nil()).Return(dashboardUsers(), nil)
	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(dashboardOrders(), nil)
	backend.EXPECT().Get(gomock.Any(), "/PlanPrice", gomock.Nil()).Return([]any{
		map[string]any{"id": "pp-1", "isActive": true},
		map[string]any{"id": "pp-2", "isActive": false},
	}, nil)
	backend.EXPECT().Get(gomock.Any(), "/RoomItem", gomock.Nil()).Return([]any{
		map[string]any{"roomItemId": "ri-1"},
	}, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Users.Total)
	assert.Equal(t, 2, summary.Users.Active)
	assert.Equal(t, 1, summary.Users.Premium)
	assert.Equal(t, 2, summary.Users.Verified)

	assert.Equal(t, 3, summary.Orders.Total)
	assert.Equal(t, 2, summary.Orders.Paid)
	assert.Equal(t, int64(430000), summary.Orders.TotalRevenueVnd)
	assert.Equal(t, 2, summary.Orders.OrdersThisMonth)
	assert.Equal(t, int64(350000), summary.Orders.RevenueThisMonth)

	assert.Equal(t, 2, summary.Subscriptions.Total)
	assert.Equal(t, 1, summary.Subscriptions.Active)
	assert.Equal(t, 1, summary.RoomItems.Total)

	require.Len(t, summary.MonthlyRevenue, 2)
	assert.Equal(t, "2024-04", summary.MonthlyRevenue[0].Month)
	assert.Equal(t, int64(80000), summary.MonthlyRevenue[0].RevenueVnd)
	assert.Equal(t, "2024-05", summary.MonthlyRevenue[1].Month)
	assert.Equal(t, 2, summary.MonthlyRevenue[1].Orders)
}

func TestSummaryIsolatesFailedSources(t *testing.T) {
	svc, backend := newMetricsFixture(t)

	backend.EXPECT().Get(gomock.Any(), "/Auth/Get All User", gomock.Nil()).
		Return(nil, api.NewError(0, "Network error", nil))
	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(dashboardOrders(), nil)
	backend.EXPECT().Get(gomock.Any(), "/PlanPrice", gomock.Nil()).
		Return(nil, api.NewError(500, "boom", nil))
	backend.EXPECT().Get(gomock.Any(), "/RoomItem", gomock.Nil()).Return([]any{}, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.Users.Total)
	assert.Zero(t, summary.Subscriptions.Total)
	assert.Equal(t, 3, summary.Orders.Total)
	assert.Zero(t, summary.RoomItems.Total)
}

func TestSummaryToleratesNonArrayPayloads(t *testing.T) {
	svc, backend := newMetricsFixture(t)

	backend.EXPECT().Get(gomock.Any(), "/Auth/Get All User", gomock.Nil()).
		Return(map[string]any{"unexpected": true}, nil)
	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(nil, nil)
	backend.EXPECT().Get(gomock.Any(), "/PlanPrice", gomock.Nil()).Return(nil, nil)
	backend.EXPECT().Get(gomock.Any(), "/RoomItem", gomock.Nil()).Return(nil, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Users.Total)
	assert.Empty(t, summary.MonthlyRevenue)
}

func TestSummaryUnwrapsDataEnvelope(t *testing.T) {
	svc, backend := newMetricsFixture(t)

	backend.EXPECT().Get(gomock.Any(), "/Auth/Get All User", gomock.Nil()).
		Return(map[string]any{"data": dashboardUsers()}, nil)
	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(nil, nil)
	backend.EXPECT().Get(gomock.Any(), "/PlanPrice", gomock.Nil()).Return(nil, nil)
	backend.EXPECT().Get(gomock.Any(), "/RoomItem", gomock.Nil()).Return(nil, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Users.Total)
}
