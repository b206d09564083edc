package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/mocks"
)

func TestPlanListDecodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewPlanService(PlanServiceOptions{Backend: backend})

	backend.EXPECT().Get(gomock.Any(), "/plans", gomock.Nil()).Return([]any{
		map[string]any{"planId": "p-1", "code": "BASIC", "name": "Basic", "isActive": true},
		map[string]any{"planId": "p-2", "code": "PREMIUM", "name": "Premium", "isActive": false},
	}, nil)

	plans, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "BASIC", plans[0].Code)
	assert.False(t, plans[1].IsActive)
}

func TestPlanCreateSendsBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewPlanService(PlanServiceOptions{Backend: backend})

	req := model.PlanRequest{Code: "FAMILY", Name: "Family", IsActive: true}
	backend.EXPECT().
		Post(gomock.Any(), "/plans", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts *api.CallOptions) (any, error) {
			sent, ok := opts.Body.(model.PlanRequest)
			require.True(t, ok)
			assert.Equal(t, "FAMILY", sent.Code)
			return map[string]any{"planId": "p-3", "code": "FAMILY", "name": "Family", "isActive": true}, nil
		})

	plan, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "p-3", plan.PlanID)
}

func TestPlanUpdateAndDeleteRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewPlanService(PlanServiceOptions{Backend: backend})

	backend.EXPECT().
		Put(gomock.Any(), "/plans/p-1", gomock.Any()).
		Return(map[string]any{"planId": "p-1", "code": "BASIC", "name": "Basic v2"}, nil)
	backend.EXPECT().
		Delete(gomock.Any(), "/plans/p-1", gomock.Nil()).
		Return(nil, nil)

	plan, err := svc.Update(context.Background(), "p-1", model.PlanRequest{Code: "BASIC", Name: "Basic v2"})
	require.NoError(t, err)
	assert.Equal(t, "Basic v2", plan.Name)

	assert.NoError(t, svc.Delete(context.Background(), "p-1"))
}

func TestPlanPriceListUsesBackendSpelling(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewPlanPriceService(PlanPriceServiceOptions{Backend: backend})

	backend.EXPECT().Get(gomock.Any(), "/PlanPrice", gomock.Nil()).Return([]any{
		map[string]any{"id": "pp-1", "planId": "p-1", "period": float64(1), "amountVnd": float64(99000), "isActive": true},
	}, nil)

	prices, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, int64(99000), prices[0].AmountVnd)
}

func TestRoomItemCatalogAndManagementRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewRoomItemService(RoomItemServiceOptions{Backend: backend})

	backend.EXPECT().Get(gomock.Any(), "/room-items", gomock.Nil()).Return([]any{
		map[string]any{"roomItemId": "ri-1", "item": "Sofa", "roomType": "Living"},
	}, nil)
	backend.EXPECT().Get(gomock.Any(), "/RoomItem", gomock.Nil()).Return([]any{
		map[string]any{"roomItemId": "ri-1"},
		map[string]any{"roomItemId": "ri-2"},
	}, nil)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Sofa", items[0].Item)

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 2)
}
