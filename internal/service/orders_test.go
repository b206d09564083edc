package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/mocks"
)

func orderRows() []any {
	return []any{
		map[string]any{
			"id": "o-1", "orderCode": float64(1001), "userId": "u-1",
			"amountVnd": float64(150000), "createdAt": "2024-05-01T00:00:00Z",
			"paidAt": "2024-05-01T01:00:00Z",
		},
		map[string]any{
			"id": "o-2", "orderCode": float64(1002), "userId": "u-2",
			"amountVnd": float64(90000), "createdAt": "2024-05-03T00:00:00Z",
			"paidAt": nil,
		},
	}
}

func TestOrderList(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewOrderService(OrderServiceOptions{Backend: backend})

	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(orderRows(), nil)

	orders, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1001), orders[0].OrderCode)
	assert.True(t, orders[0].Paid())
	assert.False(t, orders[1].Paid())
}

func TestOrderGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := NewOrderService(OrderServiceOptions{Backend: backend})

	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(orderRows(), nil).Times(2)

	order, err := svc.GetByID(context.Background(), "o-2")
	require.NoError(t, err)
	assert.Equal(t, "u-2", order.UserID)

	_, err = svc.GetByID(context.Background(), "o-nope")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderDetailJoinsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	users := NewAuthService(AuthServiceOptions{Backend: backend})
	svc := NewOrderService(OrderServiceOptions{Backend: backend, Users: users})

	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(orderRows(), nil)
	backend.EXPECT().Get(gomock.Any(), "/Auth/Get All User", gomock.Nil()).Return([]any{
		map[string]any{"userId": "u-1", "username": "jane", "email": "jane@hometrack.dev"},
	}, nil)

	detail, err := svc.Detail(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, "o-1", detail.ID)
	require.NotNil(t, detail.User)
	assert.Equal(t, "jane", detail.User.Username)
}

func TestOrderDetailSurvivesUserListingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	users := NewAuthService(AuthServiceOptions{Backend: backend})
	svc := NewOrderService(OrderServiceOptions{Backend: backend, Users: users})

	backend.EXPECT().Get(gomock.Any(), "/orders", gomock.Nil()).Return(orderRows(), nil)
	backend.EXPECT().Get(gomock.Any(), "/Auth/Get All User", gomock.Nil()).
		Return(nil, api.NewError(503, "unavailable", nil))

	detail, err := svc.Detail(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Nil(t, detail.User)
}
