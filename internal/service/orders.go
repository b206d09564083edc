package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
)

const ordersPath = "/orders"

// ErrOrderNotFound is returned when an order id matches nothing.
var ErrOrderNotFound = errors.New("order not found")

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Backend Backend
	Users   *AuthService
}

// OrderService reads billing orders. The backend only exposes a listing; a
// single order is resolved by filtering it, and the invoice detail joins the
// owning user from the account listing.
type OrderService struct {
	backend Backend
	users   *AuthService
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{backend: opts.Backend, users: opts.Users}
}

// List returns all orders.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	raw, err := s.backend.Get(ctx, ordersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders, err := api.DecodeSlice[model.Order](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetByID returns one order from the listing.
func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// Detail returns the order joined with its owning user, the record handed to
// the invoice-PDF collaborator. A missing user leaves the join nil; the
// invoice still renders without account details.
func (s *OrderService) Detail(ctx context.Context, id string) (*model.OrderDetail, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.OrderDetail{Order: *order}
	if s.users == nil {
		return detail, nil
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return detail, nil
	}
	for i := range users {
		if users[i].UserID == order.UserID {
			detail.User = &users[i]
			break
		}
	}
	return detail, nil
}
