package service

import (
	"context"
	"fmt"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
)

// Room items are managed at /room-items but listed read-only at /RoomItem.
// Two routes, one resource; the backend grew them separately.
const (
	roomItemsPath       = "/room-items"
	roomItemCatalogPath = "/RoomItem"
)

// RoomItemServiceOptions groups dependencies for RoomItemService.
type RoomItemServiceOptions struct {
	Backend Backend
}

// RoomItemService manages the room-item sprite catalog.
type RoomItemService struct {
	backend Backend
}

// NewRoomItemService constructs a new RoomItemService.
func NewRoomItemService(opts RoomItemServiceOptions) *RoomItemService {
	return &RoomItemService{backend: opts.Backend}
}

// List returns all room items from the management route.
func (s *RoomItemService) List(ctx context.Context) ([]model.RoomItem, error) {
	raw, err := s.backend.Get(ctx, roomItemsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list room items: %w", err)
	}
	items, err := api.DecodeSlice[model.RoomItem](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("list room items: %w", err)
	}
	return items, nil
}

// Catalog returns the read-only sprite listing used by the dashboard.
func (s *RoomItemService) Catalog(ctx context.Context) ([]model.RoomItem, error) {
	raw, err := s.backend.Get(ctx, roomItemCatalogPath, nil)
	if err != nil {
		return nil, fmt.Errorf("room item catalog: %w", err)
	}
	items, err := api.DecodeSlice[model.RoomItem](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("room item catalog: %w", err)
	}
	return items, nil
}

// Create creates a room item.
func (s *RoomItemService) Create(ctx context.Context, req model.RoomItemRequest) (*model.RoomItem, error) {
	raw, err := s.backend.Post(ctx, roomItemsPath, &api.CallOptions{Body: req})
	if err != nil {
		return nil, fmt.Errorf("create room item: %w", err)
	}
	item, err := api.DecodeAs[model.RoomItem](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("create room item: %w", err)
	}
	return &item, nil
}

// Update updates a room item.
func (s *RoomItemService) Update(ctx context.Context, id string, req model.RoomItemRequest) (*model.RoomItem, error) {
	raw, err := s.backend.Put(ctx, roomItemsPath+"/"+id, &api.CallOptions{Body: req})
	if err != nil {
		return nil, fmt.Errorf("update room item: %w", err)
	}
	item, err := api.DecodeAs[model.RoomItem](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("update room item: %w", err)
	}
	return &item, nil
}

// Delete deletes a room item.
func (s *RoomItemService) Delete(ctx context.Context, id string) error {
	if _, err := s.backend.Delete(ctx, roomItemsPath+"/"+id, nil); err != nil {
		return fmt.Errorf("delete room item: %w", err)
	}
	return nil
}
