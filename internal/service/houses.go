package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
)

// ErrHouseNotFound is returned when a house id matches nothing.
var ErrHouseNotFound = errors.New("house not found")

// HouseService manages houses. The backend exposes no house endpoint, so the
// gateway owns these records in memory, seeded with the demo rows.
type HouseService struct {
	mu     sync.RWMutex
	nextID int
	houses map[int]model.House
}

// NewHouseService constructs a HouseService with the demo seed rows.
func NewHouseService() *HouseService {
	s := &HouseService{
		nextID: 1,
		houses: make(map[int]model.House),
	}
	s.seed(model.House{Name: "Sunshine Villa", Address: "123 Main St", Type: "Villa", Owner: "Jane Doe", Status: model.HouseAvailable})
	s.seed(model.House{Name: "Downtown Loft", Address: "88 High St", Type: "Loft", Owner: "John Smith", Status: model.HouseRented})
	return s
}

func (s *HouseService) seed(h model.House) {
	h.ID = s.nextID
	s.nextID++
	s.houses[h.ID] = h
}

// List returns all houses ordered by id.
func (s *HouseService) List(ctx context.Context) ([]model.House, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.House, 0, len(s.houses))
	for _, h := range s.houses {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID returns one house.
func (s *HouseService) GetByID(ctx context.Context, id int) (*model.House, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.houses[id]
	if !ok {
		return nil, ErrHouseNotFound
	}
	return &h, nil
}

// Create adds a house. Status defaults to Available.
func (s *HouseService) Create(ctx context.Context, req model.HouseRequest) (*model.House, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := model.House{
		ID:      s.nextID,
		Name:    req.Name,
		Address: req.Address,
		Type:    req.Type,
		Owner:   req.Owner,
		Status:  req.Status,
	}
	if h.Status == "" {
		h.Status = model.HouseAvailable
	}
	s.nextID++
	s.houses[h.ID] = h
	return &h, nil
}

// Update replaces a house's fields.
func (s *HouseService) Update(ctx context.Context, id int, req model.HouseRequest) (*model.House, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.houses[id]
	if !ok {
		return nil, ErrHouseNotFound
	}
	h.Name = req.Name
	h.Address = req.Address
	h.Type = req.Type
	h.Owner = req.Owner
	if req.Status != "" {
		h.Status = req.Status
	}
	s.houses[id] = h
	return &h, nil
}

// Delete removes a house.
func (s *HouseService) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.houses[id]; !ok {
		return ErrHouseNotFound
	}
	delete(s.houses, id)
	return nil
}
