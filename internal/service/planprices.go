package service

import (
	"context"
	"fmt"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
)

// The backend spells this resource in PascalCase, unlike its siblings.
const planPricesPath = "/PlanPrice"

// PlanPriceServiceOptions groups dependencies for PlanPriceService.
type PlanPriceServiceOptions struct {
	Backend Backend
}

// PlanPriceService manages the priced billing periods of plans. The dashboard
// labels these "subscriptions".
type PlanPriceService struct {
	backend Backend
}

// NewPlanPriceService constructs a new PlanPriceService.
func NewPlanPriceService(opts PlanPriceServiceOptions) *PlanPriceService {
	return &PlanPriceService{backend: opts.Backend}
}

// List returns all plan prices.
func (s *PlanPriceService) List(ctx context.Context) ([]model.PlanPrice, error) {
	raw, err := s.backend.Get(ctx, planPricesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list plan prices: %w", err)
	}
	prices, err := api.DecodeSlice[model.PlanPrice](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("list plan prices: %w", err)
	}
	return prices, nil
}

// Create creates a plan price.
func (s *PlanPriceService) Create(ctx context.Context, req model.PlanPriceRequest) (*model.PlanPrice, error) {
	raw, err := s.backend.Post(ctx, planPricesPath, &api.CallOptions{Body: req})
	if err != nil {
		return nil, fmt.Errorf("create plan price: %w", err)
	}
	price, err := api.DecodeAs[model.PlanPrice](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("create plan price: %w", err)
	}
	return &price, nil
}

// Update updates a plan price.
func (s *PlanPriceService) Update(ctx context.Context, id string, req model.PlanPriceRequest) (*model.PlanPrice, error) {
	raw, err := s.backend.Put(ctx, planPricesPath+"/"+id, &api.CallOptions{Body: req})
	if err != nil {
		return nil, fmt.Errorf("update plan price: %w", err)
	}
	price, err := api.DecodeAs[model.PlanPrice](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("update plan price: %w", err)
	}
	return &price, nil
}

// Delete deletes a plan price.
func (s *PlanPriceService) Delete(ctx context.Context, id string) error {
	if _, err := s.backend.Delete(ctx, planPricesPath+"/"+id, nil); err != nil {
		return fmt.Errorf("delete plan price: %w", err)
	}
	return nil
}
