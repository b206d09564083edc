package service

import (
	"context"
	"fmt"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
)

const plansPath = "/plans"

// PlanServiceOptions groups dependencies for PlanService.
type PlanServiceOptions struct {
	Backend Backend
}

// PlanService manages subscription plan definitions.
type PlanService struct {
	backend Backend
}

// NewPlanService constructs a new PlanService.
func NewPlanService(opts PlanServiceOptions) *PlanService {
	return &PlanService{backend: opts.Backend}
}

// List returns all plans.
func (s *PlanService) List(ctx context.Context) ([]model.Plan, error) {
	raw, err := s.backend.Get(ctx, plansPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	plans, err := api.DecodeSlice[model.Plan](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// GetByID returns one plan.
func (s *PlanService) GetByID(ctx context.Context, id string) (*model.Plan, error) {
	raw, err := s.backend.Get(ctx, plansPath+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	plan, err := api.DecodeAs[model.Plan](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &plan, nil
}

// Create creates a plan.
func (s *PlanService) Create(ctx context.Context, req model.PlanRequest) (*model.Plan, error) {
	raw, err := s.backend.Post(ctx, plansPath, &api.CallOptions{Body: req})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	plan, err := api.DecodeAs[model.Plan](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &plan, nil
}

// Update updates a plan.
func (s *PlanService) Update(ctx context.Context, id string, req model.PlanRequest) (*model.Plan, error) {
	raw, err := s.backend.Put(ctx, plansPath+"/"+id, &api.CallOptions{Body: req})
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	plan, err := api.DecodeAs[model.Plan](unwrapData(raw))
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return &plan, nil
}

// Delete deletes a plan.
func (s *PlanService) Delete(ctx context.Context, id string) error {
	if _, err := s.backend.Delete(ctx, plansPath+"/"+id, nil); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
