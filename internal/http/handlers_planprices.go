package httpx

import (
	"net/http"
	"net/url"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// PlanPriceHandlers provides HTTP handlers for plan prices.
type PlanPriceHandlers struct {
	Svc *service.PlanPriceService
}

// List handles GET /plan-prices.
func (h *PlanPriceHandlers) List(w http.ResponseWriter, r *http.Request) {
	HandleList(w, r, ListHandlerOpts[model.PlanPrice]{
		Fetch: h.Svc.List,
		Filter: func(p model.PlanPrice, q url.Values) bool {
			if planID := q.Get("planId"); planID != "" && p.PlanID != planID {
				return false
			}
			if active := q.Get("active"); active != "" && (active == "true") != p.IsActive {
				return false
			}
			return true
		},
		Less: func(a, b model.PlanPrice, field string) bool {
			switch field {
			case "amountVnd":
				return a.AmountVnd < b.AmountVnd
			case "period":
				return a.Period < b.Period
			default:
				return false
			}
		},
		ErrorMessage: "Unable to load plan prices",
	})
}

// Create handles POST /plan-prices.
func (h *PlanPriceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.PlanPriceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	price, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteBackendError(w, err, "Unable to create plan price")
		return
	}
	WriteJSON(w, http.StatusCreated, price)
}

// Update handles PUT /plan-prices/{id}.
func (h *PlanPriceHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.PlanPriceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	price, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteBackendError(w, err, "Unable to update plan price")
		return
	}
	WriteJSON(w, http.StatusOK, price)
}

// Delete handles DELETE /plan-prices/{id}.
func (h *PlanPriceHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteBackendError(w, err, "Unable to delete plan price")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
