package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// PlanHandlers provides HTTP handlers for subscription plans.
type PlanHandlers struct {
	Svc *service.PlanService
}

// List handles GET /plans.
func (h *PlanHandlers) List(w http.ResponseWriter, r *http.Request) {
	HandleList(w, r, ListHandlerOpts[model.Plan]{
		Fetch:        h.Svc.List,
		Filter:       filterPlan,
		Less:         lessPlan,
		ErrorMessage: "Unable to load plans",
	})
}

func filterPlan(p model.Plan, q url.Values) bool {
	if s := strings.ToLower(q.Get("q")); s != "" {
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.Code), s) {
			return false
		}
	}
	if active := q.Get("active"); active != "" {
		if (active == "true") != p.IsActive {
			return false
		}
	}
	return true
}

func lessPlan(a, b model.Plan, field string) bool {
	switch field {
	case "code":
		return a.Code < b.Code
	case "name":
		return a.Name < b.Name
	default:
		return false
	}
}

// Get handles GET /plans/{id}.
func (h *PlanHandlers) Get(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteBackendError(w, err, "Unable to load plan")
		return
	}
	WriteJSON(w, http.StatusOK, plan)
}

// Create handles POST /plans.
func (h *PlanHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.PlanRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Code == "" || req.Name == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_fields",
			Err:     errors.New("code and name are required"),
		})
		return
	}

	plan, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteBackendError(w, err, "Unable to create plan")
		return
	}
	WriteJSON(w, http.StatusCreated, plan)
}

// Update handles PUT /plans/{id}.
func (h *PlanHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.PlanRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	plan, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteBackendError(w, err, "Unable to update plan")
		return
	}
	WriteJSON(w, http.StatusOK, plan)
}

// Delete handles DELETE /plans/{id}.
func (h *PlanHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteBackendError(w, err, "Unable to delete plan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
