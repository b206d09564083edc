package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// HouseHandlers provides HTTP handlers for gateway-local houses.
type HouseHandlers struct {
	Svc *service.HouseService
}

// List handles GET /houses.
func (h *HouseHandlers) List(w http.ResponseWriter, r *http.Request) {
	HandleList(w, r, ListHandlerOpts[model.House]{
		Fetch:        h.Svc.List,
		Filter:       filterHouse,
		Less:         lessHouse,
		ErrorMessage: "Unable to load houses",
	})
}

func filterHouse(house model.House, q url.Values) bool {
	if s := strings.ToLower(q.Get("q")); s != "" {
		if !strings.Contains(strings.ToLower(house.Name), s) &&
			!strings.Contains(strings.ToLower(house.Address), s) &&
			!strings.Contains(strings.ToLower(house.Owner), s) {
			return false
		}
	}
	if status := q.Get("status"); status != "" && !strings.EqualFold(house.Status, status) {
		return false
	}
	return true
}

func lessHouse(a, b model.House, field string) bool {
	switch field {
	case "name":
		return a.Name < b.Name
	case "owner":
		return a.Owner < b.Owner
	case "status":
		return a.Status < b.Status
	default:
		return false
	}
}

func houseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_id",
			Err:     errors.New("house id must be an integer"),
		})
		return 0, false
	}
	return id, true
}

func writeHouseError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, service.ErrHouseNotFound) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
		return
	}
	WriteBackendError(w, err, fallback)
}

// Get handles GET /houses/{id}.
func (h *HouseHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := houseID(w, r)
	if !ok {
		return
	}
	house, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeHouseError(w, err, "Unable to load house")
		return
	}
	WriteJSON(w, http.StatusOK, house)
}

// Create handles POST /houses.
func (h *HouseHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.HouseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_fields",
			Err:     errors.New("name is required"),
		})
		return
	}

	house, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		writeHouseError(w, err, "Unable to create house")
		return
	}
	WriteJSON(w, http.StatusCreated, house)
}

// Update handles PUT /houses/{id}.
func (h *HouseHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := houseID(w, r)
	if !ok {
		return
	}
	var req model.HouseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	house, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		writeHouseError(w, err, "Unable to update house")
		return
	}
	WriteJSON(w, http.StatusOK, house)
}

// Delete handles DELETE /houses/{id}.
func (h *HouseHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := houseID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeHouseError(w, err, "Unable to delete house")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
