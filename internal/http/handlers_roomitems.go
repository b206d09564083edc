package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// RoomItemHandlers provides HTTP handlers for the sprite catalog.
type RoomItemHandlers struct {
	Svc *service.RoomItemService
}

// List handles GET /room-items.
func (h *RoomItemHandlers) List(w http.ResponseWriter, r *http.Request) {
	HandleList(w, r, ListHandlerOpts[model.RoomItem]{
		Fetch:        h.Svc.List,
		Filter:       filterRoomItem,
		Less:         lessRoomItem,
		ErrorMessage: "Unable to load room items",
	})
}

// Catalog handles GET /room-items/catalog, the read-only listing the
// dashboard uses.
func (h *RoomItemHandlers) Catalog(w http.ResponseWriter, r *http.Request) {
	HandleList(w, r, ListHandlerOpts[model.RoomItem]{
		Fetch:        h.Svc.Catalog,
		Filter:       filterRoomItem,
		Less:         lessRoomItem,
		ErrorMessage: "Unable to load room item catalog",
	})
}

func filterRoomItem(it model.RoomItem, q url.Values) bool {
	if s := strings.ToLower(q.Get("q")); s != "" {
		if !strings.Contains(strings.ToLower(it.Item), s) &&
			!strings.Contains(strings.ToLower(it.SubName), s) {
			return false
		}
	}
	if rt := q.Get("roomType"); rt != "" && !strings.EqualFold(it.RoomType, rt) {
		return false
	}
	return true
}

func lessRoomItem(a, b model.RoomItem, field string) bool {
	switch field {
	case "item":
		return a.Item < b.Item
	case "roomType":
		return a.RoomType < b.RoomType
	default:
		return false
	}
}

// Create handles POST /room-items.
func (h *RoomItemHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.RoomItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteBackendError(w, err, "Unable to create room item")
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

// Update handles PUT /room-items/{id}.
func (h *RoomItemHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.RoomItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteBackendError(w, err, "Unable to update room item")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /room-items/{id}.
func (h *RoomItemHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteBackendError(w, err, "Unable to delete room item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
