package httpx

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// OrderHandlers provides read-only HTTP handlers for billing orders.
type OrderHandlers struct {
	Svc *service.OrderService
}

// List handles GET /orders.
func (h *OrderHandlers) List(w http.ResponseWriter, r *http.Request) {
	HandleList(w, r, ListHandlerOpts[model.Order]{
		Fetch:        h.Svc.List,
		Filter:       filterOrder,
		Less:         lessOrder,
		ErrorMessage: "Unable to load orders",
	})
}

func filterOrder(o model.Order, q url.Values) bool {
	if paid := q.Get("paid"); paid != "" && (paid == "true") != o.Paid() {
		return false
	}
	if userID := q.Get("userId"); userID != "" && o.UserID != userID {
		return false
	}
	return true
}

func lessOrder(a, b model.Order, field string) bool {
	switch field {
	case "amountVnd":
		return a.AmountVnd < b.AmountVnd
	case "createdAt":
		return a.CreatedAt < b.CreatedAt
	default:
		return false
	}
}

func writeOrderError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, service.ErrOrderNotFound) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
		return
	}
	WriteBackendError(w, err, fallback)
}

// Get handles GET /orders/{id}.
func (h *OrderHandlers) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeOrderError(w, err, "Unable to load order")
		return
	}
	WriteJSON(w, http.StatusOK, order)
}

// Detail handles GET /orders/{id}/detail, the invoice record with the owning
// user joined in.
func (h *OrderHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Svc.Detail(r.Context(), r.PathValue("id"))
	if err != nil {
		writeOrderError(w, err, "Unable to load order detail")
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}
