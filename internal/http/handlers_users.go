package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// UserHandlers provides read-only HTTP handlers for the account listing.
type UserHandlers struct {
	Auth *service.AuthService
}

// List handles GET /users.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	HandleList(w, r, ListHandlerOpts[model.User]{
		Fetch:        h.Auth.ListUsers,
		Filter:       filterUser,
		Less:         lessUser,
		ErrorMessage: "Unable to load users",
	})
}

func filterUser(u model.User, q url.Values) bool {
	if s := strings.ToLower(q.Get("q")); s != "" {
		if !strings.Contains(strings.ToLower(u.Username), s) &&
			!strings.Contains(strings.ToLower(u.Email), s) {
			return false
		}
	}
	if premium := q.Get("premium"); premium != "" && (premium == "true") != u.IsPremium {
		return false
	}
	if verified := q.Get("verified"); verified != "" && (verified == "true") != u.IsEmailVerified {
		return false
	}
	return true
}

func lessUser(a, b model.User, field string) bool {
	switch field {
	case "username":
		return a.Username < b.Username
	case "email":
		return a.Email < b.Email
	default:
		return false
	}
}
