package httpx

import (
	"log/slog"
	"net/http"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Plans      *service.PlanService
	PlanPrices *service.PlanPriceService
	RoomItems  *service.RoomItemService
	Houses     *service.HouseService
	Orders     *service.OrderService
	Metrics    *service.MetricsService
	Sessions   *SessionManager
	Logger     *slog.Logger
}

// NewRouter creates and configures the admin gateway router. Everything past
// the auth endpoints and the health check requires a live session.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Auth:     services.Auth,
		Sessions: services.Sessions,
		Logger:   services.Logger,
	}
	accountHandlers := &AccountHandlers{}

	mux.HandleFunc("POST /auth/login", authHandlers.Login)
	mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
	mux.HandleFunc("POST /auth/register", authHandlers.Register)
	mux.HandleFunc("POST /auth/verify-email", authHandlers.VerifyEmail)
	mux.HandleFunc("POST /auth/confirm-member", authHandlers.ConfirmMember)
	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("HEAD /healthz", Health)

	requireSession := RequireSession(services.Sessions)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireSession(h)
	}

	mux.Handle("GET /auth/session", protected(authHandlers.Session))
	mux.Handle("POST /account/upgrade", protected(accountHandlers.Upgrade))
	mux.Handle("PUT /account/plan", protected(accountHandlers.SetPlan))

	planHandlers := &PlanHandlers{Svc: services.Plans}
	registerCRUD(mux, crudRoutes{
		Base:       "/plans",
		Create:     planHandlers.Create,
		List:       planHandlers.List,
		GetByID:    planHandlers.Get,
		Update:     planHandlers.Update,
		Delete:     planHandlers.Delete,
		Middleware: requireSession,
	})

	priceHandlers := &PlanPriceHandlers{Svc: services.PlanPrices}
	mux.Handle("GET /plan-prices", protected(priceHandlers.List))
	mux.Handle("POST /plan-prices", protected(priceHandlers.Create))
	mux.Handle("PUT /plan-prices/{id}", protected(priceHandlers.Update))
	mux.Handle("DELETE /plan-prices/{id}", protected(priceHandlers.Delete))

	itemHandlers := &RoomItemHandlers{Svc: services.RoomItems}
	mux.Handle("GET /room-items", protected(itemHandlers.List))
	mux.Handle("GET /room-items/catalog", protected(itemHandlers.Catalog))
	mux.Handle("POST /room-items", protected(itemHandlers.Create))
	mux.Handle("PUT /room-items/{id}", protected(itemHandlers.Update))
	mux.Handle("DELETE /room-items/{id}", protected(itemHandlers.Delete))

	houseHandlers := &HouseHandlers{Svc: services.Houses}
	registerCRUD(mux, crudRoutes{
		Base:       "/houses",
		Create:     houseHandlers.Create,
		List:       houseHandlers.List,
		GetByID:    houseHandlers.Get,
		Update:     houseHandlers.Update,
		Delete:     houseHandlers.Delete,
		Middleware: requireSession,
	})

	orderHandlers := &OrderHandlers{Svc: services.Orders}
	mux.Handle("GET /orders", protected(orderHandlers.List))
	mux.Handle("GET /orders/{id}", protected(orderHandlers.Get))
	mux.Handle("GET /orders/{id}/detail", protected(orderHandlers.Detail))

	userHandlers := &UserHandlers{Auth: services.Auth}
	mux.Handle("GET /users", protected(userHandlers.List))

	metricsHandlers := &MetricsHandlers{Svc: services.Metrics}
	mux.Handle("GET /dashboard/metrics", protected(metricsHandlers.Summary))

	return Chain(mux, Logging(services.Logger), Recover(services.Logger))
}

// crudRoutes describes the standard CRUD routes for a resource base path.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty")
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base)
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
