package bootstrap

import (
	"log/slog"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/config"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/adapters/filestore"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/adapters/redisstore"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	httpx "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/http"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/ports"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/service"
)

// ServiceDeps contains the dependencies needed to build the service container.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds the constructed services and session manager.
type ServiceContainer struct {
	Backend    *api.Client
	Auth       *service.AuthService
	Plans      *service.PlanService
	PlanPrices *service.PlanPriceService
	RoomItems  *service.RoomItemService
	Houses     *service.HouseService
	Orders     *service.OrderService
	Metrics    *service.MetricsService
	Sessions   *httpx.SessionManager
}

// NewServices builds the service container from configuration.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	backend := api.NewClient(api.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Logger:  logger,
	})

	auth := service.NewAuthService(service.AuthServiceOptions{Backend: backend, Logger: logger})
	sessions := &httpx.SessionManager{
		Records:         newRecordStoreFactory(cfg, deps.RedisClient),
		CookieDomain:    cfg.HTTP.CookieDomain,
		CookieTTL:       cfg.Session.TTL,
		AllowMockSignIn: cfg.Session.AllowMockSignIn && cfg.IsDev,
		Logger:          logger,
	}

	return ServiceContainer{
		Backend:    backend,
		Auth:       auth,
		Plans:      service.NewPlanService(service.PlanServiceOptions{Backend: backend}),
		PlanPrices: service.NewPlanPriceService(service.PlanPriceServiceOptions{Backend: backend}),
		RoomItems:  service.NewRoomItemService(service.RoomItemServiceOptions{Backend: backend}),
		Houses:     service.NewHouseService(),
		Orders:     service.NewOrderService(service.OrderServiceOptions{Backend: backend, Users: auth}),
		Metrics:    service.NewMetricsService(service.MetricsServiceOptions{Backend: backend, Logger: logger}),
		Sessions:   sessions,
	}
}

// newRecordStoreFactory selects the durable session record store. Redis keys
// records per session id; the file store writes one file per session under the
// configured state directory.
func newRecordStoreFactory(cfg *config.AppConfig, client redis.UniversalClient) httpx.RecordStoreFactory {
	if cfg.Session.Store == config.SessionStoreFile || client == nil {
		dir := filepath.Join(cfg.Session.FilePath, "sessions")
		return func(sessionID string) ports.SessionRecordStore {
			return filestore.NewRecordStore(filepath.Join(dir, sessionID+".json"))
		}
	}
	return func(sessionID string) ports.SessionRecordStore {
		return redisstore.NewRecordStore(client, sessionID, cfg.Session.TTL)
	}
}
