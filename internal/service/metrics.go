package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/sync/errgroup"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/model"
)

// Counting expressions over the loosely-shaped backend listings. Evaluated
// against the raw decoded payloads, so schema drift in fields we don't model
// cannot break the dashboard.
const (
	exprUsersTotal    = "length(@)"
	exprUsersActive   = "length([?status])"
	exprUsersPremium  = "length([?isPremium])"
	exprUsersVerified = "length([?isEmailVerified])"
	exprSubsTotal     = "length(@)"
	exprSubsActive    = "length([?isActive])"
	exprItemsTotal    = "length(@)"
)

// MetricsServiceOptions groups dependencies for MetricsService.
type MetricsServiceOptions struct {
	Backend Backend
	Logger  *slog.Logger
	Now     func() time.Time
}

// MetricsService aggregates the dashboard summary. Sources are fetched
// concurrently and isolated from each other: a failed listing contributes
// empty stats instead of failing the whole summary.
type MetricsService struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time
}

// NewMetricsService constructs a new MetricsService.
func NewMetricsService(opts MetricsServiceOptions) *MetricsService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &MetricsService{backend: opts.Backend, logger: logger, now: now}
}

// Summary fetches all four listings and computes the dashboard stats.
func (s *MetricsService) Summary(ctx context.Context) (*model.MetricsSummary, error) {
	var (
		usersRaw  any
		ordersRaw any
		subsRaw   any
		itemsRaw  any
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { usersRaw = s.fetch(gctx, "/Auth/Get All User"); return nil })
	g.Go(func() error { ordersRaw = s.fetch(gctx, "/orders"); return nil })
	g.Go(func() error { subsRaw = s.fetch(gctx, "/PlanPrice"); return nil })
	g.Go(func() error { itemsRaw = s.fetch(gctx, "/RoomItem"); return nil })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("metrics fan-out: %w", err)
	}

	orders, decodeErr := api.DecodeSlice[model.Order](ordersRaw)
	if decodeErr != nil {
		s.logger.Warn("metrics: orders payload not decodable", "error", decodeErr)
		orders = nil
	}

	summary := &model.MetricsSummary{
		Users: model.UserStats{
			Total:    count(usersRaw, exprUsersTotal),
			Active:   count(usersRaw, exprUsersActive),
			Premium:  count(usersRaw, exprUsersPremium),
			Verified: count(usersRaw, exprUsersVerified),
		},
		Orders: s.orderStats(orders),
		Subscriptions: model.SubStats{
			Total:  count(subsRaw, exprSubsTotal),
			Active: count(subsRaw, exprSubsActive),
		},
		RoomItems: model.RoomItemStats{
			Total: count(itemsRaw, exprItemsTotal),
		},
		MonthlyRevenue: s.monthlySeries(orders),
	}
	return summary, nil
}

// fetch returns the source's decoded listing, or nil on any failure.
func (s *MetricsService) fetch(ctx context.Context, path string) any {
	raw, err := s.backend.Get(ctx, path, nil)
	if err != nil {
		s.logger.Warn("metrics: source unavailable", "path", path, "error", err)
		return nil
	}
	data := unwrapData(raw)
	if _, ok := data.([]any); !ok {
		return nil
	}
	return data
}

func (s *MetricsService) orderStats(orders []model.Order) model.OrderStats {
	now := s.now()
	stats := model.OrderStats{Total: len(orders)}
	for _, o := range orders {
		stats.TotalRevenueVnd += o.AmountVnd
		if o.Paid() {
			stats.Paid++
		}
		if created, ok := parseBackendTime(o.CreatedAt); ok &&
			created.Year() == now.Year() && created.Month() == now.Month() {
			stats.OrdersThisMonth++
			stats.RevenueThisMonth += o.AmountVnd
		}
	}
	return stats
}

// monthlySeries buckets orders into YYYY-MM revenue points, sorted ascending.
func (s *MetricsService) monthlySeries(orders []model.Order) []model.MonthlyPoint {
	buckets := make(map[string]*model.MonthlyPoint)
	for _, o := range orders {
		created, ok := parseBackendTime(o.CreatedAt)
		if !ok {
			continue
		}
		key := created.Format("2006-01")
		point, exists := buckets[key]
		if !exists {
			point = &model.MonthlyPoint{Month: key}
			buckets[key] = point
		}
		point.Orders++
		point.RevenueVnd += o.AmountVnd
	}

	series := make([]model.MonthlyPoint, 0, len(buckets))
	for _, p := range buckets {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// count evaluates a JMESPath counting expression, treating any failure or
// non-numeric result as zero.
func count(data any, expr string) int {
	if data == nil {
		return 0
	}
	res, err := jmespath.Search(expr, data)
	if err != nil {
		return 0
	}
	switch n := res.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

// parseBackendTime parses the backend's timestamp strings, which come with or
// without a zone suffix.
func parseBackendTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
