package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gatherly/server/internal/api/handlers"
	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/metrics"
	"github.com/gatherly/server/internal/storage/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires handlers, middleware, and the repository over the given
// pool. Identity routes sit behind the Identity middleware; the listing
// endpoint stays public.
func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool, version, gitCommit string) (http.Handler, error) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return nil, err
	}

	eventsService := events.NewService(repo.Events())
	eventsHandler := handlers.NewEventsHandler(eventsService)
	healthChecker := handlers.NewHealthChecker(pool, version, gitCommit)

	return buildHandler(cfg, logger, pool, eventsHandler, healthChecker), nil
}

// buildHandler assembles the route table and middleware chain. The rate
// limiter wraps each API route individually, inside the tier wrapper, so
// authenticated routes are limited at the auth rate and health and metrics
// endpoints are never limited.
func buildHandler(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool, eventsHandler *handlers.EventsHandler, healthChecker *handlers.HealthChecker) http.Handler {
	identity := middleware.Identity()
	rateLimit := middleware.RateLimit(cfg.RateLimit)
	authTier := middleware.WithRateLimitTierHandler(middleware.TierAuth)

	listEvents := rateLimit(http.HandlerFunc(eventsHandler.List))
	getEvent := rateLimit(http.HandlerFunc(eventsHandler.Get))
	createEvent := authTier(rateLimit(identity(http.HandlerFunc(eventsHandler.Create))))
	joinEvent := authTier(rateLimit(identity(http.HandlerFunc(eventsHandler.Join))))
	joinedEvents := authTier(rateLimit(identity(http.HandlerFunc(eventsHandler.Joined))))

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(pool))
	mux.Handle("/health", healthChecker.Health())
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.Handle("/api/v1/events", methodMux(map[string]http.Handler{
		http.MethodGet:  listEvents,
		http.MethodPost: createEvent,
	}))
	mux.Handle("/api/v1/events/join", methodMux(map[string]http.Handler{
		http.MethodPost: joinEvent,
	}))
	mux.Handle("/api/v1/events/joined", methodMux(map[string]http.Handler{
		http.MethodGet: joinedEvents,
	}))
	mux.Handle("/api/v1/events/{id}", methodMux(map[string]http.Handler{
		http.MethodGet: getEvent,
	}))

	var handler http.Handler = mux
	handler = middleware.PublicRequestSize()(handler)
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.Tracing(handler)
	handler = middleware.CorrelationID(logger)(handler)

	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
