package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/anvh/quickspend/pkg/middleware"
	"github.com/anvh/quickspend/pkg/observability"
)

// SetupRouter configures all routes and returns the HTTP handler.
func SetupRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	tracer := otel.GetTracerProvider().Tracer("quickspend/api")

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Tracing(tracer),
		observability.MetricsMiddleware,
	}
	if deps.Config.Server.RateLimitPerSecond > 0 && deps.Config.Server.RateLimitBurst > 0 {
		limiter := rate.NewLimiter(
			rate.Limit(float64(deps.Config.Server.RateLimitPerSecond)),
			deps.Config.Server.RateLimitBurst,
		)
		chain = append(chain, middleware.RateLimit(limiter))
	}

	mux.Handle("/v1/parse", middleware.Chain(http.HandlerFunc(deps.ParseHandler.Parse), chain...))
	deps.Logger.Info("registered parse endpoint", "path", "/v1/parse")

	mux.Handle("/v1/parse/batch", middleware.Chain(http.HandlerFunc(deps.ParseHandler.ParseBatch), chain...))
	deps.Logger.Info("registered batch parse endpoint", "path", "/v1/parse/batch")

	registerUtilityRoutes(mux, deps)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept-Encoding", "Content-Type", "X-Request-ID", "Authorization"},
		AllowCredentials: false,
		MaxAge:           7200,
	})

	return corsHandler.Handler(mux)
}

// registerUtilityRoutes registers health check, readiness, and metrics.
func registerUtilityRoutes(mux *http.ServeMux, deps *Dependencies) {
	// The extractor is pure computation with no dependencies to probe.
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			deps.Logger.Error("failed to write health response", "error", err)
		}
	})
	deps.Logger.Info("registered health check", "path", "/health")

	mux.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ready")); err != nil {
			deps.Logger.Error("failed to write readiness response", "error", err)
		}
	})
	deps.Logger.Info("registered readiness check", "path", "/ready")

	if deps.Config.Observability.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		deps.Logger.Info("registered metrics endpoint", "path", "/metrics")
	}
}
