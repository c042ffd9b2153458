package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velamart/storefront-backend/api/controllers"
	"github.com/velamart/storefront-backend/api/middleware"
	"github.com/velamart/storefront-backend/internal/cart"
	"github.com/velamart/storefront-backend/internal/catalog"
	"github.com/velamart/storefront-backend/pkg/config"
	"github.com/velamart/storefront-backend/pkg/db"
	"github.com/velamart/storefront-backend/pkg/logger"
	"github.com/velamart/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	catalogService *catalog.Service,
	cartService *cart.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products/{id}/price", controllers.ProductPrice(catalogService, cfg.Pricing.DefaultCurrency, logg))
		r.Post("/cart/quote", controllers.CartQuote(cartService, logg))
	})

	return r
}
