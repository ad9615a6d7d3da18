package shoesclean

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/jayden648/shoesclean/docs"
	"github.com/jayden648/shoesclean/internal/config"
	"github.com/jayden648/shoesclean/internal/http/handlers/health"
	"github.com/jayden648/shoesclean/internal/http/handlers/home"
	"github.com/jayden648/shoesclean/internal/http/handlers/product"
	"github.com/jayden648/shoesclean/internal/http/handlers/service/create"
	"github.com/jayden648/shoesclean/internal/http/handlers/service/list"
	"github.com/jayden648/shoesclean/internal/http/handlers/service/read"
	"github.com/jayden648/shoesclean/internal/http/handlers/service/remove"
	"github.com/jayden648/shoesclean/internal/http/handlers/service/stats"
	"github.com/jayden648/shoesclean/internal/http/handlers/service/update"
	"github.com/jayden648/shoesclean/internal/http/middlewarectx"
)

// ServiceCatalog бизнес-логика услуг, которую используют обработчики /api/services.
type ServiceCatalog interface {
	list.Service
	read.Service
	create.Service
	update.Service
	remove.Service
	stats.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, services ServiceCatalog, products product.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.CORS(middlewarectx.DefaultCORSConfig(cfg.AllowedOrigins)),
		middlewarectx.Metrics,
	)

	r.Get("/", home.New(logger, cfg.Dashboard, cfg.Version).ServeHTTP)
	r.Get("/health", health.New(logger, cfg.Version).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RateLimit))

		r.Route("/services", func(r chi.Router) {
			r.Get("/", list.New(logger, services).ServeHTTP)
			r.Post("/", create.New(logger, services).ServeHTTP)
			// статический сегмент приоритетнее {id}
			r.Get("/stats", stats.New(logger, services).ServeHTTP)
			r.Get("/{id}", read.New(logger, services).ServeHTTP)
			r.Put("/{id}", update.New(logger, services).ServeHTTP)
			r.Delete("/{id}", remove.New(logger, services).ServeHTTP)
		})

		productHandler := product.New(logger, products)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Read)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Remove)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
