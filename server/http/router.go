package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"pricelist-service/internal/config"
	"pricelist-service/internal/middleware"
	plHnd "pricelist-service/internal/pricelist/handler"
	"pricelist-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Post("/pricelist/analyze", plHnd.Analyze(cfg, logger))
	r.Post("/pricelist/confirm", plHnd.Confirm(cfg, logger))

	return r
}
