package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clearleaf/leaflet-translation-service/internal/config"
	"github.com/clearleaf/leaflet-translation-service/internal/repository"
	"github.com/clearleaf/leaflet-translation-service/pkg/logger"
)

// Store is the full persistence surface the HTTP boundary consumes.
// *repository.Store implements it.
type Store interface {
	repository.PerformanceStore
	repository.HistoryStore
	Ping(ctx context.Context) error
}

// HandlerManager wires the orchestrator and store into HTTP handlers and
// owns route registration.
type HandlerManager struct {
	cfg     *config.Config
	service Translator
	store   Store
}

// NewHandlerManager creates a handler manager over already-constructed
// long-lived services. The orchestrator and store are built once at process
// start and injected here.
func NewHandlerManager(cfg *config.Config, service Translator, store Store) *HandlerManager {
	return &HandlerManager{
		cfg:     cfg,
		service: service,
		store:   store,
	}
}

// SetupAllRoutes sets up all routes with middleware. Deployment mode decides
// the outer surface: development/testing gets permissive CORS and no static
// assets; other modes serve the bundled frontend behind the secret-key gate.
func (hm *HandlerManager) SetupAllRoutes(router *mux.Router) {
	router.Use(LoggingMiddleware)
	if hm.cfg.IsDevelopment() {
		router.Use(CORSMiddleware)
		// Browser preflights never match the registered method lists, so
		// Use middleware alone would 404 them.
		router.PathPrefix("/api/").HandlerFunc(handleCORS).Methods("OPTIONS")
		router.PathPrefix("/services/").HandlerFunc(handleCORS).Methods("OPTIONS")
	}

	hm.setupAPIRoutes(router)
	hm.setupServiceRoutes(router)

	if !hm.cfg.IsDevelopment() {
		hm.setupStaticRoutes(router)
	}

	logger.Base().Info("all application routes registered")
}

// setupAPIRoutes sets up the JSON API under /api.
func (hm *HandlerManager) setupAPIRoutes(router *mux.Router) {
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(ValidationMiddleware)

	translateHandler := NewTranslateHandler(hm.service, hm.store)
	translateHandler.SetupTranslateRoutes(apiRouter)

	performanceHandler := NewPerformanceHandler(hm.store)
	performanceHandler.SetupPerformanceRoutes(apiRouter)

	historyHandler := NewHistoryHandler(hm.store)
	historyHandler.SetupHistoryRoutes(apiRouter)

	logger.Base().Info("api routes registered")
}

// setupServiceRoutes sets up health and readiness probes.
func (hm *HandlerManager) setupServiceRoutes(router *mux.Router) {
	healthHandler := NewHealthHandler(hm.service, hm.store)
	healthHandler.SetupHealthRoutes(router)
}

// setupStaticRoutes sets up the bundled frontend, gated by the secret key.
func (hm *HandlerManager) setupStaticRoutes(router *mux.Router) {
	staticHandler := NewStaticHandler(hm.cfg.StaticDir)

	var gate func(http.Handler) http.Handler
	if hm.cfg.SecretKey != "" {
		gate = SecretKeyMiddleware(hm.cfg.SecretKey)
	}
	staticHandler.SetupStaticRoutes(router, gate)

	logger.Base().Info("static file routes registered")
}
