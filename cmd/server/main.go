package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/clearleaf/leaflet-translation-service/internal/config"
	"github.com/clearleaf/leaflet-translation-service/internal/handler"
	"github.com/clearleaf/leaflet-translation-service/internal/repository"
	"github.com/clearleaf/leaflet-translation-service/internal/services/translation"
	"github.com/clearleaf/leaflet-translation-service/pkg/logger"
)

// Server hosts the leaflet translation HTTP API.
type Server struct {
	config         *config.Config
	router         *mux.Router
	handlerManager *handler.HandlerManager
}

// NewServer constructs the long-lived services (orchestrator, store) once
// and wires them into the router.
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repository.InitStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	service, err := translation.GetService(cfg)
	if err != nil {
		return nil, err
	}
	service.Initialize()

	router := mux.NewRouter()
	handlerManager := handler.NewHandlerManager(cfg, service, store)
	handlerManager.SetupAllRoutes(router)

	return &Server{
		config:         cfg,
		router:         router,
		handlerManager: handlerManager,
	}, nil
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	server := &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Base().Info("starting server",
		zap.String("addr", s.config.Addr()),
		zap.String("env", s.config.AppEnv),
	)
	return server.ListenAndServe()
}

func main() {
	// Load .env for local development; environment set by the deployment
	// takes precedence.
	if err := godotenv.Load(); err != nil {
		log.Printf("info: .env file not found or skipped: %v", err)
	}

	if _, err := logger.Init(os.Getenv("LOG_ENV")); err != nil {
		log.Printf("failed to initialize zap logger, falling back to std log: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Base().Fatal("invalid configuration", zap.Error(err))
	}

	server, err := NewServer(cfg)
	if err != nil {
		logger.Base().Fatal("failed to create server", zap.Error(err))
	}

	if err := server.Start(); err != nil {
		logger.Base().Fatal("server failed", zap.Error(err))
	}
}
