package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"skillshare-backend/internal/config"
	learningplan_handler "skillshare-backend/internal/delivery/http/learningplan"
	"skillshare-backend/internal/delivery/http/middleware"
	post_handler "skillshare-backend/internal/delivery/http/post"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
	learningplan_service "skillshare-backend/internal/service/learningplan"
	post_service "skillshare-backend/internal/service/post"
)

type Server struct {
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(
	cfg *config.Config,
	postService post_service.Service,
	planService learningplan_service.Service,
	log *logger.Logger,
	provider metrics.Provider,
) *Server {
	r := chi.NewRouter()

	r.Use(chi_middleware.RealIP)
	r.Use(chi_middleware.Recoverer)
	r.Use(middleware.RequestLogger(log, provider))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	auth := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret, log)

	r.Route("/api", func(r chi.Router) {
		post_handler.RegisterRoutes(r, postService, auth)
		learningplan_handler.RegisterRoutes(r, planService)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.HTTPServer.Address, cfg.HTTPServer.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		address: cfg.HTTPServer.Address,
		port:    cfg.HTTPServer.Port,
		log:     log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
