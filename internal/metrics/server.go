package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skillshare-backend/internal/logger"
)

// Server exposes the Prometheus scrape endpoint on its own port.
type Server struct {
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(address string, port int, log *logger.Logger) *Server {
	return &Server{
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info("Starting metrics server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
