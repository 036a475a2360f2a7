package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/plasticbusters/plasticbusters/internal/session"
	"github.com/plasticbusters/plasticbusters/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router    *http.ServeMux
	port      int
	sessions  *session.Registry
	logger    *slog.Logger
	maxUpload int64
	now       func() time.Time
}

func NewServer(port int, sessions *session.Registry, logger *slog.Logger, maxUploadBytes int64) *Server {
	s := &Server{
		router:    http.NewServeMux(),
		port:      port,
		sessions:  sessions,
		logger:    logger,
		maxUpload: maxUploadBytes,
		now:       time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("GET /sobre", s.handleAbout)
	s.router.HandleFunc("GET /mapa", s.handleMap)
	s.router.HandleFunc("GET /dashboard", s.handleDashboard)
	s.router.HandleFunc("GET /plastico", s.handlePlasticForm)
	s.router.HandleFunc("GET /fungos", s.handleFungusForm)
	s.router.HandleFunc("POST /tema", s.handleToggleTheme)

	// Measurements
	s.router.HandleFunc("POST /dashboard/medicoes", s.handleSubmitMeasurement)
	s.router.HandleFunc("DELETE /dashboard/medicoes/{id}", s.handleRemoveMeasurement)
	s.router.HandleFunc("POST /dashboard/medicoes/{id}/remover", s.handleRemoveMeasurement)

	// Specimen sheets
	s.router.HandleFunc("POST /plastico", s.handleSavePlasticSheet)
	s.router.HandleFunc("POST /fungos", s.handleSaveFungusSheet)
	s.router.HandleFunc("GET /plastico/exportar", s.handleExportPlasticSheet)
	s.router.HandleFunc("GET /fungos/exportar", s.handleExportFungusSheet)

	// API endpoints (for the chart and map scripts)
	s.router.HandleFunc("GET /api/stats", s.handleAPIStats)
	s.router.HandleFunc("GET /api/charts/isolates", s.handleAPIChartIsolates)
	s.router.HandleFunc("GET /api/charts/collection", s.handleAPIChartCollection)
	s.router.HandleFunc("GET /api/charts/measurements", s.handleAPIChartMeasurements)
	s.router.HandleFunc("GET /api/map/sites", s.handleAPIMapSites)

	// Export
	s.router.HandleFunc("GET /api/export/measurements", s.handleAPIExportMeasurements)
}

// Handler returns the router wrapped in the request middleware.
func (s *Server) Handler() http.Handler {
	return middleware.HTMX(middleware.RequestLogger(s.logger)(s.router))
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "url", fmt.Sprintf("http://localhost:%d", s.port))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}
