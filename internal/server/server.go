package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harwood/farmcore/internal/contract"
	"github.com/harwood/farmcore/internal/database"
	"github.com/harwood/farmcore/internal/economy"
	"github.com/harwood/farmcore/internal/farm"
	"github.com/harwood/farmcore/internal/handler"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/market"
	"github.com/harwood/farmcore/internal/metrics"
	"github.com/harwood/farmcore/internal/plot"
)

// Server hosts the HTTP API.
type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, farmService farm.Service, plotService plot.Service, economyService economy.Service, contractService contract.Service, marketService market.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	farmHandler := handler.NewFarmHandler(farmService)
	plotHandler := handler.NewPlotHandler(plotService, farmService)
	economyHandler := handler.NewEconomyHandler(economyService, farmService)
	contractHandler := handler.NewContractHandler(contractService, farmService)
	marketHandler := handler.NewMarketHandler(marketService, farmService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/crops", farmHandler.ListCrops)

		r.Route("/farm", func(r chi.Router) {
			r.Get("/", farmHandler.GetFarm)

			r.Route("/plots", func(r chi.Router) {
				r.Get("/", plotHandler.ListPlots)
				r.Post("/plant", plotHandler.Plant)
				r.Post("/harvest", plotHandler.Harvest)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", economyHandler.ListInventory)
				r.Post("/sell", economyHandler.SellCrop)
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", contractHandler.ListContracts)
				r.Post("/complete", contractHandler.CompleteContract)
			})
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/listings", marketHandler.ListOpenListings)
			r.Post("/listings", marketHandler.CreateListing)
			r.Post("/listings/buy", marketHandler.BuyListing)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes would drown out the useful lines.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
