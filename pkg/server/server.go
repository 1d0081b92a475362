// Package server exposes the HTTP API: unsigned transaction assembly for
// campaign and provider mutations, plus read endpoints over on-chain state.
package server

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/soulboard/soulboard-server/pkg/oracle"
	"github.com/soulboard/soulboard-server/pkg/registry"
	"github.com/soulboard/soulboard-server/pkg/solana"
	"github.com/soulboard/soulboard-server/pkg/soulboard"
	"github.com/soulboard/soulboard-server/pkg/txn"
)

const lamportsPerSol = 1_000_000_000

type Server struct {
	log           *logrus.Entry
	client        solana.Client
	program       *soulboard.Program
	oracleProgram *oracle.Program
	builder       *txn.Builder
	bootstrapper  *registry.Bootstrapper

	router *chi.Mux
	srv    *http.Server
}

func New(
	client solana.Client,
	program *soulboard.Program,
	oracleProgram *oracle.Program,
	builder *txn.Builder,
	bootstrapper *registry.Bootstrapper,
	listenAddress string,
	requestTimeout time.Duration,
) *Server {
	s := &Server{
		log:           logrus.StandardLogger().WithField("type", "server"),
		client:        client,
		program:       program,
		oracleProgram: oracleProgram,
		builder:       builder,
		bootstrapper:  bootstrapper,
		router:        chi.NewRouter(),
	}

	s.setupRoutes(requestTimeout)

	s.srv = &http.Server{
		Addr:         listenAddress,
		Handler:      s.router,
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
	}

	return s
}

func (s *Server) setupRoutes(requestTimeout time.Duration) {
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(requestTimeout))
	s.router.Use(s.loggingMiddleware)
	s.router.Use(metricsMiddleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", s.handleCreateCampaign)
			r.Post("/budget", s.handleAddBudget)
			r.Post("/locations/add", s.handleAddLocation)
			r.Post("/locations/remove", s.handleRemoveLocation)
			r.Post("/complete", s.handleCompleteCampaign)
			r.Get("/", s.handleGetUserCampaigns)
			r.Get("/{campaignID}", s.handleGetCampaignDetails)
			r.Get("/{campaignID}/stats", s.handleGetCampaignStats)
		})

		r.Route("/providers", func(r chi.Router) {
			r.Post("/register", s.handleRegisterProvider)
			r.Post("/update", s.handleUpdateProvider)
			r.Post("/devices", s.handleAddDevice)
			r.Get("/", s.handleGetAllProviders)
			r.Get("/registry", s.handleGetRegistryInfo)
			r.Get("/registered/{address}", s.handleIsProviderRegistered)
			r.Get("/{address}", s.handleGetProviderDetails)
			r.Get("/{address}/devices", s.handleGetProviderDevices)
		})

		r.Get("/devices/available", s.handleGetAvailableDevices)
		r.Post("/registry/initialize", s.handleInitializeRegistry)

		r.Post("/contracts/call", s.handleContractCall)
		r.Get("/accounts/{address}", s.handleGetAccount)
		r.Get("/balance/{address}", s.handleGetBalance)

		r.Route("/oracle", func(r chi.Router) {
			r.Get("/feeds/{deviceID}", s.handleGetDeviceFeed)
			r.Get("/feeds/{deviceID}/exists", s.handleDeviceFeedExists)
		})
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Debug("handled request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run blocks serving requests until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.WithField("address", s.srv.Addr).Info("starting http server")

	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Router is exposed for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func solToLamports(sol float64) uint64 {
	return uint64(math.Round(sol * lamportsPerSol))
}

func lamportsToSol(lamports uint64) float64 {
	return float64(lamports) / lamportsPerSol
}
