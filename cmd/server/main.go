package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"lawclerk/internal/config"
	"lawclerk/internal/handler"
	"lawclerk/internal/metrics"
	"lawclerk/internal/middleware"
	"lawclerk/internal/registry"
	"lawclerk/internal/service/search"
	"lawclerk/internal/service/search/billtext"
	"lawclerk/internal/service/search/providers"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		f, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer f.Close()
		logOut = io.MultiWriter(os.Stdout, f)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// Provider endpoint registry (embedded YAML)
	reg, err := registry.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load provider registry: %v", err)
	}

	metrics.Register()

	// Provider clients
	clEndpoint, err := reg.Endpoint(registry.ProviderCourtListener)
	if err != nil {
		log.Fatalf("Failed to resolve CourtListener endpoint: %v", err)
	}
	osEndpoint, err := reg.Endpoint(registry.ProviderOpenStates)
	if err != nil {
		log.Fatalf("Failed to resolve OpenStates endpoint: %v", err)
	}
	lsEndpoint, err := reg.Endpoint(registry.ProviderLegiScan)
	if err != nil {
		log.Fatalf("Failed to resolve LegiScan endpoint: %v", err)
	}
	scEndpoint, err := reg.Endpoint(registry.ProviderScholar)
	if err != nil {
		log.Fatalf("Failed to resolve scholar endpoint: %v", err)
	}

	courtListener := providers.NewCourtListenerClient(
		clEndpoint.WithBaseURL(cfg.CourtListenerBaseURL), cfg.CourtListenerToken, logger)
	openStates := providers.NewOpenStatesClient(
		osEndpoint.WithBaseURL(cfg.OpenStatesBaseURL), cfg.OpenStatesAPIKey, logger)
	legiScan := providers.NewLegiScanClient(
		lsEndpoint.WithBaseURL(cfg.LegiScanBaseURL), cfg.LegiScanAPIKey, logger)
	scholar := providers.NewScholarClient(
		scEndpoint.WithBaseURL(cfg.SerpAPIBaseURL), cfg.SerpAPIKey, logger)

	// Services
	caseLawService := search.NewCaseLawService(courtListener, logger)
	scholarService := search.NewScholarService(scholar, scEndpoint, logger)
	billSearchService := search.NewBillSearchService(openStates, legiScan, logger)
	extractor := billtext.NewExtractor(legiScan, logger)

	// Handlers
	searchHandler := handler.NewSearchHandler(caseLawService, scholarService, billSearchService, logger)
	billTextHandler := handler.NewBillTextHandler(extractor, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", searchHandler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/search/caselaw", searchHandler.CaseLaw)
	mux.HandleFunc("POST /api/search/caselaw", searchHandler.CaseLaw)
	mux.HandleFunc("GET /api/search/scholar", searchHandler.Scholar)
	mux.HandleFunc("POST /api/search/scholar", searchHandler.Scholar)
	mux.HandleFunc("GET /api/search/bills", searchHandler.Bills)
	mux.HandleFunc("POST /api/search/bills", searchHandler.Bills)
	mux.HandleFunc("GET /api/search/legislation", searchHandler.Legislation)
	mux.HandleFunc("POST /api/search/legislation", searchHandler.Legislation)

	mux.HandleFunc("GET /api/bills/{id}/text", billTextHandler.GetText)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID()(h)

	// CORS outermost so OPTIONS pre-flight never reaches the routes
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
