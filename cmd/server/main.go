package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"cvpage/internal/config"
	"cvpage/internal/handler"
	"cvpage/internal/middleware"
	serviceCV "cvpage/internal/service/cv"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging, optionally tee'd to a rotating log file
	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := config.NewLogger(cfg, logOut)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"cv_path", cfg.CVPath,
		"static_dir", cfg.StaticDir,
	)

	// Page shell (default shell when no template is configured)
	var shell []byte
	if cfg.PageTemplate != "" {
		var err error
		shell, err = os.ReadFile(cfg.PageTemplate)
		if err != nil {
			log.Fatalf("Failed to read page template: %v", err)
		}
		logger.Info("page template loaded", "path", cfg.PageTemplate)
	}

	cvService := serviceCV.NewCVService(cfg.CVPath, shell, logger)
	cvHandler := handler.NewCVHandler(cvService, logger)

	logger.Info("services initialized")

	mux := http.NewServeMux()
	renderLimit := middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RenderRateLimit), cfg.RenderBurst))
	handler.RegisterRoutes(mux, cvHandler, http.FileServer(http.Dir(cfg.StaticDir)), renderLimit)

	// Order: CORS → OTel → RequestID → Logger → Recovery → Routes
	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	h := middleware.Chain(mux,
		corsHandler.Handler,
		middleware.OTel(cfg.ServiceName),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
