// Command api runs the news portal HTTP API: public article and
// category reads, the admin editorial surface behind JWT auth, contact
// intake, social media links, site settings and image upload.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"news-portal/internal/common/pagination"
	httpapi "news-portal/internal/handler/http"
	"news-portal/internal/handler/http/authh"
	categoryhttp "news-portal/internal/handler/http/category"
	contacthttp "news-portal/internal/handler/http/contact"
	newshttp "news-portal/internal/handler/http/news"
	"news-portal/internal/handler/http/requestid"
	settingshttp "news-portal/internal/handler/http/settings"
	socialmediahttp "news-portal/internal/handler/http/socialmedia"
	uploadhttp "news-portal/internal/handler/http/upload"
	"news-portal/internal/infra/adapter/persistence/postgres"
	"news-portal/internal/infra/db"
	"news-portal/internal/infra/upload"
	"news-portal/internal/observability/logging"
	authUC "news-portal/internal/usecase/auth"
	catUC "news-portal/internal/usecase/category"
	contactUC "news-portal/internal/usecase/contact"
	newsUC "news-portal/internal/usecase/news"
	settingsUC "news-portal/internal/usecase/settings"
	smUC "news-portal/internal/usecase/socialmedia"
	"news-portal/pkg/config"
)

func main() {
	logger := initLogger()

	secret := validateJWTSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	version := getVersion()
	handler := applyMiddleware(setupRoutes(database, secret, version), logger)
	runServer(handler, logger, version)
}

func initLogger() *slog.Logger {
	var logger *slog.Logger
	if config.GetEnvString("LOG_FORMAT", "json") == "text" {
		logger = logging.NewTextLogger()
	} else {
		logger = logging.NewLogger()
	}
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret refuses to boot with a missing or guessable
// signing secret. Every admin route depends on it.
func validateJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters",
			slog.Int("length", len(secret)))
		os.Exit(1)
	}

	weak := []string{"secret", "password", "test", "admin", "default"}
	lowered := strings.ToLower(secret)
	for _, w := range weak {
		if lowered == w || lowered == w+"123" {
			logger.Error("JWT_SECRET is a well-known weak value")
			os.Exit(1)
		}
	}
	return []byte(secret)
}

func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	return config.GetEnvString("VERSION", "dev")
}

func setupRoutes(database *sql.DB, secret []byte, version string) http.Handler {
	mux := http.NewServeMux()

	gate := authh.NewGate(secret)
	paginationCfg := pagination.LoadFromEnv()

	categoryRepo := postgres.NewCategoryRepo(database)
	authSvc := authUC.NewService(postgres.NewAdminRepo(database), secret)
	newsSvc := &newsUC.Service{Repo: postgres.NewNewsRepo(database), Categories: categoryRepo}
	catSvc := &catUC.Service{Repo: categoryRepo}
	contactSvc := &contactUC.Service{Repo: postgres.NewContactRepo(database)}
	smSvc := &smUC.Service{Repo: postgres.NewSocialMediaRepo(database)}
	settingsSvc := &settingsUC.Service{Repo: postgres.NewSettingsRepo(database)}

	// Per-IP limits on the abuse-prone endpoints only.
	loginLimiter := httpapi.NewRateLimiter(5, time.Minute)
	contactLimiter := httpapi.NewRateLimiter(3, time.Minute)
	uploadLimiter := httpapi.NewRateLimiter(20, time.Minute)

	authh.Register(mux, authSvc, gate, loginLimiter.Limit)
	newshttp.Register(mux, newsSvc, gate, paginationCfg)
	categoryhttp.Register(mux, catSvc, gate)
	contacthttp.Register(mux, contactSvc, gate, paginationCfg, contactLimiter.Limit)
	socialmediahttp.Register(mux, smSvc, gate)
	settingshttp.Register(mux, settingsSvc, gate)

	if uploader, err := upload.NewCloudinary(); err != nil {
		slog.Warn("image upload disabled", slog.String("error", err.Error()))
	} else {
		uploadhttp.Register(mux, uploadhttp.Handler{Uploader: uploader}, gate, uploadLimiter.Limit)
	}

	mux.Handle("GET /health", &httpapi.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &httpapi.ReadyHandler{DB: database})
	mux.Handle("GET /live", &httpapi.LiveHandler{})
	mux.Handle("GET /metrics", httpapi.MetricsHandler())

	return mux
}

// applyMiddleware wraps the mux outermost-first: the first entry sees
// the request before any other.
func applyMiddleware(handler http.Handler, logger *slog.Logger) http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		httpapi.CORS(),
		requestid.Middleware,
		httpapi.Recover(logger),
		httpapi.Logging(logger),
		httpapi.MetricsMiddleware,
		httpapi.Timeout(config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)),
		httpapi.LimitRequestBody(10 << 20),
		httpapi.InputValidation(),
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func runServer(handler http.Handler, logger *slog.Logger, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + config.GetEnvString("PORT", "8080"),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
