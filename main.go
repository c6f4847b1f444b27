package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kaanc/movie-api/internal/config"
	"github.com/kaanc/movie-api/internal/handler"
	"github.com/kaanc/movie-api/internal/repository/sqlite"
	"github.com/kaanc/movie-api/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.UsingDefaultSecret() {
		slog.Warn("SECRET_KEY is not set; using the insecure default signing secret. Override it in any real deployment.")
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	authService := service.NewAuthService(db.Users(), db.Blacklist(), cfg.JWTSecret, cfg.BcryptCost)
	movieService := service.NewMovieService(db.Movies(), db.Favorites())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, movieService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestLogger(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Periodically prune blacklist entries that have outlived the longest
	// token lifetime.
	go sweepBlacklist(ctx, authService, cfg.BlacklistSweepInterval)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// sweepBlacklist removes expired revocation entries on a fixed interval
// until ctx is cancelled.
func sweepBlacklist(ctx context.Context, auth *service.AuthService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pruned, err := auth.PruneBlacklist(ctx)
			if err != nil {
				slog.Error("prune token blacklist", "error", err)
				continue
			}
			if pruned > 0 {
				slog.Info("pruned token blacklist", "removed", pruned)
			}
		}
	}
}
