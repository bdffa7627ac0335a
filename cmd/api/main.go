package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zagadou92/franc1500/internal/config"
	"github.com/zagadou92/franc1500/internal/dashboard"
	dashboardStore "github.com/zagadou92/franc1500/internal/dashboard/store"
	"github.com/zagadou92/franc1500/internal/database"
	dashboardHttp "github.com/zagadou92/franc1500/internal/http"
	dashboardHandler "github.com/zagadou92/franc1500/internal/http/dashboard"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var db *sql.DB

	if cfg.DB.Skip {
		slog.Warn("database access disabled, serving empty data")
	} else {
		db, err = database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	var repo dashboard.Repository
	if db != nil {
		repo = dashboardStore.New(db)
	}

	var (
		dashboardService = dashboard.NewService(repo, slog.Default())
		dashboardH       = dashboardHandler.NewHandler(dashboardService)
	)

	router := dashboardHttp.New(dashboardH, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	slog.Info("server stopped")
}
