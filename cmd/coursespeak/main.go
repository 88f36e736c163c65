package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/coursespeak/coursespeak/internal/auth"
	"github.com/coursespeak/coursespeak/internal/config"
	"github.com/coursespeak/coursespeak/internal/database"
	"github.com/coursespeak/coursespeak/internal/handlers"
	"github.com/coursespeak/coursespeak/internal/logger"
	"github.com/coursespeak/coursespeak/internal/server"
	"github.com/coursespeak/coursespeak/internal/store"
)

func main() {
	ctx := context.Background()

	// Load configuration from environment variables
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logg.Sync()

	logg.Info("starting coursespeak", "environment", cfg.App.Environment, "backend", cfg.Store.Backend)

	// Select the deal store backend once at startup.
	var st store.Store
	var db *database.DB
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err = database.NewDB(ctx, cfg)
		if err != nil {
			logg.Fatal("failed to connect to database", "error", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logg.Error("error closing database connections", "error", err)
			}
		}()
		pg := store.NewPostgresStore(db.Postgres)
		if err := pg.EnsureSchema(ctx); err != nil {
			logg.Fatal("failed to ensure schema", "error", err)
		}
		st = pg
	default:
		st = store.NewFileStore(cfg.Store.DataFile, cfg.Store.SeedFile, logg)
	}

	gate := auth.NewGate(cfg.Admin.Token)

	routerCfg := server.RouterConfig{
		Gate:           gate,
		Deals:          handlers.NewDealsHandler(logg, st),
		Admin:          handlers.NewAdminHandler(logg, st),
		Session:        handlers.NewSessionHandler(logg, gate, cfg.App.IsProduction()),
		Health:         handlers.NewHealthHandler(nil),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	if db != nil {
		routerCfg.Health = handlers.NewHealthHandler(db.Postgres)
	}
	router := server.NewRouter(routerCfg)

	// Create server; serve h2c so HTTP/2 works without TLS behind the proxy
	srv := &http.Server{
		Addr:           cfg.Server.GetServerAddr(),
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
		Handler:        h2c.NewHandler(router, &http2.Server{}),
	}

	// Start server in goroutine
	go func() {
		logg.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("shutting down server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Fatal("server forced to shutdown", "error", err)
	}

	logg.Info("server exited gracefully")
}
