/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the register reconciliation server. Handles
  configuration, dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (optional) and environment configuration
  2. Open the SQLite store
  3. Load persisted history (corrupt data is discarded, never fatal)
  4. Build the session with the configured opening float
  5. Start the HTTP server with graceful shutdown

CONFIGURATION:
  REGISTER_PORT              HTTP server port (default: 8080)
  REGISTER_DB                SQLite database path (default: register.db)
                             Use ":memory:" for an in-memory database
  REGISTER_OPENING_BALANCE   Default opening float (default: 73430)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Persistence implementation
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/register-engine/api"
	"github.com/warp/register-engine/config"
	"github.com/warp/register-engine/history"
	"github.com/warp/register-engine/register"
	"github.com/warp/register-engine/store/sqlite"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg := config.Load()

	// Persistence
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer store.Close()

	// History (load once at startup; never blocks on bad data)
	hist := history.NewStore(store, log)
	hist.Load(context.Background())

	// One register session per process
	session := register.NewSession(register.DefaultCatalog(), cfg.OpeningBalance)

	handler := api.NewHandler(session, hist, log)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", server.Addr, "db", cfg.DBPath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
