package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/courtside/tennis-record/internal/config"
	server "github.com/courtside/tennis-record/internal/http"
	"github.com/courtside/tennis-record/internal/metrics"
	"github.com/courtside/tennis-record/internal/player"
	"github.com/courtside/tennis-record/internal/ranking"
	"github.com/courtside/tennis-record/internal/store"
	"github.com/courtside/tennis-record/internal/team"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	// The dataset is generated once here and immutable afterwards, so the
	// query services share it without any locking.
	st := store.Seeded()
	log.Info("Seeded in-memory store",
		"players", len(st.Players()),
		"teams", len(st.Teams()),
		"rankings", len(st.Rankings()),
	)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	playerSvc := player.New(st, metricsSvc)
	teamSvc := team.New(st, metricsSvc)
	rankingSvc := ranking.New(st, metricsSvc)

	s := server.NewServer(playerSvc, teamSvc, rankingSvc, metricsSvc, metricsHandler, cfg)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
