package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dimensional/internal/api"
	"dimensional/internal/config"
	"dimensional/internal/logger"
	"dimensional/units"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.InitFromString(cfg.Server.LogLevel)
	log := logger.New("server")

	reg, err := loadUnits(cfg.Units.CatalogFile)
	if err != nil {
		log.WithError(err).Fatal("loading unit catalog")
	}
	log.WithField("units", reg.Len()).Info("unit registry ready")

	// Create API server
	server := api.NewServer(reg, cfg.Sim)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Handler(),
	}

	// Start HTTP server in background
	go func() {
		log.WithField("port", cfg.Server.Port).Info("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown error")
	}

	log.Info("shutdown complete")
}

// loadUnits returns the built-in registry extended with the catalog at path, if any.
func loadUnits(path string) (*units.Registry, error) {
	reg := units.Builtin()
	if path == "" {
		return reg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := reg.Load(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}
