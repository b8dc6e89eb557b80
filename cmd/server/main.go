package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/realty-hub/realty-hub/internal/api/http"
	appNegotiation "github.com/realty-hub/realty-hub/internal/application/negotiation"
	"github.com/realty-hub/realty-hub/internal/config"
	domainNegotiation "github.com/realty-hub/realty-hub/internal/domain/negotiation"
	"github.com/realty-hub/realty-hub/internal/infrastructure/events"
	"github.com/realty-hub/realty-hub/internal/infrastructure/pdfgen"
	"github.com/realty-hub/realty-hub/internal/infrastructure/postgres"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// repositories
	negotiationRepo := postgres.NewNegotiationRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	txManager := postgres.NewTxManager(pool)

	// infrastructure
	eventHub := events.NewHub()
	var renderer domainNegotiation.ProposalRenderer
	if cfg.PDFRendererURL != "" {
		renderer = pdfgen.NewClient(cfg.PDFRendererURL, logger)
	} else {
		logger.Warn().Msg("no proposal renderer configured, proposal documents will not be generated")
	}

	// services
	negotiationSvc := appNegotiation.NewService(
		negotiationRepo,
		propertyRepo,
		propertyRepo,
		documentRepo,
		txManager,
		eventHub,
		renderer,
		logger,
	)

	// API server
	apiServer := httpapi.NewServer(negotiationSvc, eventHub)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
	eventHub.Stop()
}
