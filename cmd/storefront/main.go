package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zakia-developer558/geburtstagswunsche/internal/cart"
	"github.com/zakia-developer558/geburtstagswunsche/internal/config"
	"github.com/zakia-developer558/geburtstagswunsche/internal/db"
	"github.com/zakia-developer558/geburtstagswunsche/internal/events"
	"github.com/zakia-developer558/geburtstagswunsche/internal/favorites"
	httpserver "github.com/zakia-developer558/geburtstagswunsche/internal/http"
	"github.com/zakia-developer558/geburtstagswunsche/internal/shopapi"
	"github.com/zakia-developer558/geburtstagswunsche/internal/storage"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	// Favorites persistence: file slot by default, Postgres when configured.
	var favSlot storage.Slot
	var seqRepo events.SequenceRepository = events.NewMemorySequenceRepository()

	if cfg.FavoritesBackend == "postgres" {
		if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
			logger.Fatalf("run migrations: %v", err)
		}
		database := db.MustOpen(cfg.DatabaseDSN)
		defer database.Close()

		favSlot = storage.NewPostgresSlot(database, favorites.SlotName)
		seqRepo = events.NewSequenceRepository(database)
	} else {
		favSlot = storage.NewFileSlot(cfg.FavoritesFile)
	}

	hydrateCtx, cancelHydrate := context.WithTimeout(context.Background(), 5*time.Second)
	favStore := favorites.NewStore(hydrateCtx, favSlot, logger)
	cancelHydrate()

	// Checkout events: RabbitMQ when configured, otherwise log-only.
	var publisher events.OrderEventsPublisher = &events.LogOrderEventsPublisher{Logger: logger}
	if cfg.RabbitURL != "" {
		rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
		defer rabbitConn.Close()

		p, err := events.NewRabbitOrderEventsPublisher(rabbitConn, seqRepo)
		if err != nil {
			logger.Fatalf("failed to create order publisher: %v", err)
		}
		publisher = p
	}

	shopClient, err := shopapi.NewClient(cfg.ShopAPIURL, &http.Client{Timeout: cfg.UpstreamTimeout})
	if err != nil {
		logger.Fatalf("shop api client: %v", err)
	}

	router := httpserver.NewRouter(httpserver.Deps{
		Logger:                logger,
		CartStore:             cart.NewStore(),
		Favorites:             favStore,
		ShopAPI:               shopClient,
		EventPublisher:        publisher,
		ShippingFreeThreshold: cfg.ShippingFreeThreshold,
		ShippingFlatFee:       cfg.ShippingFlatFee,
		CORSAllowOrigins:      cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront-service listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
