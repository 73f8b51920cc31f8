package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shipment-proof-service/api"
	"shipment-proof-service/config"
	"shipment-proof-service/core"
	"shipment-proof-service/handlers"
	"shipment-proof-service/messaging"
	"shipment-proof-service/models"
	"shipment-proof-service/services"
	"shipment-proof-service/storage"
	"shipment-proof-service/workers/sharelinks"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := core.NewLogger(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}

	err = db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Shipment{},
		&models.ProofVideo{},
		&models.ShareLink{},
	)
	if err != nil {
		log.Fatal(err)
	}

	blobs, err := storage.NewLocalStore(cfg.Storage.MediaDirectory)
	if err != nil {
		log.Fatal(err)
	}

	var publisher messaging.Publisher = messaging.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := messaging.NewAmqpPublisher(cfg.AMQP.URL, cfg.AMQP.QueueName, logger)
		if err != nil {
			log.Fatal(err)
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	authService := services.NewAuthService(logger, db, cfg.JWT.Secret, cfg.JWT.TokenHours)
	lifecycleService := services.NewLifecycleService(logger, db)
	proofService := services.NewProofService(logger, db, lifecycleService, blobs, publisher)
	shareLinkService := services.NewShareLinkService(logger, db)

	orchestrator := core.NewOrchestrator(logger, []core.Worker{
		sharelinks.NewWorker(logger, shareLinkService, cfg.CleanupSchedule),
	})

	c, err := orchestrator.Start(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer c.Stop()

	router := api.NewRouter(
		cfg,
		logger,
		authService,
		handlers.NewAuthHandler(authService),
		handlers.NewShipmentHandler(lifecycleService),
		handlers.NewProofHandler(proofService),
		handlers.NewShareLinkHandler(shareLinkService),
	)

	server := &http.Server{
		Addr:    ":" + cfg.HttpPort,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.HttpPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Wait for termination signal to exit gracefully
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
