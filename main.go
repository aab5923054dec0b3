package main

import (
	"context"
	"os/signal"
	"syscall"

	"focusgame-go/internal/config"
	"focusgame-go/internal/database"
	logger "focusgame-go/internal/logging"
	"focusgame-go/internal/repository"
	"focusgame-go/internal/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file, if present
	_ = godotenv.Load()

	// Configuration comes up before the logger; the logger reads its
	// rotation settings from it.
	if err := config.Init("."); err != nil {
		panic("failed to initialize configuration: " + err.Error())
	}

	// Initialize Logger
	log, err := logger.Init(config.Conf.Logging)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Hot-reload configuration changes from here on
	config.Watch(log)

	// Initialize Database
	database.Init(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed the normative reference table on first start
	if err := repository.SeedNormativeData(ctx, log, config.Conf.Assessment.NormsFile); err != nil {
		log.Fatal("Failed to seed normative data", zap.Error(err))
	}

	assessment := services.NewAssessmentService(log)
	scheduler := services.NewScheduler(log, assessment, config.Conf.Assessment)
	scheduler.Start(ctx)

	log.Info("Assessment engine running")
	<-ctx.Done()
	log.Info("Shutting down")
}
