package database

import (
	"fmt"

	"focusgame-go/internal/config"
	logging "focusgame-go/internal/logging"
	"focusgame-go/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// gen_random_uuid() ships with Postgres 13+; the extension covers
	// older servers.
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to ensure pgcrypto extension", zap.Error(err))
	}

	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.Patient{},
		&models.Session{},
		&models.GameResult{},
		&models.GoNoGoMetrics{},
		&models.SequenceMemoryMetrics{},
		&models.MatchingCardsMetrics{},
		&models.AttentionAnalysis{},
		&models.MemoryAnalysis{},
		&models.ImpulseAnalysis{},
		&models.ExecutiveFunctionAnalysis{},
		&models.NormativeData{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// One reference row per domain, age band and clinical group.
	normIndex := `CREATE UNIQUE INDEX IF NOT EXISTS idx_normative_lookup ON normative_data (domain, age_group, clinical_group);`
	if err := DB.Exec(normIndex).Error; err != nil {
		log.Fatal("Failed to create unique index on normative data", zap.Error(err))
	}

	// Latest-per-session reads order each analysis table by creation time.
	analysisTables := []string{
		"attention_analyses",
		"memory_analyses",
		"impulse_analyses",
		"executive_function_analyses",
	}
	for _, table := range analysisTables {
		stmt := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_session_created ON %s (session_id, created_at DESC);`, table, table)
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatal("Failed to create index on analysis table", zap.String("table", table), zap.Error(err))
		}
	}
	log.Info("Custom indexes ensured successfully.")
}
