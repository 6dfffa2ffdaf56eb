package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "rentaldesk-backend/internal/api/http"
	"rentaldesk-backend/internal/config"
	"rentaldesk-backend/internal/jobs"
	"rentaldesk-backend/internal/kvstore"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/repository/localstore"
	"rentaldesk-backend/internal/scheduler"
	"rentaldesk-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load optional .env before reading configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentaldesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Storage configuration", "type", cfg.Storage.Type)

	// Initialize the persistence backend
	kv, err := openKVStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Load the collections
	store, err := localstore.Open(context.Background(), kv)
	if err != nil {
		logger.Error("Failed to load collections", "error", err)
		log.Fatalf("Failed to load collections: %v", err)
	}
	defer store.Close()

	// Initialize Services
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.EquipmentRepository)

	// Start the cron scheduler
	jobRunner := jobs.NewJobRunner(equipmentSvc, rentalSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Serve the JSON API
	router := httpapi.NewRouter(equipmentSvc, rentalSvc)
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

// openKVStore builds the key-value store selected by the configuration.
func openKVStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Type {
	case "memory":
		logger.Info("Using in-memory storage; data will not survive a restart")
		return kvstore.NewMemoryStore(), nil
	case "file":
		logger.Info("Using file storage", "data_dir", cfg.Storage.DataDir)
		return kvstore.NewFileStore(cfg.Storage.DataDir)
	case "sqlite":
		logger.Info("Using sqlite storage", "path", cfg.Storage.SQLitePath)
		return kvstore.NewSQLiteStore(cfg.Storage.SQLitePath)
	case "postgres":
		logger.Info("Using postgres storage", "host", cfg.Database.Host, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := kvstore.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		return kvstore.NewPostgresStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}
