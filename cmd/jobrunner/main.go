package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

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
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'report-overdue-rentals', 'report-over-committed', 'all-nightly')")
	flag.Parse()

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
	logger.Info("Starting Rentaldesk Job Runner...", "log_level", cfg.Log.Level)

	// Initialize the persistence backend and load the collections
	kv, err := openKVStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	store, err := localstore.Open(context.Background(), kv)
	if err != nil {
		logger.Error("Failed to load collections", "error", err)
		log.Fatalf("Failed to load collections: %v", err)
	}
	defer store.Close()

	// Initialize Services
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.EquipmentRepository)

	jobRunner := jobs.NewJobRunner(equipmentSvc, rentalSvc, cfg)

	// Manual one-shot execution
	if *runOnce != "" {
		switch *runOnce {
		case "report-overdue-rentals":
			jobRunner.ReportOverdueRentals()
		case "report-over-committed":
			jobRunner.ReportOverCommittedEquipment()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Scheduled execution until interrupted
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
}

// openKVStore builds the key-value store selected by the configuration.
func openKVStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Type {
	case "memory":
		return kvstore.NewMemoryStore(), nil
	case "file":
		return kvstore.NewFileStore(cfg.Storage.DataDir)
	case "sqlite":
		return kvstore.NewSQLiteStore(cfg.Storage.SQLitePath)
	case "postgres":
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
