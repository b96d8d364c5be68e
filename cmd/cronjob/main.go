package main

import (
	"database/sql"
	"flag"
	"log"

	"givehope-backend/internal/config"
	"givehope-backend/internal/jobs"
	"givehope-backend/internal/logger"
	"givehope-backend/internal/repository/postgres"
	"givehope-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Runs a single scheduled job by name and exits. Useful for manual
// execution and external schedulers:
//
//	cronjob -config config/config.dev.yaml -job weekly_digest
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	jobName := flag.String("job", "", "Job to run: pending_approvals_reminder, weekly_digest")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.Enabled)
	runner := jobs.NewJobRunner(db, store, emailSvc, cfg)

	if !runner.RunJob(*jobName) {
		log.Fatalf("Unknown job: %q", *jobName)
	}
}
