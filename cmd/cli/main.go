package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/arrahmanlabs/waitlist-api/config"
	"github.com/arrahmanlabs/waitlist-api/domain/backup"
	"github.com/arrahmanlabs/waitlist-api/domain/waitlist"
	"github.com/arrahmanlabs/waitlist-api/internal/log"
	"github.com/arrahmanlabs/waitlist-api/pkg/migrations"
	"github.com/arrahmanlabs/waitlist-api/pkg/utils"
	"gorm.io/gorm"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "migrate":
		runMigrate(logger)
		return

	case "backup":
		runBackup(logger)
		return

	case "export-csv":
		runExportCSV(logger)
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func runMigrate(logger *log.Logger) {
	db := mustConnect(logger)

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance for migration", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	migrationsDir := utils.GetEnvTrimmedOrDefault("MIGRATIONS_DIR", "migrations")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrations.Up(ctx, sqlDB, migrations.Config{Dir: migrationsDir, Logger: logger}); err != nil {
		logger.Error("Database migration failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Database migrations completed")
}

func runBackup(logger *log.Logger) {
	db := mustConnect(logger)
	defer closeDB(db, logger)

	service := newBackupService(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fileName, err := service.CreateSnapshot(ctx)
	if err != nil {
		logger.Error("Backup failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Backup completed", "file", fileName)
}

func runExportCSV(logger *log.Logger) {
	db := mustConnect(logger)
	defer closeDB(db, logger)

	service := newBackupService(db, logger)

	exportDir := utils.GetEnvTrimmedOrDefault("EXPORT_DIR", ".")
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		logger.Error("Failed to create export directory", "error", err.Error())
		os.Exit(1)
	}

	fileName := exportDir + "/waitlist_responses_" + time.Now().UTC().Format("20060102_150405") + ".csv"

	file, err := os.Create(fileName)
	if err != nil {
		logger.Error("Failed to create export file", "error", err.Error())
		os.Exit(1)
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rows, err := service.WriteCSV(ctx, file)
	if err != nil {
		logger.Error("CSV export failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("CSV export completed", "file", fileName, "rows", rows)
}

func newBackupService(db *gorm.DB, logger *log.Logger) backup.BackupService {
	repository := waitlist.NewWaitlistRepository(db)
	return backup.NewBackupService(logger, repository, utils.GetEnvTrimmed("BACKUP_DIR"))
}

func mustConnect(logger *log.Logger) *gorm.DB {
	dbCfg := &config.DBConfig{}
	db, err := config.NewDatabase(logger, dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err.Error())
		os.Exit(1)
	}

	return db
}

func closeDB(db *gorm.DB, logger *log.Logger) {
	config.CloseDatabase(db, logger)
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate     Run database migrations and exit")
	fmt.Println("  backup      Write a SQL snapshot of the waitlist to BACKUP_DIR")
	fmt.Println("  export-csv  Export every waitlist response as CSV to EXPORT_DIR")
}
