package main

import (
	"flag"
	"fmt"
	"log"

	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

func main() {
	migrationsPath := flag.String("path", "database/migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	sourceURL := "file://" + *migrationsPath
	databaseURL := fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)

	l.Info("Running migrations", zap.String("source", sourceURL), zap.String("database", cfg.DB.DBName))
	if err := database.RunMigrations(sourceURL, databaseURL); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied")
}
