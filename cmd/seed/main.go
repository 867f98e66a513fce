package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/inkwell/internal/cache"
	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/models"
	"github.com/inkwell/internal/seed"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// .env 可选，缺失时沿用进程环境变量
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	db, err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.ToDBOptions())
	if err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	defer func() {
		_ = models.CloseDB(db)
	}()

	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Fatalf("Failed to init redis: %v", err)
	}
	defer func() {
		_ = cache.Close()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	seeder := seed.New(db, seed.NewFakeGenerator(cfg.Seed.RandomSeed), seed.Options{
		AuthorCount: cfg.Seed.AuthorCount,
		PostCount:   cfg.Seed.PostCount,
		Logger:      logger.S(),
	})
	result, err := seeder.Run(ctx)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		stdLog.Fatalf("Failed to seed database: %v", err)
	}

	color.Green("Created %d authors and %d posts successfully!", result.Authors, result.Posts)
}
