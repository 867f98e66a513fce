package main

import (
	"os"
	"syscall"

	"github.com/inkwell/internal/app"
	"github.com/inkwell/internal/cache"
	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/models"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	// 初始化数据库
	db, err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.ToDBOptions())
	if err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	defer func() {
		_ = models.CloseDB(db)
		_ = cache.Close()
	}()

	// 自动迁移数据库表
	if err := models.AutoMigrate(db); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		DB:      db,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	title := color.New(color.FgHiMagenta, color.Bold)
	title.Println("Inkwell API")
	color.Cyan("Authors and posts with clickbait-checked titles")
	color.New(color.Faint).Println("--------------------------------------------------------------")
}
