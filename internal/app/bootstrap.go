package app

import (
	"errors"

	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/provider"
	"github.com/inkwell/internal/router"

	"gorm.io/gorm"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, db *gorm.DB) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if db == nil {
		return nil, errors.New("database is nil")
	}

	container := provider.NewContainer(cfg, db)
	engine := router.SetupRouter(cfg, container)
	return NewRunner(NewHTTPService(cfg.Server.Addr(), engine)), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.DB)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "driver", opts.Config.Database.Driver)
	return RunWithOptions(runner, opts)
}
