package provider

import (
	"github.com/inkwell/internal/cache"
	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/repository"
	"github.com/inkwell/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	AuthorRepo repository.AuthorRepository
	PostRepo   repository.PostRepository

	// Services
	AuthorService *service.AuthorService
	PostService   *service.PostService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config: cfg,
		DB:     db,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	c.AuthorRepo = repository.NewAuthorRepository(c.DB)
	c.PostRepo = repository.NewPostRepository(c.DB)
}

func (c *Container) initServices() {
	c.AuthorService = service.NewAuthorService(c.AuthorRepo)
	c.PostService = service.NewPostService(c.PostRepo)
}
