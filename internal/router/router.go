package router

import (
	"fmt"
	"strings"

	"github.com/inkwell/internal/cache"
	"github.com/inkwell/internal/config"
	apihandlers "github.com/inkwell/internal/http/handlers/api"
	"github.com/inkwell/internal/http/response"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "inkwell"
	}
	writeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:write", redisPrefix),
		WindowSeconds: cfg.RateLimit.WindowSeconds,
		MaxRequests:   cfg.RateLimit.MaxRequests,
	}
	// Redis 未启用时 Client 返回 nil，限流中间件直接放行
	writeLimit := RateLimitMiddleware(cache.Client(), writeRule, KeyByIP)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", handler.Healthz)

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/healthz", handler.Healthz)

		authors := apiV1.Group("/authors")
		{
			authors.GET("", handler.ListAuthors)
			authors.GET("/:id", handler.GetAuthor)
			authors.POST("", writeLimit, handler.CreateAuthor)
			authors.PUT("/:id", writeLimit, handler.UpdateAuthor)
			authors.DELETE("/:id", writeLimit, handler.DeleteAuthor)
		}

		posts := apiV1.Group("/posts")
		{
			posts.GET("", handler.ListPosts)
			posts.GET("/:id", handler.GetPost)
			posts.POST("", writeLimit, handler.CreatePost)
			posts.PUT("/:id", writeLimit, handler.UpdatePost)
			posts.DELETE("/:id", writeLimit, handler.DeletePost)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return r
}
