package api

import (
	"github.com/inkwell/internal/cache"
	handlershared "github.com/inkwell/internal/http/handlers/shared"
	"github.com/inkwell/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Healthz 检查数据库与缓存连通性
func (h *Handler) Healthz(c *gin.Context) {
	if h.DB == nil {
		handlershared.RespondError(c, response.CodeInternal, "database unavailable", nil)
		return
	}
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		handlershared.RespondError(c, response.CodeInternal, "database unavailable", err)
		return
	}

	cacheStatus := "disabled"
	if cache.Enabled() {
		cacheStatus = "ok"
		if err := cache.Ping(c.Request.Context()); err != nil {
			handlershared.RequestLog(c).Warnw("healthz_cache_ping_failed", "error", err)
			cacheStatus = "unavailable"
		}
	}
	response.Success(c, gin.H{"database": "ok", "cache": cacheStatus})
}
