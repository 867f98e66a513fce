package api

import "github.com/inkwell/internal/provider"

// Handler 作者与文章接口处理器
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
