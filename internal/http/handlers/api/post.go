package api

import (
	"github.com/inkwell/internal/cache"
	handlershared "github.com/inkwell/internal/http/handlers/shared"
	"github.com/inkwell/internal/http/response"
	"github.com/inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// PostUpsertRequest 文章创建/更新请求
type PostUpsertRequest struct {
	Title    string  `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	Category *string `json:"category"`
}

func (r PostUpsertRequest) toInput() service.CreatePostInput {
	return service.CreatePostInput{
		Title:    r.Title,
		Content:  r.Content,
		Summary:  r.Summary,
		Category: r.Category,
	}
}

// ListPosts 获取文章列表，支持分类与标题搜索
func (h *Handler) ListPosts(c *gin.Context) {
	page, pageSize := handlershared.NormalizePagination(
		handlershared.QueryInt(c, "page", 1),
		handlershared.QueryInt(c, "page_size", 20),
	)

	posts, total, err := h.PostService.List(c.Query("category"), c.Query("search"), page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, "post fetch failed")
		return
	}
	response.SuccessWithPage(c, posts, response.NewPagination(page, pageSize, total))
}

// GetPost 获取文章详情
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		respondWithMappedError(c, service.ErrInvalidID, postErrorRules, "")
		return
	}

	ctx := c.Request.Context()
	cached, hit, err := cache.GetPost(ctx, id)
	if err != nil {
		handlershared.RequestLog(c).Warnw("post_cache_get_failed", "post_id", id, "error", err)
	}
	if hit {
		response.Success(c, cached)
		return
	}

	post, err := h.PostService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, "post fetch failed")
		return
	}
	if err := cache.SetPost(ctx, post); err != nil {
		handlershared.RequestLog(c).Warnw("post_cache_set_failed", "post_id", id, "error", err)
	}
	response.Success(c, post)
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	post, err := h.PostService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, "post create failed")
		return
	}
	response.Success(c, post)
}

// UpdatePost 更新文章，全部字段重新校验
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		respondWithMappedError(c, service.ErrInvalidID, postErrorRules, "")
		return
	}
	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	post, err := h.PostService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, "post update failed")
		return
	}
	if err := cache.DelPost(c.Request.Context(), id); err != nil {
		handlershared.RequestLog(c).Warnw("post_cache_del_failed", "post_id", id, "error", err)
	}
	response.Success(c, post)
}

// DeletePost 删除文章
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		respondWithMappedError(c, service.ErrInvalidID, postErrorRules, "")
		return
	}

	if err := h.PostService.Delete(id); err != nil {
		respondWithMappedError(c, err, postErrorRules, "post delete failed")
		return
	}
	if err := cache.DelPost(c.Request.Context(), id); err != nil {
		handlershared.RequestLog(c).Warnw("post_cache_del_failed", "post_id", id, "error", err)
	}
	response.Success(c, nil)
}
