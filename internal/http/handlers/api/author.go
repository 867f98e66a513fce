package api

import (
	"github.com/inkwell/internal/cache"
	handlershared "github.com/inkwell/internal/http/handlers/shared"
	"github.com/inkwell/internal/http/response"
	"github.com/inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthorUpsertRequest 作者创建/更新请求
type AuthorUpsertRequest struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

func (r AuthorUpsertRequest) toInput() service.CreateAuthorInput {
	return service.CreateAuthorInput{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
	}
}

// ListAuthors 获取作者列表
func (h *Handler) ListAuthors(c *gin.Context) {
	page, pageSize := handlershared.NormalizePagination(
		handlershared.QueryInt(c, "page", 1),
		handlershared.QueryInt(c, "page_size", 20),
	)

	authors, total, err := h.AuthorService.List(c.Query("search"), page, pageSize)
	if err != nil {
		respondWithMappedError(c, err, authorErrorRules, "author fetch failed")
		return
	}
	response.SuccessWithPage(c, authors, response.NewPagination(page, pageSize, total))
}

// GetAuthor 获取作者详情
func (h *Handler) GetAuthor(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		respondWithMappedError(c, service.ErrInvalidID, authorErrorRules, "")
		return
	}

	ctx := c.Request.Context()
	cached, hit, err := cache.GetAuthor(ctx, id)
	if err != nil {
		handlershared.RequestLog(c).Warnw("author_cache_get_failed", "author_id", id, "error", err)
	}
	if hit {
		response.Success(c, cached)
		return
	}

	author, err := h.AuthorService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, authorErrorRules, "author fetch failed")
		return
	}
	if err := cache.SetAuthor(ctx, author); err != nil {
		handlershared.RequestLog(c).Warnw("author_cache_set_failed", "author_id", id, "error", err)
	}
	response.Success(c, author)
}

// CreateAuthor 创建作者
func (h *Handler) CreateAuthor(c *gin.Context) {
	var req AuthorUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	author, err := h.AuthorService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, authorErrorRules, "author create failed")
		return
	}
	response.Success(c, author)
}

// UpdateAuthor 更新作者
func (h *Handler) UpdateAuthor(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		respondWithMappedError(c, service.ErrInvalidID, authorErrorRules, "")
		return
	}
	var req AuthorUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	author, err := h.AuthorService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, authorErrorRules, "author update failed")
		return
	}
	if err := cache.DelAuthor(c.Request.Context(), id); err != nil {
		handlershared.RequestLog(c).Warnw("author_cache_del_failed", "author_id", id, "error", err)
	}
	response.Success(c, author)
}

// DeleteAuthor 删除作者
func (h *Handler) DeleteAuthor(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		respondWithMappedError(c, service.ErrInvalidID, authorErrorRules, "")
		return
	}

	if err := h.AuthorService.Delete(id); err != nil {
		respondWithMappedError(c, err, authorErrorRules, "author delete failed")
		return
	}
	if err := cache.DelAuthor(c.Request.Context(), id); err != nil {
		handlershared.RequestLog(c).Warnw("author_cache_del_failed", "author_id", id, "error", err)
	}
	response.Success(c, nil)
}
