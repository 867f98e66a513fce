package api

import (
	"errors"

	handlershared "github.com/inkwell/internal/http/handlers/shared"
	"github.com/inkwell/internal/http/response"
	"github.com/inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

var authorErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "author not found"},
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "invalid author id"},
}

var postErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "post not found"},
	{target: service.ErrInvalidID, code: response.CodeBadRequest, msg: "invalid post id"},
}

// respondWithMappedError 校验错误优先返回 422，其次按规则映射，最后回落到 500
func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackMsg string) {
	if handlershared.RespondValidationError(c, err) {
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			handlershared.RespondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	handlershared.RespondError(c, response.CodeInternal, fallbackMsg, err)
}

func respondBadRequest(c *gin.Context, err error) {
	handlershared.RespondError(c, response.CodeBadRequest, "bad request", err)
}
