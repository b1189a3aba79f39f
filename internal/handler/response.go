// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindmate-go/internal/middleware"
	"mindmate-go/internal/model"
	"mindmate-go/pkg/log"
)

// 客户端输入错误的固定文案。
const (
	msgMessageRequired = "Message is required"
	msgJournalRequired = "Journal text is required"
)

// errorResponder 统一处理 400/500 响应。
type errorResponder struct {
	exposeErrors bool
}

func (e errorResponder) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg})
}

// internal 记录错误并返回 500；exposeErrors 为 false 时只返回通用文案。
func (e errorResponder) internal(c *gin.Context, op string, err error) {
	log.Errorw(op+" failed",
		"requestID", c.GetString(middleware.RequestIDKey),
		"error", err,
	)
	msg := middleware.GenericErrorMessage
	if e.exposeErrors {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg})
}
