package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindmate-go/internal/model"
	"mindmate-go/pkg/log"
)

// GenericErrorMessage 是不暴露内部错误时 500 响应使用的文案。
const GenericErrorMessage = "Internal server error"

// Recovery 捕获 handler 中的 panic，并以 {"error": ...} 的 JSON 形式返回 500。
func Recovery(exposeErrors bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorw("panic recovered",
			"requestID", c.GetString(RequestIDKey),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		msg := GenericErrorMessage
		if exposeErrors {
			msg = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg})
	})
}
