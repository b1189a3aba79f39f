package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mindmate-go/internal/model"
	"mindmate-go/pkg/log"
)

// StaticKeyAuth 要求请求携带 "Authorization: Bearer <key>"，key 必须是 keys 之一。
// keys 为空时不做任何校验。
func StaticKeyAuth(keys []string) gin.HandlerFunc {
	var allowed [][]byte
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			allowed = append(allowed, []byte(k))
		}
	}
	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Missing authorization header"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid authorization header"})
			return
		}
		token := []byte(strings.TrimPrefix(authHeader, bearerPrefix))

		for _, k := range allowed {
			if subtle.ConstantTimeCompare(token, k) == 1 {
				c.Next()
				return
			}
		}
		log.Warnw("rejected request with unknown api key",
			"requestID", c.GetString(RequestIDKey),
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid API key"})
	}
}
