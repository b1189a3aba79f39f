// Package lambdaproxy 把 API Gateway HTTP API（v2 负载）事件交给 Gin 引擎处理。
package lambdaproxy

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"mindmate-go/internal/middleware"
)

// Proxy 包装 ginadapter，并把 Lambda 的请求 ID 透传为 X-Request-ID。
type Proxy struct {
	adapter *ginadapter.GinLambdaV2
}

// New 基于已经装配好路由的 Gin 引擎创建 Proxy。
func New(r *gin.Engine) *Proxy {
	return &Proxy{adapter: ginadapter.NewV2(r)}
}

// Handle 是传给 lambda.Start 的处理函数。
func (p *Proxy) Handle(ctx context.Context, ev events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if id := ev.RequestContext.RequestID; id != "" && !hasHeader(ev.Headers, middleware.RequestIDHeader) {
		headers := make(map[string]string, len(ev.Headers)+1)
		for k, v := range ev.Headers {
			headers[k] = v
		}
		headers[strings.ToLower(middleware.RequestIDHeader)] = id
		ev.Headers = headers
	}
	return p.adapter.ProxyWithContext(ctx, ev)
}

// API Gateway 会把头名称转成小写，这里按大小写不敏感比较。
func hasHeader(headers map[string]string, name string) bool {
	for k, v := range headers {
		if strings.EqualFold(k, name) && v != "" {
			return true
		}
	}
	return false
}
