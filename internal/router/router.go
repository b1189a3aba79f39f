// Package router 组装 Gin 引擎：中间件、服务与全部路由。
// cmd/server 与 cmd/lambda 共用同一个引擎。
package router

import (
	"github.com/gin-gonic/gin"

	"mindmate-go/internal/config"
	"mindmate-go/internal/handler"
	"mindmate-go/internal/middleware"
	"mindmate-go/internal/service"
	"mindmate-go/pkg/llm"
	"mindmate-go/pkg/metrics"
)

// FunctionsPrefix 与 Supabase Edge Functions 的路径保持一致。
const FunctionsPrefix = "/functions/v1"

// New 创建路由引擎。llmClient 会被 m 包装以记录上游指标；m 不能为 nil。
func New(cfg *config.Config, llmClient llm.Client, m *metrics.Metrics) *gin.Engine {
	client := m.InstrumentClient(llmClient)
	companionService := service.NewCompanionService(client, cfg.Companion)
	moodService := service.NewMoodService(client, cfg.Mood)

	companionHandler := handler.NewCompanionHandler(companionService, m, cfg.Server.ExposeErrors)
	moodHandler := handler.NewMoodHandler(moodService, m, cfg.Server.ExposeErrors)

	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Log.LogBodies),
		middleware.Metrics(m),
		middleware.Recovery(cfg.Server.ExposeErrors),
		middleware.CORS(cfg.Server.CORS.AllowedOrigins),
	)

	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// 同时注册带前缀与不带前缀的函数路由
	for _, prefix := range []string{FunctionsPrefix, ""} {
		functions := r.Group(prefix)
		functions.Use(middleware.StaticKeyAuth(cfg.Server.APIKeys))
		{
			functions.POST("/ai-chat", companionHandler.Chat)
			functions.POST("/ai-service", companionHandler.Support)
			functions.POST("/analyze-journal", moodHandler.AnalyzeJournal)
		}
	}
	return r
}
