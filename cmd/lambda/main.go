// Package main 是 AWS Lambda（API Gateway HTTP API）部署方式的入口点。
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"

	"mindmate-go/internal/config"
	"mindmate-go/internal/lambdaproxy"
	"mindmate-go/internal/router"
	"mindmate-go/pkg/llm"
	"mindmate-go/pkg/log"
	"mindmate-go/pkg/metrics"
)

func main() {
	// Lambda 环境通常只有环境变量；MINDMATE_CONFIG 为空时不读取配置文件
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatal("上游 LLM 客户端初始化失败", err)
	}

	gin.SetMode(cfg.Server.Mode)
	r := router.New(cfg, llmClient, metrics.New())

	log.Info("Lambda 处理函数已就绪")
	lambda.Start(lambdaproxy.New(r).Handle)
}
