// Package llm provides clients for chat-completion style Large Language Model APIs.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mindmate-go/internal/config"
)

// DefaultOpenAIBaseURL is used by the openai and langchain providers when llm.base_url is empty.
const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message 表示一条角色消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationParams 控制生成行为，nil 字段不发送给上游。
type GenerationParams struct {
	Temperature *float64
	MaxTokens   *int
}

// Request is a single, non-streaming completion request.
type Request struct {
	Model      string
	Messages   []Message
	Generation GenerationParams
}

// Client defines the interface for an LLM client.
type Client interface {
	// Complete 发送一次补全请求，返回第一个 choice 的原始文本；上游没有给出内容时返回空字符串。
	Complete(ctx context.Context, req Request) (string, error)
}

// APIError is returned when the upstream API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chat api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("chat api returned status %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a new LLM client based on the provider in the config.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	httpClient := &http.Client{}
	switch cfg.Provider {
	case "", config.ProviderOpenAI:
		return NewOpenAIClient(cfg, httpClient), nil
	case config.ProviderLangChain:
		return NewLangChainClient(cfg, httpClient)
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg, httpClient)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// Int returns a pointer to v, for GenerationParams.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v, for GenerationParams.
func Float64(v float64) *float64 { return &v }

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func baseURLOrDefault(u string) string {
	if u == "" {
		return DefaultOpenAIBaseURL
	}
	return u
}
