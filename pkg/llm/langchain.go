package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"mindmate-go/internal/config"
)

// defaultTemperature 是 OpenAI 在请求不带 temperature 时使用的值；langchaingo 总会发送该字段。
const defaultTemperature = 1.0

// emptyResponseMessage 对应 langchaingo 内部客户端在 choices 为空时返回的错误。
const emptyResponseMessage = "empty response"

type langChainClient struct {
	cfg config.LLMConfig
	llm llms.Model
}

// NewLangChainClient returns a Client backed by langchaingo's OpenAI model.
func NewLangChainClient(cfg config.LLMConfig, httpClient *http.Client) (Client, error) {
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(baseURLOrDefault(cfg.BaseURL)),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create langchain openai model: %w", err)
	}
	return &langChainClient{cfg: cfg, llm: model}, nil
}

func (c *langChainClient) Complete(ctx context.Context, r Request) (string, error) {
	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	content := make([]llms.MessageContent, 0, len(r.Messages))
	for _, m := range r.Messages {
		content = append(content, llms.TextParts(chatMessageType(m.Role), m.Content))
	}

	opts := []llms.CallOption{llms.WithModel(r.Model)}
	if r.Generation.MaxTokens != nil {
		opts = append(opts, llms.WithMaxTokens(*r.Generation.MaxTokens))
	}
	temperature := defaultTemperature
	if r.Generation.Temperature != nil {
		temperature = *r.Generation.Temperature
	}
	opts = append(opts, llms.WithTemperature(temperature))

	resp, err := c.llm.GenerateContent(ctx, content, opts...)
	if err != nil {
		if isEmptyResponse(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}

// isEmptyResponse reports whether err means the upstream answered without any choices.
func isEmptyResponse(err error) bool {
	if errors.Is(err, openai.ErrEmptyResponse) {
		return true
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if e.Error() == emptyResponseMessage {
			return true
		}
	}
	return false
}

func chatMessageType(role string) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
