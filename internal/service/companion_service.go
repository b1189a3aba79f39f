package service

import (
	"context"
	"fmt"
	"strings"

	"mindmate-go/internal/config"
	"mindmate-go/pkg/emoji"
	"mindmate-go/pkg/llm"
)

// Reply 是陪伴聊天的结果。
type Reply struct {
	Text string
	// Fallback 为 true 表示上游没有给出内容，Text 是兜底文案。
	Fallback bool
	// EmojiOnly 仅对 SupportiveReply 有意义。
	EmojiOnly bool
}

// CompanionService 定义了陪伴聊天的接口。
type CompanionService interface {
	// Reply 使用完整的 MindMate 人设回复（ai-chat）。
	Reply(ctx context.Context, message string) (Reply, error)
	// SupportiveReply 根据消息是否只含 emoji 选择简短或稍长的回复（ai-service）。
	SupportiveReply(ctx context.Context, message string) (Reply, error)
}

type companionService struct {
	llmClient llm.Client
	cfg       config.CompanionConfig
}

// NewCompanionService 创建一个新的 CompanionService 实例。
func NewCompanionService(llmClient llm.Client, cfg config.CompanionConfig) CompanionService {
	return &companionService{llmClient: llmClient, cfg: cfg}
}

func (s *companionService) Reply(ctx context.Context, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	text, err := s.llmClient.Complete(ctx, buildRequest(s.cfg.Chat, companionPersona, message))
	if err != nil {
		return Reply{}, fmt.Errorf("failed to generate reply: %w", err)
	}
	return finish(text, fallbackChat), nil
}

func (s *companionService) SupportiveReply(ctx context.Context, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	emojiOnly := emoji.IsEmojiOnly(message)
	gen, prompt, fallback := s.cfg.Text, feelingsPrompt, fallbackText
	if emojiOnly {
		gen, prompt, fallback = s.cfg.Emoji, emojiPrompt, fallbackEmoji
	}

	text, err := s.llmClient.Complete(ctx, buildRequest(gen, prompt, message))
	if err != nil {
		return Reply{}, fmt.Errorf("failed to generate reply: %w", err)
	}
	r := finish(text, fallback)
	r.EmojiOnly = emojiOnly
	return r, nil
}

// buildRequest 组装 system + user 两轮消息；未配置 Temperature 时不发送。
func buildRequest(gen config.GenerationConfig, system, user string) llm.Request {
	req := llm.Request{
		Model: gen.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		Generation: llm.GenerationParams{MaxTokens: llm.Int(gen.MaxTokens)},
	}
	if gen.Temperature != nil {
		req.Generation.Temperature = llm.Float64(*gen.Temperature)
	}
	return req
}

func finish(text, fallback string) Reply {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{Text: fallback, Fallback: true}
	}
	return Reply{Text: text}
}
