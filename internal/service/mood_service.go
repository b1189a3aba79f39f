package service

import (
	"context"
	"fmt"
	"strings"

	"mindmate-go/internal/config"
	"mindmate-go/internal/model"
	"mindmate-go/pkg/llm"
)

// MoodResult 是情绪识别的结果。
type MoodResult struct {
	Mood model.Mood
	// Fallback 为 true 表示上游输出为空或不是已知标签，Mood 为 Neutral。
	Fallback bool
}

// MoodService 定义了日记情绪识别的接口。
type MoodService interface {
	Detect(ctx context.Context, journal string) (MoodResult, error)
}

type moodService struct {
	llmClient llm.Client
	cfg       config.MoodConfig
}

// NewMoodService 创建一个新的 MoodService 实例。
func NewMoodService(llmClient llm.Client, cfg config.MoodConfig) MoodService {
	return &moodService{llmClient: llmClient, cfg: cfg}
}

func (s *moodService) Detect(ctx context.Context, journal string) (MoodResult, error) {
	journal = strings.TrimSpace(journal)
	if journal == "" {
		return MoodResult{}, ErrEmptyMessage
	}

	text, err := s.llmClient.Complete(ctx, buildRequest(s.cfg.Generation, moodPrompt, journal))
	if err != nil {
		return MoodResult{}, fmt.Errorf("failed to detect mood: %w", err)
	}
	if mood, ok := model.ParseMood(text); ok {
		return MoodResult{Mood: mood}, nil
	}
	return MoodResult{Mood: model.MoodNeutral, Fallback: true}, nil
}
