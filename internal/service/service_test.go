package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindmate-go/internal/config"
	"mindmate-go/internal/model"
	"mindmate-go/pkg/llm"
	"mindmate-go/pkg/llm/llmtest"
)

var testCompanion = config.CompanionConfig{
	Chat:  config.GenerationConfig{Model: "gpt-4.1-nano", MaxTokens: 75, Temperature: llm.Float64(0.7)},
	Emoji: config.GenerationConfig{Model: "gpt-4.1-nano", MaxTokens: 25},
	Text:  config.GenerationConfig{Model: "gpt-4.1-nano", MaxTokens: 75},
}

var testMood = config.MoodConfig{Generation: config.GenerationConfig{Model: "gpt-4.1-mini", MaxTokens: 5}}

func TestReply(t *testing.T) {
	fake := &llmtest.Fake{Text: "  That sounds heavy. I'm here with you.\n"}
	svc := NewCompanionService(fake, testCompanion)

	r, err := svc.Reply(context.Background(), "  I feel overwhelmed today ")
	require.NoError(t, err)
	assert.Equal(t, "That sounds heavy. I'm here with you.", r.Text)
	assert.False(t, r.Fallback)

	req := fake.Last()
	assert.Equal(t, "gpt-4.1-nano", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, companionPersona, req.Messages[0].Content)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "I feel overwhelmed today"}, req.Messages[1])
	require.NotNil(t, req.Generation.MaxTokens)
	assert.Equal(t, 75, *req.Generation.MaxTokens)
	require.NotNil(t, req.Generation.Temperature)
	assert.Equal(t, 0.7, *req.Generation.Temperature)
}

func TestReply_Fallback(t *testing.T) {
	svc := NewCompanionService(&llmtest.Fake{Text: "   "}, testCompanion)
	r, err := svc.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, fallbackChat, r.Text)
	assert.True(t, r.Fallback)
}

func TestEmptyMessageSkipsUpstream(t *testing.T) {
	fake := &llmtest.Fake{Text: "unused"}
	companion := NewCompanionService(fake, testCompanion)
	mood := NewMoodService(fake, testMood)

	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := companion.Reply(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmptyMessage)
		_, err = companion.SupportiveReply(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmptyMessage)
		_, err = mood.Detect(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Equal(t, 0, fake.Calls())
}

func TestSupportiveReply_Branches(t *testing.T) {
	cases := []struct {
		name      string
		message   string
		emojiOnly bool
		maxTokens int
		prompt    string
		fallback  string
	}{
		{"emoji only", "😊", true, 25, emojiPrompt, fallbackEmoji},
		{"emoji with text", "😊 I feel good", false, 75, feelingsPrompt, fallbackText},
		{"plain text", "work was rough", false, 75, feelingsPrompt, fallbackText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &llmtest.Fake{}
			svc := NewCompanionService(fake, testCompanion)

			r, err := svc.SupportiveReply(context.Background(), tc.message)
			require.NoError(t, err)
			assert.Equal(t, tc.emojiOnly, r.EmojiOnly)
			assert.Equal(t, tc.fallback, r.Text)
			assert.True(t, r.Fallback)

			req := fake.Last()
			assert.Equal(t, tc.prompt, req.Messages[0].Content)
			require.NotNil(t, req.Generation.MaxTokens)
			assert.Equal(t, tc.maxTokens, *req.Generation.MaxTokens)
			assert.Nil(t, req.Generation.Temperature)
		})
	}
}

func TestReply_ZeroTemperatureIsSent(t *testing.T) {
	cfg := testCompanion
	cfg.Chat.Temperature = llm.Float64(0)
	fake := &llmtest.Fake{Text: "ok"}

	_, err := NewCompanionService(fake, cfg).Reply(context.Background(), "hello")
	require.NoError(t, err)
	req := fake.Last()
	require.NotNil(t, req.Generation.Temperature)
	assert.Equal(t, 0.0, *req.Generation.Temperature)
}

func TestUpstreamErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	fake := &llmtest.Fake{Err: boom}

	_, err := NewCompanionService(fake, testCompanion).SupportiveReply(context.Background(), "hi")
	assert.ErrorIs(t, err, boom)
	_, err = NewMoodService(fake, testMood).Detect(context.Background(), "today was fine")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, fake.Calls())
}

func TestDetect(t *testing.T) {
	cases := []struct {
		upstream string
		want     model.Mood
		fallback bool
	}{
		{"Happy", model.MoodHappy, false},
		{" anxious.\n", model.MoodAnxious, false},
		{"", model.MoodNeutral, true},
		{"Melancholic", model.MoodNeutral, true},
	}
	for _, tc := range cases {
		fake := &llmtest.Fake{Text: tc.upstream}
		r, err := NewMoodService(fake, testMood).Detect(context.Background(), "I passed my exam!")
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.Mood, tc.upstream)
		assert.Equal(t, tc.fallback, r.Fallback, tc.upstream)

		req := fake.Last()
		assert.Equal(t, "gpt-4.1-mini", req.Model)
		assert.Equal(t, moodPrompt, req.Messages[0].Content)
		assert.Equal(t, 5, *req.Generation.MaxTokens)
	}
}
