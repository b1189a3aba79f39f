package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{LegacyAPIKeyEnv, EnvPrefix + "_LLM_API_KEY", EnvPrefix + "_SERVER_PORT", EnvPrefix + "_LLM_PROVIDER"} {
		t.Setenv(k, "")
	}
	for _, k := range []string{"COMPANION_CHAT", "COMPANION_EMOJI", "COMPANION_TEXT", "MOOD_GENERATION"} {
		t.Setenv(EnvPrefix+"_"+k+"_TEMPERATURE", "")
	}
}

func float64Ptr(v float64) *float64 { return &v }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(LegacyAPIKeyEnv, "sk-legacy")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-legacy", cfg.LLM.APIKey)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.ExposeErrors)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.AllowedOrigins)

	assert.Equal(t, GenerationConfig{Model: "gpt-4.1-nano", MaxTokens: 75, Temperature: float64Ptr(0.7)}, cfg.Companion.Chat)
	assert.Equal(t, GenerationConfig{Model: "gpt-4.1-nano", MaxTokens: 25}, cfg.Companion.Emoji)
	assert.Equal(t, GenerationConfig{Model: "gpt-4.1-nano", MaxTokens: 75}, cfg.Companion.Text)
	assert.Equal(t, GenerationConfig{Model: "gpt-4.1-mini", MaxTokens: 5}, cfg.Mood.Generation)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: "9000"
  expose_errors: false
  api_keys: ["k1", "k2"]
llm:
  provider: "langchain"
  api_key: "from-file"
  timeout: 5s
mood:
  generation:
    model: "gpt-4.1"
    max_tokens: 3
`)
	t.Setenv(EnvPrefix+"_SERVER_PORT", "9090")
	t.Setenv(LegacyAPIKeyEnv, "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.ExposeErrors)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Server.APIKeys)
	assert.Equal(t, ProviderLangChain, cfg.LLM.Provider)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, GenerationConfig{Model: "gpt-4.1", MaxTokens: 3}, cfg.Mood.Generation)
	// 未在文件中出现的段落保持默认值
	assert.Equal(t, 75, cfg.Companion.Chat.MaxTokens)
}

func TestLoad_ZeroTemperature(t *testing.T) {
	clearEnv(t)
	t.Setenv(LegacyAPIKeyEnv, "sk")
	path := writeConfig(t, `
companion:
  chat:
    temperature: 0
  text:
    temperature: 0.2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Companion.Chat.Temperature)
	assert.Equal(t, 0.0, *cfg.Companion.Chat.Temperature)
	require.NotNil(t, cfg.Companion.Text.Temperature)
	assert.Equal(t, 0.2, *cfg.Companion.Text.Temperature)
	assert.Nil(t, cfg.Companion.Emoji.Temperature)
	assert.Nil(t, cfg.Mood.Generation.Temperature)
}

func TestLoad_TemperatureFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(LegacyAPIKeyEnv, "sk")
	t.Setenv(EnvPrefix+"_MOOD_GENERATION_TEMPERATURE", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Mood.Generation.Temperature)
	assert.Equal(t, 0.0, *cfg.Mood.Generation.Temperature)
	assert.Nil(t, cfg.Companion.Text.Temperature)
}

func TestLoad_PrefixedKeyWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"_LLM_API_KEY", "prefixed")
	t.Setenv(LegacyAPIKeyEnv, "legacy")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.LLM.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	assert.ErrorContains(t, err, "llm.api_key")

	t.Setenv(LegacyAPIKeyEnv, "sk")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "读取配置文件失败")

	t.Setenv(EnvPrefix+"_LLM_PROVIDER", "anthropic")
	_, err = Load("")
	assert.ErrorContains(t, err, "llm.provider")
}

func TestValidate_Generation(t *testing.T) {
	cfg := Config{
		LLM: LLMConfig{Provider: ProviderOpenAI, APIKey: "k"},
		Companion: CompanionConfig{
			Chat:  GenerationConfig{Model: "m", MaxTokens: 1},
			Emoji: GenerationConfig{Model: "m", MaxTokens: 1},
			Text:  GenerationConfig{Model: "m", MaxTokens: 0},
		},
		Mood: MoodConfig{Generation: GenerationConfig{Model: "m", MaxTokens: 1}},
	}
	assert.ErrorContains(t, cfg.Validate(), "companion.text.max_tokens")
}
