// Package config 负责加载和管理应用程序的配置。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 是所有环境变量覆盖项的前缀，例如 MINDMATE_SERVER_PORT。
const EnvPrefix = "MINDMATE"

// LegacyAPIKeyEnv 是 Supabase 函数时代使用的 API key 变量名，继续兼容。
const LegacyAPIKeyEnv = "VALID_AI_KEY"

// 支持的上游提供方。
const (
	ProviderOpenAI    = "openai"
	ProviderLangChain = "langchain"
	ProviderGemini    = "gemini"
)

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Companion CompanionConfig `mapstructure:"companion"`
	Mood      MoodConfig      `mapstructure:"mood"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// ExposeErrors 为 true 时，500 响应体直接携带内部错误信息。
	ExposeErrors bool `mapstructure:"expose_errors"`
	// APIKeys 非空时，函数路由需要携带其中之一作为 Bearer token。
	APIKeys []string   `mapstructure:"api_keys"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig 存储跨域相关的配置。
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// LogBodies 为 true 时在 debug 级别记录请求/响应体（日记与聊天内容属于敏感数据）。
	LogBodies bool `mapstructure:"log_bodies"`
}

// LLMConfig 存储上游大语言模型服务的配置。
type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// GenerationConfig 配置单个端点的生成参数。Temperature 未配置（nil）时不发送，显式配置的 0 会原样发送。
type GenerationConfig struct {
	Model       string   `mapstructure:"model"`
	MaxTokens   int      `mapstructure:"max_tokens"`
	Temperature *float64 `mapstructure:"temperature"`
}

// generationSections 列出所有 GenerationConfig 所在的配置段。
var generationSections = []string{"companion.chat", "companion.emoji", "companion.text", "mood.generation"}

// CompanionConfig 对应两个陪伴聊天端点。
type CompanionConfig struct {
	// Chat 用于 ai-chat 端点。
	Chat GenerationConfig `mapstructure:"chat"`
	// Emoji 与 Text 用于 ai-service 端点的两个分支。
	Emoji GenerationConfig `mapstructure:"emoji"`
	Text  GenerationConfig `mapstructure:"text"`
}

// MoodConfig 对应情绪识别端点。
type MoodConfig struct {
	Generation GenerationConfig `mapstructure:"generation"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.expose_errors", true)
	v.SetDefault("server.api_keys", []string{})
	v.SetDefault("server.cors.allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output_path", "")
	v.SetDefault("log.log_bodies", false)

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", 30*time.Second)

	v.SetDefault("companion.chat.model", "gpt-4.1-nano")
	v.SetDefault("companion.chat.max_tokens", 75)
	v.SetDefault("companion.chat.temperature", 0.7)
	v.SetDefault("companion.emoji.model", "gpt-4.1-nano")
	v.SetDefault("companion.emoji.max_tokens", 25)
	v.SetDefault("companion.text.model", "gpt-4.1-nano")
	v.SetDefault("companion.text.max_tokens", 75)

	v.SetDefault("mood.generation.model", "gpt-4.1-mini")
	v.SetDefault("mood.generation.max_tokens", 5)
}

// Load 读取 .env（若存在）、YAML 配置文件（path 为空时跳过）以及环境变量，返回校验后的配置。
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("读取 .env 文件失败: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_key", EnvPrefix+"_LLM_API_KEY", LegacyAPIKeyEnv); err != nil {
		return nil, fmt.Errorf("绑定环境变量失败: %w", err)
	}
	// temperature 没有默认值，需要显式绑定才能从环境变量读取
	for _, section := range generationSections {
		if err := v.BindEnv(section + ".temperature"); err != nil {
			return nil, fmt.Errorf("绑定环境变量失败: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("无法将配置解析到结构体中: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查启动所必需的配置项。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("llm.api_key 未配置（可通过 %s 或 %s_LLM_API_KEY 设置）", LegacyAPIKeyEnv, EnvPrefix)
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderLangChain, ProviderGemini:
	default:
		return fmt.Errorf("不支持的 llm.provider: %q", c.LLM.Provider)
	}
	for name, g := range map[string]GenerationConfig{
		"companion.chat":  c.Companion.Chat,
		"companion.emoji": c.Companion.Emoji,
		"companion.text":  c.Companion.Text,
		"mood.generation": c.Mood.Generation,
	} {
		if g.Model == "" {
			return fmt.Errorf("%s.model 不能为空", name)
		}
		if g.MaxTokens <= 0 {
			return fmt.Errorf("%s.max_tokens 必须大于 0", name)
		}
	}
	return nil
}
