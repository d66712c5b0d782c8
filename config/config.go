package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"interview-voice-api/internal/util"

	"github.com/joho/godotenv"
)

const (
	ChatProviderOpenAI = "openai"
	ChatProviderGemini = "gemini"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	ChatProvider  string
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiKey     string
	GeminiModel   string
	PersonaName   string

	ElevenLabsKey     string
	ElevenLabsVoiceID string
	ElevenLabsModelID string
	ElevenLabsBaseURL string

	UpstreamTimeout time.Duration

	RateLimitRoute  int
	RateLimitGlobal int

	CORSAllowOrigins []string
	TrustedProxies   []string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:     getEnvDefault("PORT", "8080"),
		GinMode:  os.Getenv("GIN_MODE"),
		LogLevel: getEnvDefault("LOG_LEVEL", "info"),

		ChatProvider:  strings.ToLower(getEnvDefault("CHAT_PROVIDER", ChatProviderOpenAI)),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		PersonaName:   getEnvDefault("PERSONA_NAME", "Dattatray Bodake"),

		ElevenLabsKey:     os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: getEnvDefault("ELEVENLABS_VOICE_ID", "jvRPoufAEF7JQZv2NKhc"),
		ElevenLabsModelID: getEnvDefault("ELEVENLABS_MODEL_ID", "eleven_multilingual_v2"),
		ElevenLabsBaseURL: getEnvDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1"),

		UpstreamTimeout: getEnvDurationDefault("UPSTREAM_TIMEOUT", 30*time.Second),

		RateLimitRoute:  getEnvIntDefault("RATE_LIMIT_ROUTE", 10),
		RateLimitGlobal: getEnvIntDefault("RATE_LIMIT_GLOBAL", 60),

		CORSAllowOrigins: util.ParseCommaSeparated(os.Getenv("CORS_ALLOW_ORIGINS")),
		TrustedProxies:   util.ParseCommaSeparated(os.Getenv("TRUSTED_PROXIES")),
	}
}

// Validate reports every missing or inconsistent setting at once so the
// server can refuse to start instead of failing on the first upstream call.
func (c Config) Validate() error {
	var errs []error

	switch c.ChatProvider {
	case ChatProviderOpenAI:
		if c.OpenAIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when CHAT_PROVIDER=openai"))
		}
	case ChatProviderGemini:
		if c.GeminiKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when CHAT_PROVIDER=gemini"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported CHAT_PROVIDER %q (use %q or %q)", c.ChatProvider, ChatProviderOpenAI, ChatProviderGemini))
	}

	if c.ElevenLabsKey == "" {
		errs = append(errs, errors.New("ELEVENLABS_API_KEY is required"))
	}
	if c.RateLimitRoute <= 0 || c.RateLimitGlobal <= 0 {
		errs = append(errs, errors.New("rate limits must be positive"))
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, errors.New("UPSTREAM_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDurationDefault(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
