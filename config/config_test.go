package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "GIN_MODE", "LOG_LEVEL",
	"CHAT_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
	"GEMINI_API_KEY", "GEMINI_MODEL", "PERSONA_NAME",
	"ELEVENLABS_API_KEY", "ELEVENLABS_VOICE_ID", "ELEVENLABS_MODEL_ID", "ELEVENLABS_BASE_URL",
	"UPSTREAM_TIMEOUT", "RATE_LIMIT_ROUTE", "RATE_LIMIT_GLOBAL",
	"CORS_ALLOW_ORIGINS", "TRUSTED_PROXIES",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_ReadsEnvVars(t *testing.T) {
	clearEnv(t)
	env := map[string]string{
		"PORT":                "9000",
		"CHAT_PROVIDER":       "Gemini",
		"OPENAI_API_KEY":      "sk-test",
		"GEMINI_API_KEY":      "gem-key",
		"ELEVENLABS_API_KEY":  "xi-key",
		"ELEVENLABS_VOICE_ID": "voice-1",
		"PERSONA_NAME":        "Jane Doe",
		"UPSTREAM_TIMEOUT":    "5s",
		"RATE_LIMIT_ROUTE":    "3",
		"RATE_LIMIT_GLOBAL":   "7",
		"CORS_ALLOW_ORIGINS":  "http://localhost:3000, https://example.test",
		"TRUSTED_PROXIES":     "10.0.0.1",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, ChatProviderGemini, cfg.ChatProvider)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, "gem-key", cfg.GeminiKey)
	assert.Equal(t, "xi-key", cfg.ElevenLabsKey)
	assert.Equal(t, "voice-1", cfg.ElevenLabsVoiceID)
	assert.Equal(t, "Jane Doe", cfg.PersonaName)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 3, cfg.RateLimitRoute)
	assert.Equal(t, 7, cfg.RateLimitGlobal)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.test"}, cfg.CORSAllowOrigins)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.TrustedProxies)
}

func TestLoadConfig_MissingVars_UseDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ChatProviderOpenAI, cfg.ChatProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "jvRPoufAEF7JQZv2NKhc", cfg.ElevenLabsVoiceID)
	assert.Equal(t, "eleven_multilingual_v2", cfg.ElevenLabsModelID)
	assert.Equal(t, 10, cfg.RateLimitRoute)
	assert.Equal(t, 60, cfg.RateLimitGlobal)
	assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
	assert.Empty(t, cfg.OpenAIKey)
	assert.Empty(t, cfg.ElevenLabsKey)
	assert.Nil(t, cfg.CORSAllowOrigins)
}

func TestLoadConfig_BadNumbers_FallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_ROUTE", "ten")
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.RateLimitRoute)
	assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
}

func TestValidate_MissingKeys_ReportsAll(t *testing.T) {
	clearEnv(t)

	err := LoadConfig().Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "ELEVENLABS_API_KEY")
}

func TestValidate_GeminiProvider_RequiresGeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAT_PROVIDER", "gemini")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ELEVENLABS_API_KEY", "xi-key")

	err := LoadConfig().Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidate_UnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAT_PROVIDER", "claude")
	t.Setenv("ELEVENLABS_API_KEY", "xi-key")

	err := LoadConfig().Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported CHAT_PROVIDER")
}

func TestValidate_Complete_OK(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ELEVENLABS_API_KEY", "xi-key")

	assert.NoError(t, LoadConfig().Validate())
}
