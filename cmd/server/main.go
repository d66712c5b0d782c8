package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview-voice-api/config"
	"interview-voice-api/internal/chat"
	"interview-voice-api/internal/metrics"
	"interview-voice-api/internal/speech"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.LoadConfig()

	logger, err := initLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	m := metrics.New(logger)
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	completer, err := newCompleter(context.Background(), cfg, httpClient)
	if err != nil {
		logger.Fatal("failed to create chat client", zap.Error(err))
	}
	logger.Info("chat provider configured",
		zap.String("provider", completer.Name()),
		zap.String("persona", cfg.PersonaName))

	chatService := &chat.ChatService{
		Completer:   completer,
		PersonaName: cfg.PersonaName,
		Logger:      logger,
		Metrics:     m,
	}

	speechService := &speech.SpeechService{
		Synthesizer: speech.NewElevenLabs(cfg.ElevenLabsKey,
			speech.WithElevenLabsBaseURL(cfg.ElevenLabsBaseURL),
			speech.WithElevenLabsClient(httpClient),
			speech.WithVoice(cfg.ElevenLabsVoiceID),
			speech.WithModel(cfg.ElevenLabsModelID),
		),
		Logger:  logger,
		Metrics: m,
	}

	gin.SetMode(ginMode(cfg))
	r, err := newRouter(cfg, logger, m, chatService, speechService)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newCompleter(ctx context.Context, cfg config.Config, httpClient *http.Client) (chat.Completer, error) {
	switch cfg.ChatProvider {
	case config.ChatProviderGemini:
		g, err := chat.NewGeminiCompleter(ctx, cfg.GeminiKey, cfg.GeminiModel, httpClient)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return chat.NewOpenAICompleter(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, httpClient), nil
	}
}

// ginMode falls back to release mode when GIN_MODE is unset.
func ginMode(cfg config.Config) string {
	if cfg.GinMode == "" {
		return gin.ReleaseMode
	}
	return cfg.GinMode
}

func initLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.GinMode == "debug" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
