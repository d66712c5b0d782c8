package main

import (
	"time"

	"interview-voice-api/config"
	"interview-voice-api/internal/chat"
	"interview-voice-api/internal/gate"
	"interview-voice-api/internal/metrics"
	"interview-voice-api/internal/middlewares"
	"interview-voice-api/internal/speech"
	"interview-voice-api/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newRouter(cfg config.Config, logger *zap.Logger, m *metrics.Metrics, chatService chat.ChatServicePort, speechService speech.SpeechServicePort) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(middlewares.RequestLogger(logger, m), middlewares.Recovery(logger))

	if len(cfg.CORSAllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSAllowOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	// one limiter instance, shared by /ask and /tts so the global cap spans both
	limiter := gate.NewLimiter(gate.LimiterConfig{
		RouteLimit:  cfg.RateLimitRoute,
		GlobalLimit: cfg.RateLimitGlobal,
	})

	webController, err := web.NewWebController()
	if err != nil {
		return nil, err
	}
	web.RegisterRoutes(r, webController, m.Handler())
	chat.RegisterRoutes(r, chat.NewChatController(chatService, limiter, logger, m))
	speech.RegisterRoutes(r, speech.NewSpeechController(speechService, limiter, logger, m))

	return r, nil
}
