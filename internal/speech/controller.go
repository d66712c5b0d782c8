package speech

import (
	"errors"
	"net/http"

	"interview-voice-api/internal/gate"
	"interview-voice-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const routeTTS = "tts"

type SpeechController struct {
	SpeechService SpeechServicePort
	Limiter       *gate.Limiter
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
}

func NewSpeechController(ss SpeechServicePort, limiter *gate.Limiter, logger *zap.Logger, m *metrics.Metrics) *SpeechController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeechController{SpeechService: ss, Limiter: limiter, Logger: logger, Metrics: m}
}

func (sc *SpeechController) TTS(c *gin.Context) {
	text, err := gate.ValidateTtsInput(gate.ReadBody(c))
	if err != nil {
		gate.Reject(c, err)
		return
	}

	if err := sc.Limiter.Allow(c.ClientIP(), routeTTS); err != nil {
		sc.Metrics.RecordRateLimited(routeTTS)
		sc.Logger.Warn("rate limited", zap.String("route", routeTTS), zap.String("client_ip", c.ClientIP()))
		gate.Reject(c, err)
		return
	}

	audio, err := sc.SpeechService.SynthesizeSpeech(c.Request.Context(), text)
	if err != nil {
		var upstream *UpstreamTtsError
		if !errors.As(err, &upstream) {
			sc.Logger.Error("unexpected speech error", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": ClientErrorMessage})
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+audio.Filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, audio.MimeType, audio.Data)
}
