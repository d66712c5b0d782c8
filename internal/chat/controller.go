package chat

import (
	"errors"
	"net/http"
	"time"

	"interview-voice-api/internal/gate"
	"interview-voice-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const routeAsk = "ask"

type ChatController struct {
	ChatService ChatServicePort
	Limiter     *gate.Limiter
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

func NewChatController(cs ChatServicePort, limiter *gate.Limiter, logger *zap.Logger, m *metrics.Metrics) *ChatController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatController{ChatService: cs, Limiter: limiter, Logger: logger, Metrics: m, Now: time.Now}
}

// Ask validates, rate limits, then relays the persona reply.
func (cc *ChatController) Ask(c *gin.Context) {
	message, err := gate.ValidateChatInput(gate.ReadBody(c))
	if err != nil {
		gate.Reject(c, err)
		return
	}

	if err := cc.Limiter.Allow(c.ClientIP(), routeAsk); err != nil {
		cc.Metrics.RecordRateLimited(routeAsk)
		cc.Logger.Warn("rate limited", zap.String("route", routeAsk), zap.String("client_ip", c.ClientIP()))
		gate.Reject(c, err)
		return
	}

	reply, err := cc.ChatService.GenerateReply(c.Request.Context(), message, cc.Now())
	if err != nil {
		var upstream *UpstreamChatError
		if !errors.As(err, &upstream) {
			cc.Logger.Error("unexpected chat error", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": ClientErrorMessage})
		return
	}

	c.JSON(http.StatusOK, AskResponse{Reply: reply})
}
