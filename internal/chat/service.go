package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"interview-voice-api/internal/metrics"
	"interview-voice-api/internal/util"

	"go.uber.org/zap"
)

type ChatService struct {
	Completer   Completer
	PersonaName string
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

// GenerateReply answers message in the persona's voice. Every failure is
// returned as *UpstreamChatError.
func (cs *ChatService) GenerateReply(ctx context.Context, message string, now time.Time) (string, error) {
	req := CompletionRequest{
		System:      BuildPersonaPrompt(cs.PersonaName, now),
		User:        message,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	}

	provider := cs.Completer.Name()
	start := time.Now()
	reply, err := cs.Completer.Complete(ctx, req)
	reply = strings.TrimSpace(reply)
	if err == nil && reply == "" {
		err = errors.New("empty reply")
	}
	cs.Metrics.RecordUpstream(provider, err, time.Since(start))

	if err != nil {
		cs.logger().Error("chat completion failed",
			zap.String("provider", provider),
			zap.Int("message_length", len(message)),
			zap.Error(err))
		return "", &UpstreamChatError{Provider: provider, Cause: err}
	}

	cs.logger().Debug("chat completion ok",
		zap.String("provider", provider),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("reply_length", len(reply)))
	return reply, nil
}

func (cs *ChatService) logger() *zap.Logger {
	if cs.Logger == nil {
		return zap.NewNop()
	}
	return cs.Logger
}

// BuildPersonaPrompt is the fixed system instruction for name on the day of now.
func BuildPersonaPrompt(name string, now time.Time) string {
	first := name
	if i := strings.IndexByte(name, ' '); i > 0 {
		first = name[:i]
	}

	var b strings.Builder
	b.WriteString("You are a voice assistant answering interview questions on behalf of " + name + ". ")
	b.WriteString("The current date is " + util.FormatLongDate(now) + ". ")
	b.WriteString("Answer in the first person as " + first + ", keeping responses authentic and human. ")
	b.WriteString("Keep replies between 3 to 5 sentences. ")
	b.WriteString("Avoid sounding overly formal or robotic. ")
	b.WriteString("Do not use contractions like I'm, I'll, or I'd. ")
	b.WriteString("Use full forms like I am, I will, or I would instead.")
	return b.String()
}
