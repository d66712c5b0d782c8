package speech

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview-voice-api/internal/metrics"

	"go.uber.org/zap"
)

type SpeechService struct {
	Synthesizer Synthesizer
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

// SynthesizeSpeech turns text into one MP3 buffer. Every failure is
// returned as *UpstreamTtsError.
func (ss *SpeechService) SynthesizeSpeech(ctx context.Context, text string) (*Audio, error) {
	provider := ss.Synthesizer.Name()
	start := time.Now()

	data, err := ss.synthesize(ctx, text)
	ss.Metrics.RecordUpstream(provider, err, time.Since(start))

	if err != nil {
		ss.logger().Error("speech synthesis failed",
			zap.String("provider", provider),
			zap.Int("text_length", len(text)),
			zap.Error(err))
		return nil, &UpstreamTtsError{Provider: provider, Cause: err}
	}

	ss.logger().Debug("speech synthesis ok",
		zap.String("provider", provider),
		zap.Int("audio_bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	return &Audio{MimeType: audioMimeType, Filename: audioFilename, Data: data}, nil
}

func (ss *SpeechService) synthesize(ctx context.Context, text string) ([]byte, error) {
	stream, err := ss.Synthesizer.Stream(ctx, text)
	if err != nil {
		return nil, err
	}

	data, err := Collect(stream)
	if err != nil {
		return nil, fmt.Errorf("read audio stream: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("empty audio")
	}
	return data, nil
}

func (ss *SpeechService) logger() *zap.Logger {
	if ss.Logger == nil {
		return zap.NewNop()
	}
	return ss.Logger
}
