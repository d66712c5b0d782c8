package speech

import "fmt"

type Audio struct {
	MimeType string
	Filename string
	Data     []byte
}

const (
	DefaultVoiceID = "jvRPoufAEF7JQZv2NKhc"
	DefaultModelID = "eleven_multilingual_v2"
	// mp3, 44.1kHz, 128kbps
	OutputFormat = "mp3_44100_128"

	audioMimeType = "audio/mpeg"
	audioFilename = "reply.mp3"

	ClientErrorMessage = "Failed to generate audio"
)

// UpstreamTtsError wraps any failure of the speech provider.
type UpstreamTtsError struct {
	Provider string
	Cause    error
}

func (e *UpstreamTtsError) Error() string {
	return fmt.Sprintf("speech provider %s: %v", e.Provider, e.Cause)
}

func (e *UpstreamTtsError) Unwrap() error { return e.Cause }
