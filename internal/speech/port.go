package speech

import "context"

// Synthesizer starts a text-to-speech request and hands back the audio as
// it arrives.
type Synthesizer interface {
	Stream(ctx context.Context, text string) (*ChunkStream, error)
	Name() string
}

type SpeechServicePort interface {
	SynthesizeSpeech(ctx context.Context, text string) (*Audio, error)
}
