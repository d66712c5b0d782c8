package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	elevenLabsBaseURL        = "https://api.elevenlabs.io/v1"
	defaultElevenLabsTimeout = 60 * time.Second

	// error bodies are small JSON; anything bigger is not worth reading
	maxErrorBody = 8 << 10
)

// ElevenLabsSynthesizer calls the ElevenLabs text-to-speech REST API.
type ElevenLabsSynthesizer struct {
	apiKey  string
	baseURL string
	voiceID string
	modelID string
	client  *http.Client
}

type ElevenLabsOption func(*ElevenLabsSynthesizer)

func WithElevenLabsBaseURL(u string) ElevenLabsOption {
	return func(s *ElevenLabsSynthesizer) {
		if u != "" {
			s.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithElevenLabsClient(client *http.Client) ElevenLabsOption {
	return func(s *ElevenLabsSynthesizer) {
		if client != nil {
			s.client = client
		}
	}
}

func WithVoice(voiceID string) ElevenLabsOption {
	return func(s *ElevenLabsSynthesizer) {
		if voiceID != "" {
			s.voiceID = voiceID
		}
	}
}

func WithModel(modelID string) ElevenLabsOption {
	return func(s *ElevenLabsSynthesizer) {
		if modelID != "" {
			s.modelID = modelID
		}
	}
}

func NewElevenLabs(apiKey string, opts ...ElevenLabsOption) *ElevenLabsSynthesizer {
	s := &ElevenLabsSynthesizer{
		apiKey:  apiKey,
		baseURL: elevenLabsBaseURL,
		voiceID: DefaultVoiceID,
		modelID: DefaultModelID,
		client:  &http.Client{Timeout: defaultElevenLabsTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ElevenLabsSynthesizer) Name() string { return "elevenlabs" }

type elevenLabsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Stream posts text and returns the response body as a chunk stream. The
// caller owns the stream and must drain or close it.
func (s *ElevenLabsSynthesizer) Stream(ctx context.Context, text string) (*ChunkStream, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}

	bodyBytes, err := json.Marshal(elevenLabsRequest{Text: text, ModelID: s.modelID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s",
		s.baseURL, url.PathEscape(s.voiceID), OutputFormat)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", audioMimeType)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeElevenLabsError(resp)
	}

	return NewChunkStream(resp.Body), nil
}

// ElevenLabs reports errors as {"detail": {...}} or {"detail": "..."}.
type elevenLabsErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type elevenLabsErrorDetail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func decodeElevenLabsError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(raw))
	var errResp elevenLabsErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && len(errResp.Detail) > 0 {
		var detail elevenLabsErrorDetail
		var plain string
		switch {
		case json.Unmarshal(errResp.Detail, &detail) == nil && detail.Message != "":
			msg = detail.Message
			if detail.Status != "" {
				msg = detail.Status + ": " + msg
			}
		case json.Unmarshal(errResp.Detail, &plain) == nil && plain != "":
			msg = plain
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return fmt.Errorf("elevenlabs api error (status %d): %s", resp.StatusCode, msg)
}
