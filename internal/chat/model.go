package chat

import "fmt"

type AskResponse struct {
	Reply string `json:"reply"`
}

// CompletionRequest is what a Completer sends upstream: one system
// instruction and one user turn.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

const (
	replyMaxTokens   = 150
	replyTemperature = 0.7

	// ClientErrorMessage is the only thing a caller learns about an upstream failure.
	ClientErrorMessage = "Internal server error"
)

// UpstreamChatError wraps any failure of the chat provider.
type UpstreamChatError struct {
	Provider string
	Cause    error
}

func (e *UpstreamChatError) Error() string {
	return fmt.Sprintf("chat provider %s: %v", e.Provider, e.Cause)
}

func (e *UpstreamChatError) Unwrap() error { return e.Cause }
