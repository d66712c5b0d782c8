package chat

import (
	"context"
	"time"
)

// Completer is a chat-completion provider.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Name() string
}

type ChatServicePort interface {
	GenerateReply(ctx context.Context, message string, now time.Time) (string, error)
}
