package gate

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const (
	MaxMessageLength = 500
	// MaxBodyBytes bounds the JSON body read for /ask and /tts.
	MaxBodyBytes = 64 << 10
)

// ValidateChatInput checks an /ask body and returns the trimmed message.
func ValidateChatInput(payload []byte) (string, error) {
	fields, err := decodeObject(payload)
	if err != nil {
		return "", err
	}

	raw, ok := fields["message"]
	if !ok {
		return "", ErrInvalidFormat
	}

	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		// null, numbers, arrays and objects are not messages
		return "", ErrEmptyOrInvalid
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyOrInvalid
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return "", ErrTooLong
	}
	return message, nil
}

// ValidateTtsInput checks a /tts body and returns the trimmed text.
func ValidateTtsInput(payload []byte) (string, error) {
	fields, err := decodeObject(payload)
	if err != nil {
		return "", err
	}

	raw, ok := fields["text"]
	if !ok {
		return "", ErrInvalidFormat
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", ErrInvalidFormat
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

func decodeObject(payload []byte) (map[string]json.RawMessage, error) {
	if len(payload) == 0 || len(payload) > MaxBodyBytes {
		return nil, ErrInvalidFormat
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil || fields == nil {
		return nil, ErrInvalidFormat
	}
	return fields, nil
}
