package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevenLabs_Stream_Success(t *testing.T) {
	var got elevenLabsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/text-to-speech/"+DefaultVoiceID, r.URL.Path)
		assert.Equal(t, "mp3_44100_128", r.URL.Query().Get("output_format"))
		assert.Equal(t, "xi-test", r.Header.Get("xi-api-key"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "audio/mpeg")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{"ID3", "frame-a", "frame-b"} {
			_, _ = w.Write([]byte(chunk))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	s := NewElevenLabs("xi-test", WithElevenLabsBaseURL(srv.URL+"/v1/"), WithElevenLabsClient(srv.Client()))
	stream, err := s.Stream(context.Background(), "Hello")
	require.NoError(t, err)

	data, err := Collect(stream)
	require.NoError(t, err)
	assert.Equal(t, "ID3frame-aframe-b", string(data))
	assert.Equal(t, "Hello", got.Text)
	assert.Equal(t, "eleven_multilingual_v2", got.ModelID)
}

func TestElevenLabs_Stream_CustomVoiceAndModel(t *testing.T) {
	var got elevenLabsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/voice-x", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("audio"))
	}))
	defer srv.Close()

	s := NewElevenLabs("k", WithElevenLabsBaseURL(srv.URL), WithVoice("voice-x"), WithModel("eleven_turbo_v2_5"))
	stream, err := s.Stream(context.Background(), "Hi")
	require.NoError(t, err)
	_, err = Collect(stream)
	require.NoError(t, err)

	assert.Equal(t, "eleven_turbo_v2_5", got.ModelID)
}

func TestElevenLabs_Stream_ErrorDetailObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":{"status":"invalid_api_key","message":"Invalid API key"}}`))
	}))
	defer srv.Close()

	_, err := NewElevenLabs("bad", WithElevenLabsBaseURL(srv.URL)).Stream(context.Background(), "Hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "invalid_api_key: Invalid API key")
}

func TestElevenLabs_Stream_ErrorDetailString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"quota exceeded"}`))
	}))
	defer srv.Close()

	_, err := NewElevenLabs("k", WithElevenLabsBaseURL(srv.URL)).Stream(context.Background(), "Hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestElevenLabs_Stream_ErrorNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewElevenLabs("k", WithElevenLabsBaseURL(srv.URL)).Stream(context.Background(), "Hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad Gateway")
}

func TestElevenLabs_Stream_EmptyText(t *testing.T) {
	_, err := NewElevenLabs("k").Stream(context.Background(), "")
	assert.Error(t, err)
}

func TestElevenLabs_Stream_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewElevenLabs("k", WithElevenLabsBaseURL(base)).Stream(context.Background(), "Hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
