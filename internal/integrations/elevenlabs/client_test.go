package elevenlabs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSynthesize_Success(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00} // MP3 frame header

	var gotKey, gotAccept, gotPath string
	var gotPayload SynthesizeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("xi-api-key")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "el-key", 5*time.Second, nil, nopLogger{})

	got, err := client.Synthesize(context.Background(), "voice-1", "Hello there")
	require.NoError(t, err)

	assert.Equal(t, audio, got)
	assert.Equal(t, "el-key", gotKey)
	assert.Equal(t, "audio/mpeg", gotAccept)
	assert.Equal(t, "/v1/text-to-speech/voice-1", gotPath)
	assert.Equal(t, "Hello there", gotPayload.Text)
	assert.Equal(t, ModelMonolingualV1, gotPayload.ModelID)
	assert.Equal(t, DefaultStability, gotPayload.VoiceSettings.Stability)
	assert.Equal(t, DefaultSimilarityBoost, gotPayload.VoiceSettings.SimilarityBoost)
}

func TestSynthesize_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "invalid api key"}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "bad-key", 5*time.Second, nil, nopLogger{})

	_, err := client.Synthesize(context.Background(), "voice-1", "Hello")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, `{"detail": "invalid api key"}`, apiErr.Body)
}

func TestSynthesize_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "el-key", time.Second, nil, nopLogger{})

	_, err := client.Synthesize(context.Background(), "voice-1", "Hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
}
