package generate_voice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vappi/voicebot-backend/internal/integrations/elevenlabs"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSynthesisClient struct {
	audio []byte
	err   error

	calls []string // тексты, переданные на синтез
	voice string
}

func (f *fakeSynthesisClient) Synthesize(_ context.Context, voiceID, text string) ([]byte, error) {
	f.calls = append(f.calls, text)
	f.voice = voiceID
	return f.audio, f.err
}

func TestExecute_Success(t *testing.T) {
	client := &fakeSynthesisClient{audio: []byte("mp3-bytes")}
	uc := NewUseCase(client, "el-key", "voice-1", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Text: "Hello there"})
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3-bytes"), resp.Audio)
	assert.Equal(t, []string{"Hello there"}, client.calls)
	assert.Equal(t, "voice-1", client.voice)
}

func TestExecute_MissingText(t *testing.T) {
	client := &fakeSynthesisClient{}
	uc := NewUseCase(client, "el-key", "voice-1", nopLogger{})

	for _, text := range []string{"", "   "} {
		_, err := uc.Execute(context.Background(), &Request{Text: text})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingText))
	}

	// Ни одного сетевого вызова
	assert.Empty(t, client.calls)
}

func TestExecute_IncompleteConfig(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		voiceID string
		want    error
	}{
		{"no api key", "", "voice-1", ErrAPIKeyNotConfigured},
		{"no voice id", "el-key", "", ErrVoiceIDNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSynthesisClient{}
			uc := NewUseCase(client, tt.apiKey, tt.voiceID, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{Text: "Hello"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.Empty(t, client.calls)
		})
	}
}

func TestExecute_UpstreamRejection(t *testing.T) {
	client := &fakeSynthesisClient{
		err: &elevenlabs.APIError{
			StatusCode: http.StatusTooManyRequests,
			Body:       `{"detail": "rate limited"}`,
		},
	}
	uc := NewUseCase(client, "el-key", "voice-1", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Text: "Hello"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSynthesisFailed))

	status, body, ok := UpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, `{"detail": "rate limited"}`, body)
}

func TestExecute_TransportError(t *testing.T) {
	client := &fakeSynthesisClient{err: errors.New("connection refused")}
	uc := NewUseCase(client, "el-key", "voice-1", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Text: "Hello"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))

	_, _, ok := UpstreamError(err)
	assert.False(t, ok)
}
