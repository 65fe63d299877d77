package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model            string  `json:"model"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	MaxTokens        int     `json:"max_tokens"`
	Messages         []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
}

func completionServer(t *testing.T, reply string, got *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(got))

		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, reply)
	}))
}

func TestCompleteSendsFixedSampling(t *testing.T) {
	var got capturedRequest
	srv := completionServer(t, "hello there", &got)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	reply, err := c.Complete(context.Background(), "be someone", []Message{
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", reply)

	assert.Equal(t, chatModel, got.Model)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 0.9, got.TopP)
	assert.Equal(t, 0.2, got.FrequencyPenalty)
	assert.Equal(t, 1024, got.MaxTokens)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
}

func TestCompleteTrimsHistoryWindow(t *testing.T) {
	var got capturedRequest
	srv := completionServer(t, "ok", &got)
	defer srv.Close()

	history := make([]Message, 10)
	for i := range history {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history[i] = Message{Role: role, Content: fmt.Sprintf("turn %d", i)}
	}

	c := NewClient(srv.URL, "test-key")
	_, err := c.Complete(context.Background(), "persona", history)
	require.NoError(t, err)

	// system prompt + the last 6 turns only
	require.Len(t, got.Messages, 7)
	assert.JSONEq(t, `"turn 4"`, string(got.Messages[1].Content))
	assert.JSONEq(t, `"turn 9"`, string(got.Messages[6].Content))
}

func TestCompleteSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.Complete(context.Background(), "persona", nil)
	assert.Error(t, err)
}

func TestReviewWrapsBareBase64(t *testing.T) {
	var got capturedRequest
	srv := completionServer(t, "nice glaze work", &got)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	text, err := c.Review(context.Background(), "review this", "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "nice glaze work", text)

	assert.Equal(t, visionModel, got.Model)
	require.Len(t, got.Messages, 1)
	assert.Contains(t, string(got.Messages[0].Content), "data:image/png;base64,aGVsbG8=")
}
