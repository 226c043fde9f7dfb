package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleRequest(text string) Request {
	return Request{
		Contents: []Content{{Role: RoleUser, Parts: []Part{{Text: text}}}},
	}
}

func TestGenerateReturnsFirstCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-pro:generateContent", r.URL.Path)
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"message\":\"hi\"}"},{"text":"ignored"}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClientWithBaseURL("secret-key", "gemini-2.5-pro", srv.URL)
	got, err := client.Generate(context.Background(), simpleRequest("hello"))
	require.NoError(t, err)
	assert.Equal(t, `{"message":"hi"}`, got)
}

func TestGenerateShapeErrorCarriesRawBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates":[]}`},
		{"empty parts", `{"candidates":[{"content":{"parts":[]}}]}`},
		{"not json", `<html>upstream proxy error</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewGeminiClientWithBaseURL("k", "m", srv.URL)
			_, err := client.Generate(context.Background(), simpleRequest("hi"))

			var shapeErr *UpstreamShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.body, string(shapeErr.Raw))
		})
	}
}

func TestGenerateAPIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	client := NewGeminiClientWithBaseURL("k", "m", srv.URL)
	_, err := client.Generate(context.Background(), simpleRequest("hi"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")

	var shapeErr *UpstreamShapeError
	assert.False(t, errors.As(err, &shapeErr), "a status error is not a shape error")
}

func TestGenerateContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewGeminiClientWithBaseURL("k", "m", srv.URL)
	_, err := client.Generate(ctx, simpleRequest("hi"))
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, "gemini", NewGeminiClient("k", "m").Name())
}
