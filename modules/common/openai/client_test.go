package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditImageSuccess(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "gpt-image-1.5", r.FormValue("model"))
		assert.Equal(t, "a noble portrait", r.FormValue("prompt"))
		assert.Equal(t, "1024x1024", r.FormValue("size"))

		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		file.Close()

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{{"b64_json": "aW1hZ2U="}},
		})
	}))
	defer server.Close()

	client := NewClient("sk-test", server.URL, "")
	result, err := client.EditImage(context.Background(), []byte("png-bytes"), "a noble portrait")
	require.NoError(t, err)

	assert.Equal(t, "aW1hZ2U=", result.B64)
	assert.Empty(t, result.URL)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/images/edits", gotPath)
}

func TestEditImageURLResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{{"url": "https://cdn.example.com/result.png"}},
		})
	}))
	defer server.Close()

	client := NewClient("sk-test", server.URL, "")
	result, err := client.EditImage(context.Background(), []byte("png"), "p")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/result.png", result.URL)
}

func TestEditImageUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Incorrect API key provided: sk-bad123", "code": "invalid_api_key"},
		})
	}))
	defer server.Close()

	client := NewClient("sk-bad123", server.URL, "")
	_, err := client.EditImage(context.Background(), []byte("png"), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestEditImageUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "image too large"},
		})
	}))
	defer server.Close()

	client := NewClient("sk-test", server.URL, "")
	_, err := client.EditImage(context.Background(), []byte("png"), "p")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "image too large")
}

func TestEditImageEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]string{}})
	}))
	defer server.Close()

	client := NewClient("sk-test", server.URL, "")
	_, err := client.EditImage(context.Background(), []byte("png"), "p")
	assert.Error(t, err)
}

func TestEditImageWithoutKey(t *testing.T) {
	client := NewClient("", "http://localhost:1", "")
	_, err := client.EditImage(context.Background(), []byte("png"), "p")
	assert.Error(t, err)
}

func TestCheckKey(t *testing.T) {
	t.Run("key not set", func(t *testing.T) {
		client := NewClient("", "http://localhost:1", "")
		status, err := client.CheckKey(context.Background())
		require.NoError(t, err)
		assert.False(t, status.KeyLoaded)
	})

	t.Run("key valid", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
		}))
		defer server.Close()

		client := NewClient("sk-test", server.URL, "")
		status, err := client.CheckKey(context.Background())
		require.NoError(t, err)
		assert.True(t, status.KeyLoaded)
		assert.True(t, status.Valid)
	})

	t.Run("key rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "Incorrect API key provided: sk-secret99"},
			})
		}))
		defer server.Close()

		client := NewClient("sk-secret99", server.URL, "")
		status, err := client.CheckKey(context.Background())
		require.NoError(t, err)
		assert.True(t, status.KeyLoaded)
		assert.False(t, status.Valid)
		// 키는 응답에서 마스킹
		assert.NotContains(t, status.Details, "sk-secret99")
		assert.Contains(t, status.Details, "sk-***")
	})
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "invalid key sk-***", MaskKey("invalid key sk-abc123xyz"))
	assert.Equal(t, "no key here", MaskKey("no key here"))
	assert.Equal(t, "sk-*** and sk-***", MaskKey("sk-one and sk-two"))
}

func TestExtractErrorMessage(t *testing.T) {
	msg := extractErrorMessage([]byte(`{"error":{"message":"bad request","code":"invalid"}}`), 400)
	assert.Equal(t, "invalid: bad request", msg)

	msg = extractErrorMessage([]byte(`{"error":{"message":"bad request"}}`), 400)
	assert.Equal(t, "bad request", msg)

	msg = extractErrorMessage([]byte(`not json`), 502)
	assert.Equal(t, "HTTP 502", msg)
}
