package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/webdigest/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("posts generate request and returns response", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"response":" 本地摘要 "}`))
		}))
		defer srv.Close()

		b := ollama.NewBackend(srv.URL, ollama.WithModel("qwen2"))

		summary, err := b.Summarize(context.Background(), "正文", "标题")

		require.NoError(t, err)
		assert.Equal(t, "本地摘要", summary)
		assert.Equal(t, "/api/generate", gotPath)
		assert.Equal(t, "qwen2", gotBody["model"])
		assert.Equal(t, false, gotBody["stream"])
	})

	t.Run("returns error for non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		b := ollama.NewBackend(srv.URL)

		_, err := b.Summarize(context.Background(), "content", "title")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})

	t.Run("empty response is not an error", func(t *testing.T) {
		t.Parallel()

		// The chain driver treats empty results as "try next"; the backend
		// itself just reports what the endpoint said.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"response":""}`))
		}))
		defer srv.Close()

		b := ollama.NewBackend(srv.URL)

		summary, err := b.Summarize(context.Background(), "content", "title")

		require.NoError(t, err)
		assert.Empty(t, summary)
	})
}
