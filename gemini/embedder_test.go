package gemini_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newClient(t *testing.T, body string) *genai.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	require.NoError(t, err)
	return client
}

func TestEmbedder_Embed(t *testing.T) {
	t.Parallel()

	t.Run("returns error when text is empty", func(t *testing.T) {
		t.Parallel()

		embedder := gemini.NewEmbedder(nil, "") // nil client ok for this test

		_, err := embedder.Embed(context.Background(), "  ")

		require.Error(t, err)
		assert.Equal(t, ramendex.EINVALID, ramendex.ErrorCode(err))
		assert.Equal(t, "text required", ramendex.ErrorMessage(err))
	})

	t.Run("returns the first embedding", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, `{"embeddings":[{"values":[0.5,0.25,-1]}]}`)
		embedder := gemini.NewEmbedder(client, "")

		vec, err := embedder.Embed(context.Background(), "Yuzu Shio Ramen Ramen")

		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 0.25, -1}, vec)
	})

	t.Run("returns nil when the service produces no embedding", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, `{"embeddings":[]}`)
		embedder := gemini.NewEmbedder(client, "")

		vec, err := embedder.Embed(context.Background(), "Gyoza")

		require.NoError(t, err)
		assert.Nil(t, vec)
	})
}

func TestNewEmbedder(t *testing.T) {
	t.Parallel()

	t.Run("defaults the model", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, gemini.DefaultModel, gemini.NewEmbedder(nil, "").Model())
		assert.Equal(t, "text-embedding-004", gemini.NewEmbedder(nil, "text-embedding-004").Model())
	})
}
