// Package gemini provides an embedding collaborator backed by Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/ramendex"
	"google.golang.org/genai"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "gemini-embedding-001"

// Ensure Embedder implements ramendex.Embedder at compile time.
var _ ramendex.Embedder = (*Embedder)(nil)

// Embedder implements ramendex.Embedder using the Gemini embeddings API.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model selects DefaultModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultModel
	}
	return &Embedder{client: client, model: model}
}

// Model returns the name of the embedding model.
func (e *Embedder) Model() string {
	return e.model
}

// Embed returns the document embedding of text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ramendex.Errorf(ramendex.EINVALID, "text required")
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), &genai.EmbedContentConfig{
		TaskType: "RETRIEVAL_DOCUMENT",
	})
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0] == nil {
		return nil, nil
	}

	return result.Embeddings[0].Values, nil
}
