package compare

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"
)

// stubEmbedder returns canned vectors per exact input text.
type stubEmbedder struct {
	vecs map[string][]float32
}

func (s *stubEmbedder) ModelName() string { return "stub" }

func (s *stubEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, ok := s.vecs[t]
		if !ok {
			return nil, errors.New("stub embedder: unexpected text " + t)
		}
		out[i] = vec
	}
	return out, nil
}

// bagEmbedder is a deterministic bag-of-words embedder: identical texts get
// identical vectors, disjoint texts get (near) orthogonal ones.
type bagEmbedder struct{}

func (bagEmbedder) ModelName() string { return "bag-of-words" }

func (bagEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec := make([]float32, 64)
		for _, word := range strings.Fields(strings.ToLower(t)) {
			h := fnv.New32a()
			h.Write([]byte(word))
			vec[h.Sum32()%64]++
		}
		out[i] = vec
	}
	return out, nil
}

// failingEmbedder always errors; used to prove code paths that must not
// touch the embedding backend.
type failingEmbedder struct{}

func (failingEmbedder) ModelName() string { return "failing" }

func (failingEmbedder) EmbedTexts(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("embedding backend unavailable")
}
