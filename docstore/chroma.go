package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"reprocheck/compare"
)

// Chroma implements Store against the Chroma vector database REST API (v2).
// Chroma v2 expects client-supplied embeddings, so the client carries an
// embeddings provider for both ingestion and queries.
type Chroma struct {
	baseURL        string
	tenant         string
	database       string
	collectionName string
	collectionID   string
	httpClient     *http.Client
	embedder       compare.EmbeddingsProvider
}

// ChromaConfig holds connection settings for the Chroma store.
type ChromaConfig struct {
	Host           string
	Port           int
	CollectionName string
}

// NewChroma connects to Chroma and gets or creates the report collection.
func NewChroma(ctx context.Context, cfg ChromaConfig, embedder compare.EmbeddingsProvider) (*Chroma, error) {
	if embedder == nil {
		return nil, fmt.Errorf("chroma requires an embeddings provider for client-side embeddings")
	}

	name := cfg.CollectionName
	if name == "" {
		name = "reprocheck_reports"
	}

	c := &Chroma{
		baseURL:        fmt.Sprintf("http://%s:%d/api/v2", cfg.Host, cfg.Port),
		tenant:         "default_tenant",
		database:       "default_database",
		collectionName: name,
		httpClient:     &http.Client{},
		embedder:       embedder,
	}

	id, err := c.getOrCreateCollection(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create collection: %w", err)
	}
	c.collectionID = id
	return c, nil
}

func (c *Chroma) getOrCreateCollection(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/tenants/%s/databases/%s/collections/%s", c.baseURL, c.tenant, c.database, name)
	if resp, err := c.get(ctx, url); err == nil {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			var result map[string]interface{}
			if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
				return "", err
			}
			if id, ok := result["id"].(string); ok {
				log.Printf("Using existing collection: %s", name)
				return id, nil
			}
		}
	}

	log.Printf("Creating new collection: %s", name)
	createURL := fmt.Sprintf("%s/tenants/%s/databases/%s/collections", c.baseURL, c.tenant, c.database)
	payload := map[string]interface{}{
		"name": name,
		"metadata": map[string]interface{}{
			"description": "reprocheck archived reproducibility reports",
		},
		"get_or_create": true,
	}

	resp, err := c.post(ctx, createURL, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("create collection failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	id, ok := result["id"].(string)
	if !ok {
		return "", fmt.Errorf("create collection response missing id")
	}
	return id, nil
}

func (c *Chroma) collectionURL() string {
	return fmt.Sprintf("%s/tenants/%s/databases/%s/collections/%s", c.baseURL, c.tenant, c.database, c.collectionID)
}

// AddDocument ingests one report, embedding its content client-side.
func (c *Chroma) AddDocument(ctx context.Context, doc Document) error {
	embs, err := c.embedder.EmbedTexts(ctx, []string{doc.Content})
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	payload := map[string]interface{}{
		"ids":        []string{doc.ID},
		"documents":  []string{doc.Content},
		"metadatas":  []map[string]interface{}{doc.Metadata},
		"embeddings": embs,
	}

	resp, err := c.post(ctx, c.collectionURL()+"/add", payload)
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to add document: %s", string(body))
	}
	return nil
}

// QuerySimilar embeds the query text and returns the nearest stored reports.
func (c *Chroma) QuerySimilar(ctx context.Context, text string, nResults int) ([]Match, error) {
	embs, err := c.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embeddings: %w", err)
	}

	payload := map[string]interface{}{
		"n_results":        nResults,
		"query_embeddings": embs,
		"include":          []string{"metadatas", "documents", "distances"},
	}

	resp, err := c.post(ctx, c.collectionURL()+"/query", payload)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to query collection: %s", string(body))
	}

	var raw struct {
		IDs       [][]string                 `json:"ids"`
		Distances [][]float32                `json:"distances"`
		Documents [][]string                 `json:"documents"`
		Metadatas [][]map[string]interface{} `json:"metadatas"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	if len(raw.IDs) == 0 {
		return nil, nil
	}

	matches := make([]Match, 0, len(raw.IDs[0]))
	for i, id := range raw.IDs[0] {
		m := Match{ID: id}
		if len(raw.Distances) > 0 && i < len(raw.Distances[0]) {
			m.Distance = raw.Distances[0][i]
		}
		if len(raw.Documents) > 0 && i < len(raw.Documents[0]) {
			m.Document = raw.Documents[0][i]
		}
		if len(raw.Metadatas) > 0 && i < len(raw.Metadatas[0]) {
			m.Metadata = raw.Metadatas[0][i]
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// Count returns the number of archived reports.
func (c *Chroma) Count(ctx context.Context) (int, error) {
	resp, err := c.get(ctx, c.collectionURL()+"/count")
	if err != nil {
		return 0, fmt.Errorf("failed to count collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("failed to count collection: %s", string(body))
	}

	var count int
	if err := json.NewDecoder(resp.Body).Decode(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Close is a no-op for the REST client.
func (c *Chroma) Close() error { return nil }

func (c *Chroma) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

func (c *Chroma) post(ctx context.Context, url string, payload interface{}) (*http.Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}
