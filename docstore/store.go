// Package docstore defines the ingestion/query surface of the externally
// owned document store used to archive finished check reports and retrieve
// similar past checks. The store is a collaborator, not part of the scoring
// core; comparison never depends on it.
package docstore

import "context"

// Document is one report record to ingest.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]interface{}
}

// Match is one query hit, nearest first.
type Match struct {
	ID       string                 `json:"id"`
	Distance float32                `json:"distance"`
	Document string                 `json:"document,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Store is the minimal ingestion/query interface the checker needs.
type Store interface {
	AddDocument(ctx context.Context, doc Document) error
	QuerySimilar(ctx context.Context, text string, nResults int) ([]Match, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
