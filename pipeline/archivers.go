package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"reprocheck/common"
	"reprocheck/docstore"
)

// S3Archiver writes one JSON record per finished check under
// <prefix>checks/<id>.json.
type S3Archiver struct {
	Client *common.S3
	Bucket string
	Prefix string
}

func (a *S3Archiver) Name() string { return "s3" }

func (a *S3Archiver) Archive(ctx context.Context, outcome *Outcome) error {
	b, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return err
	}
	key := a.Prefix + "checks/" + outcome.ID + ".json"
	return a.Client.Put(ctx, a.Bucket, key, bytes.NewReader(b), "application/json")
}

// StoreArchiver ingests the rendered report into the document store so past
// checks can be retrieved by similarity.
type StoreArchiver struct {
	Store docstore.Store
}

func (a *StoreArchiver) Name() string { return "docstore" }

func (a *StoreArchiver) Archive(ctx context.Context, outcome *Outcome) error {
	metadata := map[string]interface{}{
		"status":     outcome.Status,
		"checked_at": outcome.CheckedAt.Format(time.RFC3339),
	}
	if outcome.Comparison != nil {
		metadata["score"] = outcome.Comparison.Score
	}
	return a.Store.AddDocument(ctx, docstore.Document{
		ID:       outcome.ID,
		Content:  outcome.Report,
		Metadata: metadata,
	})
}
