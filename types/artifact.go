package types

import (
	"path/filepath"
	"strings"
)

// ArtifactKind classifies what an uploaded artifact contains
type ArtifactKind string

const (
	KindTabular  ArtifactKind = "tabular"
	KindCode     ArtifactKind = "code"
	KindFreeText ArtifactKind = "free-text"
)

// Artifact represents a single uploaded file subject to validation and comparison.
// It is created on upload and never mutated after load.
type Artifact struct {
	Path      string       `json:"path"`
	Ext       string       `json:"ext"`
	SizeBytes int64        `json:"size_bytes"`
	Kind      ArtifactKind `json:"kind"`
}

// NewArtifact builds an Artifact for the given path, classifying it by extension.
func NewArtifact(path string, size int64) *Artifact {
	ext := strings.ToLower(filepath.Ext(path))
	return &Artifact{
		Path:      path,
		Ext:       ext,
		SizeBytes: size,
		Kind:      KindForExt(ext),
	}
}

// KindForExt maps a file extension to its artifact kind.
// Unknown extensions are treated as free text; the validator rejects them anyway.
func KindForExt(ext string) ArtifactKind {
	switch strings.ToLower(ext) {
	case ".csv", ".tsv", ".xlsx":
		return KindTabular
	case ".go":
		return KindCode
	default:
		return KindFreeText
	}
}
