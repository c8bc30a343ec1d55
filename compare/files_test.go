package compare

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCompareFilesTypeMismatch(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "expected.csv", "v\n1\n")
	src := writeFile(t, dir, "actual.go", "package main\n")

	fc := NewFileComparator(NewSemanticScorer(failingEmbedder{}), 1e-6)
	result, err := fc.CompareFiles(context.Background(), csv, src)
	if err != nil {
		t.Fatalf("CompareFiles: %v", err)
	}
	if result.Score != 0.0 {
		t.Errorf("score = %v, want 0.0", result.Score)
	}
	if len(result.Differences) != 1 || result.Differences[0] != "File type mismatch: .csv vs .go" {
		t.Errorf("differences = %v, want the single type mismatch message", result.Differences)
	}
}

func TestCompareFilesScalarBranch(t *testing.T) {
	dir := t.TempDir()
	expected := writeFile(t, dir, "expected.csv", "score\n0.8\n")
	actual := writeFile(t, dir, "actual.csv", "score\n0.8\n")

	fc := NewFileComparator(NewSemanticScorer(failingEmbedder{}), 1e-6)
	result, err := fc.CompareFiles(context.Background(), expected, actual)
	if err != nil {
		t.Fatalf("CompareFiles: %v", err)
	}
	// 1x1 tables go through the scalar branch: binary score, no embedding.
	if result.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", result.Score)
	}
}

func TestCompareFilesTabularBranch(t *testing.T) {
	dir := t.TempDir()
	expected := writeFile(t, dir, "expected.csv", "metric,value\naccuracy,0.91\nrecall,0.85\n")
	actual := writeFile(t, dir, "actual.csv", "metric,value\naccuracy,0.91\nrecall,0.85\n")

	fc := NewFileComparator(NewSemanticScorer(bagEmbedder{}), 1e-6)
	result, err := fc.CompareFiles(context.Background(), expected, actual)
	if err != nil {
		t.Fatalf("CompareFiles: %v", err)
	}
	if math.Abs(result.Score-1.0) > 1e-9 {
		t.Errorf("score = %v, want 1.0", result.Score)
	}
}

func TestCompareFilesMissingFileIsError(t *testing.T) {
	dir := t.TempDir()
	expected := writeFile(t, dir, "expected.csv", "v\n1\n")

	fc := NewFileComparator(NewSemanticScorer(bagEmbedder{}), 1e-6)
	if _, err := fc.CompareFiles(context.Background(), expected, filepath.Join(dir, "missing.csv")); err == nil {
		t.Fatal("expected an error for an unreadable file")
	}
}
