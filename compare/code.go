package compare

import (
	"bytes"
	"context"
	"fmt"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"

	"reprocheck/config"
	"reprocheck/types"
)

// compareCode scores two source files. Byte-identical files (after trimming
// outer whitespace) accept trivially without touching the parser or the
// embedding backend. Otherwise the structural score comes from comparing
// canonical comment-free renderings of both parse trees, and the semantic
// score from whole-file embedding similarity of the raw texts.
func (c *FileComparator) compareCode(ctx context.Context, expectedSrc, actualSrc string) (*types.ComparisonResult, error) {
	result := &types.ComparisonResult{Differences: []string{}}

	if strings.TrimSpace(expectedSrc) == strings.TrimSpace(actualSrc) {
		result.Score = 1.0
		return result, nil
	}

	structural := 0.0
	expectedDump, errE := canonicalDump(expectedSrc)
	actualDump, errA := canonicalDump(actualSrc)
	switch {
	case errE != nil || errA != nil:
		result.AddDifference("Syntax error in one or both files")
	case expectedDump == actualDump:
		structural = 1.0
		result.AddDifference("Code structure identical (whitespace/comments differ)")
	default:
		structural = config.StructuralDiffScore
		result.AddDifference("Code structure differs")
	}

	semantic, err := c.scorer.Similarity(ctx, expectedSrc, actualSrc)
	if err != nil {
		return nil, err
	}

	expectedLines := countLines(expectedSrc)
	actualLines := countLines(actualSrc)
	if expectedLines != actualLines {
		result.AddDifference(fmt.Sprintf(
			"Line count differs: %d vs %d", expectedLines, actualLines))
	}

	result.Score = config.CodeStructuralWeight*structural + config.CodeSemanticWeight*semantic
	result.Breakdown = map[string]float64{
		"structural_score": structural,
		"text_similarity":  semantic,
	}
	return result, nil
}

// canonicalDump parses source without comments and renders it back through
// the standard printer. Two sources with equal dumps differ only in
// formatting or comments.
func canonicalDump(src string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, 0)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	cfg := printer.Config{Mode: printer.TabIndent, Tabwidth: 8}
	if err := cfg.Fprint(&buf, fset, file); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func countLines(src string) int {
	return len(strings.Split(strings.TrimSpace(src), "\n"))
}
