package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DetectDelimiter counts each candidate in the first line and returns the most
// frequent one. Ties are broken by candidate order.
func DetectDelimiter(firstLine string, candidates []string) string {
	best := ""
	bestCount := -1
	for _, cand := range candidates {
		if n := strings.Count(firstLine, cand); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best
}

// FirstLine reads the first line of a file without loading the rest.
func FirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", nil
}

// ReadCSV loads a delimited file into a Table. The first record is the header.
// maxRows > 0 bounds how many data rows are read; maxRows <= 0 reads all.
func ReadCSV(path string, delimiter string, maxRows int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if delimiter != "" {
		r.Comma = rune(delimiter[0])
	}
	// Ragged rows are a comparison concern, not a parse failure.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("csv parsing error: %w", err)
	}

	t := &Table{Columns: header}
	for maxRows <= 0 || len(t.Rows) < maxRows {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parsing error: %w", err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// ReadWorkbook loads the first sheet of a spreadsheet into a Table and returns
// the full list of sheet names. Only the first sheet is ever compared.
func ReadWorkbook(path string, maxRows int) (*Table, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("spreadsheet parsing error: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("no sheets found")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, sheets, fmt.Errorf("spreadsheet parsing error: %w", err)
	}
	if len(rows) == 0 {
		return nil, sheets, fmt.Errorf("empty file")
	}

	t := &Table{Columns: rows[0]}
	data := rows[1:]
	if maxRows > 0 && len(data) > maxRows {
		data = data[:maxRows]
	}
	t.Rows = append(t.Rows, data...)
	return t, sheets, nil
}

// Open loads a tabular artifact by extension: delimiter detection plus CSV read
// for delimited text, first sheet for spreadsheets.
func Open(path string, candidates []string, maxRows int) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		line, err := FirstLine(path)
		if err != nil {
			return nil, err
		}
		delim := DetectDelimiter(line, candidates)
		return ReadCSV(path, delim, maxRows)
	case ".xlsx":
		t, _, err := ReadWorkbook(path, maxRows)
		return t, err
	default:
		return nil, fmt.Errorf("unsupported tabular format: %s", filepath.Ext(path))
	}
}
