// Package source loads two-column spectra from delimited text files.
//
// The first column is the x axis (usually binding energy) and the second
// the measured counts. Comma, semicolon, tab and whitespace separated files
// are accepted; the delimiter is taken from the first non-blank line. An
// optional header row names the two axes. Rows that are short or carry a
// value that is missing, non-numeric or non-finite are dropped. Row order
// is preserved, so a descending energy axis stays descending.
package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MinRows is the smallest number of valid rows a sheet may have.
const MinRows = 2

var (
	// ErrTooFewRows is returned when fewer than MinRows valid rows remain.
	ErrTooFewRows = errors.New("source: too few valid rows")
	// ErrEmpty is returned for input without any non-blank line.
	ErrEmpty = errors.New("source: empty input")
)

// Default axis labels for files without a header.
const (
	DefaultXLabel = "x"
	DefaultYLabel = "y"
)

// Sheet is one loaded curve.
type Sheet struct {
	Name   string
	XLabel string
	YLabel string
	X      []float64
	Y      []float64
	// Dropped counts data rows that were skipped.
	Dropped int
}

// Len returns the number of samples.
func (s *Sheet) Len() int { return len(s.X) }

// LoadFile reads the file at path. The sheet is named after the file's
// base name without extension.
func LoadFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	s, err := Load(f, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load reads a sheet from r and gives it name.
func Load(r io.Reader, name string) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}

	records, err := split(data)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	s := &Sheet{Name: name, XLabel: DefaultXLabel, YLabel: DefaultYLabel}

	if isHeader(records[0]) {
		if len(records[0]) > 0 {
			s.XLabel = strings.TrimSpace(records[0][0])
		}
		if len(records[0]) > 1 {
			s.YLabel = strings.TrimSpace(records[0][1])
		}
		records = records[1:]
	}

	for _, rec := range records {
		x, y, ok := parseRow(rec)
		if !ok {
			s.Dropped++
			continue
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}

	if len(s.X) < MinRows {
		return nil, fmt.Errorf("%w: %d valid of %d rows, need %d",
			ErrTooFewRows, len(s.X), len(records), MinRows)
	}

	return s, nil
}

func split(data []byte) ([][]string, error) {
	delim, ok := detectDelimiter(data)
	if !ok {
		var out [][]string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, strings.Fields(line))
		}
		return out, nil
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	out, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("source: parse: %w", err)
	}
	return out, nil
}

// detectDelimiter inspects the first non-blank, non-comment line. It
// reports false for whitespace separated input.
func detectDelimiter(data []byte) (rune, bool) {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, d := range []rune{',', ';', '\t'} {
			if strings.ContainsRune(line, d) {
				return d, true
			}
		}
		return 0, false
	}
	return 0, false
}

// isHeader reports whether rec looks like column labels rather than data.
func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	for _, f := range rec[:min(2, len(rec))] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil && strings.TrimSpace(f) != "" {
			return true
		}
	}
	return false
}

func parseRow(rec []string) (float64, float64, bool) {
	if len(rec) < 2 {
		return 0, 0, false
	}
	x, ok := parseValue(rec[0])
	if !ok {
		return 0, 0, false
	}
	y, ok := parseValue(rec[1])
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

func parseValue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
