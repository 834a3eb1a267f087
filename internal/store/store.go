// Package store persists D-parameter results keyed by source and peak
// label. Writing one entry never disturbs other labels of the same source
// or any other source.
package store

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-xps/measure/dparam"
)

// LabelPrefix prefixes the generated peak labels D1, D2, ...
const LabelPrefix = "D"

var (
	// ErrNotFound is returned when a key has no entry.
	ErrNotFound = errors.New("store: not found")
	// ErrInvalidKey is returned for a key with an empty source or label.
	ErrInvalidKey = errors.New("store: invalid key")
)

// Key addresses one entry.
type Key struct {
	Source string
	Label  string
}

func (k Key) String() string { return k.Source + "/" + k.Label }

func (k Key) validate() error {
	if strings.TrimSpace(k.Source) == "" || strings.TrimSpace(k.Label) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidKey, k.String())
	}
	return nil
}

// Entry is one persisted measurement.
type Entry struct {
	RunID                uuid.UUID
	Center               float64
	Separation           float64
	PrePasses            int
	PostPasses           int
	SmoothWidth          float64
	DiffWidth            float64
	Algorithm            string
	NormalizedDerivative []float64
	CreatedAt            time.Time
}

// NewEntry captures res with a fresh run ID and the current time.
func NewEntry(res *dparam.Result) Entry {
	return Entry{
		RunID:                uuid.New(),
		Center:               res.Center,
		Separation:           res.Separation,
		PrePasses:            res.Config.PrePasses,
		PostPasses:           res.Config.PostPasses,
		SmoothWidth:          res.Config.SmoothWidth,
		DiffWidth:            res.Config.DiffWidth,
		Algorithm:            res.Config.Algorithm.String(),
		NormalizedDerivative: slices.Clone(res.NormalizedDerivative),
		CreatedAt:            time.Now().UTC(),
	}
}

// Record is an entry together with its key.
type Record struct {
	Key
	Entry
}

// Store is a keyed result store. Every write is atomic.
type Store interface {
	// Put inserts or replaces the entry at key.
	Put(key Key, e Entry) error
	// Get returns the entry at key or ErrNotFound.
	Get(key Key) (Entry, error)
	// Peaks returns every entry of source ordered by label.
	Peaks(source string) ([]Record, error)
	// Sources lists the sources holding at least one entry, sorted.
	Sources() ([]string, error)
	// ClearSource removes every entry of source and reports how many.
	ClearSource(source string) (int, error)
	// Delete removes one entry or returns ErrNotFound.
	Delete(key Key) error
	Close() error
}

// NextLabel returns the first unused generated label of source: one past
// the highest existing D<n>, or D1 for an empty source.
func NextLabel(s Store, source string) (string, error) {
	recs, err := s.Peaks(source)
	if err != nil {
		return "", err
	}

	next := 1
	for _, r := range recs {
		if n, ok := labelNumber(r.Label); ok && n >= next {
			next = n + 1
		}
	}

	return LabelPrefix + strconv.Itoa(next), nil
}

func labelNumber(label string) (int, bool) {
	rest, ok := strings.CutPrefix(label, LabelPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// compareLabels orders generated labels numerically (D2 before D10) and
// everything else lexically after them.
func compareLabels(a, b string) int {
	na, oka := labelNumber(a)
	nb, okb := labelNumber(b)
	switch {
	case oka && okb:
		return na - nb
	case oka:
		return -1
	case okb:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func sortRecords(recs []Record) {
	slices.SortFunc(recs, func(a, b Record) int {
		return compareLabels(a.Label, b.Label)
	})
}
