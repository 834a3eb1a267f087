package store

import (
	"fmt"
	"slices"
	"sync"
)

// Memory is an in-process Store.
type Memory struct {
	mu      sync.RWMutex
	sources map[string]map[string]Entry
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sources: make(map[string]map[string]Entry)}
}

func (m *Memory) Put(key Key, e Entry) error {
	if err := key.validate(); err != nil {
		return err
	}

	e.NormalizedDerivative = slices.Clone(e.NormalizedDerivative)

	m.mu.Lock()
	defer m.mu.Unlock()

	peaks, ok := m.sources[key.Source]
	if !ok {
		peaks = make(map[string]Entry)
		m.sources[key.Source] = peaks
	}
	peaks[key.Label] = e
	return nil
}

func (m *Memory) Get(key Key) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.sources[key.Source][key.Label]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	e.NormalizedDerivative = slices.Clone(e.NormalizedDerivative)
	return e, nil
}

func (m *Memory) Peaks(source string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	peaks := m.sources[source]
	recs := make([]Record, 0, len(peaks))
	for label, e := range peaks {
		e.NormalizedDerivative = slices.Clone(e.NormalizedDerivative)
		recs = append(recs, Record{Key: Key{Source: source, Label: label}, Entry: e})
	}
	sortRecords(recs)
	return recs, nil
}

func (m *Memory) Sources() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.sources))
	for s := range m.sources {
		out = append(out, s)
	}
	slices.Sort(out)
	return out, nil
}

func (m *Memory) ClearSource(source string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.sources[source])
	delete(m.sources, source)
	return n, nil
}

func (m *Memory) Delete(key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	peaks, ok := m.sources[key.Source]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if _, ok := peaks[key.Label]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(peaks, key.Label)
	if len(peaks) == 0 {
		delete(m.sources, key.Source)
	}
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
