package smooth

import (
	"fmt"
	"strings"
)

// Algorithm identifies a smoothing algorithm. The zero value is not a valid
// algorithm so that an unset field fails closed.
type Algorithm int

const (
	Gaussian Algorithm = iota + 1
	SavitzkyGolay
	MovingAverage
	Wiener
	None
)

type algorithmEntry struct {
	alg     Algorithm
	name    string // canonical, used for persistence and flags
	display string // label shown in tables and plots
	aliases []string
}

var registry = []algorithmEntry{
	{Gaussian, "gaussian", "Gaussian", []string{"gauss"}},
	{SavitzkyGolay, "savitzky-golay", "Savitsky-Golay", []string{"savitsky-golay", "savgol", "sg"}},
	{MovingAverage, "moving-average", "Moving Average", []string{"movingaverage", "boxcar", "ma"}},
	{Wiener, "wiener", "Wiener", nil},
	{None, "none", "None", []string{"off", "identity"}},
}

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registry))
	for i, e := range registry {
		out[i] = e.alg
	}
	return out
}

func lookup(a Algorithm) (algorithmEntry, bool) {
	for _, e := range registry {
		if e.alg == a {
			return e, true
		}
	}
	return algorithmEntry{}, false
}

// Valid reports whether a is one of the known algorithms.
func (a Algorithm) Valid() bool {
	_, ok := lookup(a)
	return ok
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if e, ok := lookup(a); ok {
		return e.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// DisplayName returns the human label, e.g. "Moving Average".
func (a Algorithm) DisplayName() string {
	if e, ok := lookup(a); ok {
		return e.display
	}
	return a.String()
}

// ParseAlgorithm resolves a name to an Algorithm. Matching ignores case and
// treats spaces and underscores as dashes, so "Moving Average",
// "moving_average" and "moving-average" are equivalent. Unknown names return
// ErrUnsupportedAlgorithm; there is no fallback.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalizeName(name)
	for _, e := range registry {
		if key == e.name || key == normalizeName(e.display) {
			return e.alg, nil
		}
		for _, alias := range e.aliases {
			if key == alias {
				return e.alg, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.Join(strings.Fields(s), "-")
}
