package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVWithHeader(t *testing.T) {
	in := "Binding Energy (eV),Counts\n290.0,120\n289.5,180\n289.0,400\n"

	s, err := Load(strings.NewReader(in), "C1s")
	require.NoError(t, err)

	assert.Equal(t, "C1s", s.Name)
	assert.Equal(t, "Binding Energy (eV)", s.XLabel)
	assert.Equal(t, "Counts", s.YLabel)
	assert.Equal(t, []float64{290, 289.5, 289}, s.X)
	assert.Equal(t, []float64{120, 180, 400}, s.Y)
	assert.Equal(t, 3, s.Len())
	assert.Zero(t, s.Dropped)
}

func TestLoadDelimiters(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "comma", in: "1,10\n2,20\n3,30\n"},
		{name: "semicolon", in: "1;10\n2;20\n3;30\n"},
		{name: "tab", in: "1\t10\n2\t20\n3\t30\n"},
		{name: "whitespace", in: "  1   10\n2 20\n\n3    30  \n"},
		{name: "crlf", in: "1,10\r\n2,20\r\n3,30\r\n"},
		{name: "comments", in: "# exported\n1,10\n# mid\n2,20\n3,30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(strings.NewReader(tt.in), "s")
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 2, 3}, s.X)
			assert.Equal(t, []float64{10, 20, 30}, s.Y)
			assert.Equal(t, DefaultXLabel, s.XLabel)
			assert.Equal(t, DefaultYLabel, s.YLabel)
		})
	}
}

func TestLoadDropsInvalidRows(t *testing.T) {
	in := strings.Join([]string{
		"E,I",
		"5,50",
		"4,",
		",40",
		"3,NaN",
		"2,abc",
		"1",
		"0,+Inf",
		"-1,10",
		"-2,20,extra",
	}, "\n")

	s, err := Load(strings.NewReader(in), "s")
	require.NoError(t, err)

	assert.Equal(t, []float64{5, -1, -2}, s.X)
	assert.Equal(t, []float64{50, 10, 20}, s.Y)
	assert.Equal(t, 6, s.Dropped)
}

func TestLoadTooFewRows(t *testing.T) {
	_, err := Load(strings.NewReader("x,y\n1,2\n3,\n"), "s")
	require.ErrorIs(t, err, ErrTooFewRows)

	_, err = Load(strings.NewReader("x,y\n"), "s")
	require.ErrorIs(t, err, ErrTooFewRows)
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader("\n\n  \n"), "s")
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Fe2p.sample-3.csv")
	require.NoError(t, os.WriteFile(path, []byte("BE,CPS\n712,1\n711,2\n710,3\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fe2p.sample-3", s.Name)
	assert.Equal(t, "BE", s.XLabel)
	assert.Equal(t, []float64{712, 711, 710}, s.X)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
