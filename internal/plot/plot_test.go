package plot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biggeezerdevelopment/digitfreq/internal/store"
)

func table(t *testing.T, width int, values map[uint64]uint64) store.Table {
	t.Helper()
	s, err := store.NewSet(store.Sparse, width, 0)
	require.NoError(t, err)
	tbl := s.Width(width)
	for v, c := range values {
		tbl.Add(v, c)
	}
	return tbl
}

func TestSeries(t *testing.T) {
	x, y := Series(table(t, 2, map[uint64]uint64{0x90: 4, 0x12: 1, 0x45: 2}))
	assert.Equal(t, []float64{0x12, 0x45, 0x90}, x)
	assert.Equal(t, []float64{1, 2, 4}, y)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, table(t, 1, map[uint64]uint64{1: 3, 2: 5, 9: 1}), "pi digits")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "<svg"), "not an svg document")
}

func TestRender_SinglePoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, table(t, 1, map[uint64]uint64{7: 2}), "one"))
	assert.NotZero(t, buf.Len())
}

func TestRender_Empty(t *testing.T) {
	err := Render(&bytes.Buffer{}, table(t, 3, nil), "empty")
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w1.svg")
	require.NoError(t, RenderFile(path, table(t, 1, map[uint64]uint64{0: 1, 15: 2}), "hex"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
