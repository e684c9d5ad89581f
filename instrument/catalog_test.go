package instrument

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const catalogYAML = `
instruments:
  - name: Open D
    tuning: [D, A, D, F#, A, D]
    description: Open D tuning
  - name: Baritone Uke
    tuning: [D, G, B, E]
grids:
  - name: Thirds
    rows: 4
    cols: 8
    row_step: 4
    col_step: 1
`

func TestParseCatalog(t *testing.T) {
	assert := assert.New(t)

	c, err := ParseCatalog([]byte(catalogYAML))
	require.Nil(t, err)
	assert.Len(c.Instruments, 2)
	assert.Equal([]string{"D", "A", "D", "F#", "A", "D"}, c.Instruments[0].Tuning)
	assert.Equal(Grid{Name: "Thirds", Rows: 4, Cols: 8, RowStep: 4, ColStep: 1}, c.Grids[0])

	_, err = ParseCatalog([]byte("instruments: {"))
	assert.NotNil(err)
}

func TestCatalogFileRoundTrip(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	r := NewRegistry()
	c, err := ParseCatalog([]byte(catalogYAML))
	require.Nil(t, err)
	require.Nil(t, r.Apply(c))
	require.Nil(t, r.Catalog().SaveFile(path))

	loaded, err := LoadFile(path)
	require.Nil(t, err)
	assert.Equal("Custom tuning: D G B E", loaded.Instruments[1].Description)

	other := NewRegistry()
	require.Nil(t, other.Apply(loaded))
	assert.Equal(r.Names(), other.Names())
	assert.Equal(r.GridNames(), other.GridNames())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(err)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.Nil(t, os.WriteFile(path, []byte("instruments: []\n"), 0644))

	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, r, 10*time.Millisecond, zap.NewNop())
	}()

	require.Eventually(t, func() bool {
		// rewrite each tick in case the watcher was not yet registered
		if err := os.WriteFile(path, []byte(catalogYAML), 0644); err != nil {
			return false
		}
		_, err := r.Get("Open D")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.Nil(t, <-done)
}
