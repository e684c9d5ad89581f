//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/fretdex/cmd"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var server *httptest.Server

const catalog = `instruments:
  - name: Open G
    tuning: [D, G, D, G, B, D]
grids:
  - name: Tiny
    rows: 2
    cols: 3
    row_step: 5
    col_step: 1
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fretdex-e2e")
	if err != nil {
		panic(err.Error())
	}
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalog), 0644); err != nil {
		panic(err.Error())
	}
	cmd.LoadCatalog(path)
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func post(t *testing.T, path string, body interface{}) *http.Response {
	data, err := json.Marshal(body)
	require.Nil(t, err)
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(data))
	require.Nil(t, err)
	return resp
}

func TestCatalogInstrumentsAreServed(t *testing.T) {
	resp, err := http.Get(server.URL + "/instruments")
	require.Nil(t, err)
	defer resp.Body.Close()

	var res []model.InstrumentResponse
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&res))

	byName := map[string]model.InstrumentResponse{}
	for _, inst := range res {
		byName[inst.Name] = inst
	}
	assert := assert.New(t)
	assert.True(byName["Open G"].Custom)
	assert.Equal([]string{"D", "G", "D", "G", "B", "D"}, byName["Open G"].Tuning)
	assert.True(byName["Tiny"].Grid)
}

func TestOpenGMajorTriad(t *testing.T) {
	resp := post(t, "/triads", model.TriadsRequest{
		LayoutRequest: model.LayoutRequest{Instrument: "Open G", Frets: 12},
		Key:           "G",
		Scale:         "Major (Ionian)",
		Degree:        1,
		Strategy:      "string-sets",
	})
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var res model.TriadsResponse
	require.Nil(t, json.Unmarshal(body, &res))
	assert.Equal("G", res.Triad)

	// every open string belongs to G major, so the open strings form voicings
	open := 0
	for _, v := range res.Voicings["string-sets"] {
		if v.Root.Fret == 0 && v.Third.Fret == 0 && v.Fifth.Fret == 0 {
			open++
		}
	}
	assert.NotZero(open)
}

func TestTinyGridPositions(t *testing.T) {
	resp := post(t, "/positions", model.PositionsRequest{
		LayoutRequest: model.LayoutRequest{Instrument: "Tiny"},
		Notes:         []string{"F"},
	})
	defer resp.Body.Close()

	var res model.PositionsResponse
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, []model.Position{{String: 1, Fret: 0, Note: note.F}}, res.Positions)
}

func TestCatalogReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.Nil(t, os.WriteFile(path, []byte(catalog), 0644))

	r := instrument.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go instrument.Watch(ctx, path, r, 20*time.Millisecond, zap.NewNop())

	updated := "instruments:\n  - name: Nashville\n    tuning: [E, A, D, G, B, E]\n"
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(updated), 0644)
		_, err := r.Get("Nashville")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	_, err := r.Get("Open G")
	assert.NotNil(t, err)
}
