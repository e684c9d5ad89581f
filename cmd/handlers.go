package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/view"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger.Debug("request failed", zap.Int("status", status), zap.Error(err))
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "could not decode request body")
	}
	return nil
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ScaleResponse, 0)
	for _, name := range scale.Names() {
		intervals, _ := scale.Intervals(name)
		res = append(res, model.ScaleResponse{Scale: name, Intervals: intervals})
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleCircle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.CircleResponse{
		Fifths:  note.CircleOfFifths(),
		Fourths: note.CircleOfFourths(),
	})
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	_, notes, err := lookupScale(vars["key"], vars["scale"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	intervals, _ := scale.Intervals(vars["scale"])
	writeJSON(w, http.StatusOK, model.ScaleResponse{
		Key:       vars["key"],
		Scale:     vars["scale"],
		Notes:     notes,
		Intervals: intervals,
	})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	root, quality, err := chord.Parse(symbol)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ChordResponse{
		Symbol:  chord.Name(root, quality),
		Root:    root,
		Quality: quality,
		Notes:   chord.Notes(root, quality),
	})
}

// HandleDiatonic accepts ?containing=<note> to keep only chords with that note.
func HandleDiatonic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	triads, sevenths, err := diatonicChords(vars["key"], vars["scale"], r.URL.Query().Get("containing"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	res := model.DiatonicResponse{
		Key:      vars["key"],
		Scale:    vars["scale"],
		Triads:   make([]model.DiatonicChord, 0),
		Sevenths: make([]model.DiatonicChord, 0),
	}
	for _, t := range triads {
		res.Triads = append(res.Triads, model.DiatonicChord{Degree: t.Degree, Name: t.Name(), Notes: t.Notes()})
	}
	for _, s := range sevenths {
		res.Sevenths = append(res.Sevenths, model.DiatonicChord{Degree: s.Degree, Name: s.Name(), Notes: s.Notes()})
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleInstruments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, instrumentList())
}

func HandlePositions(w http.ResponseWriter, r *http.Request) {
	var input model.PositionsRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	layout, err := resolveLayout(input.LayoutRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	positions, err := findPositions(input.Notes, layout)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if positions == nil {
		positions = make([]model.Position, 0)
	}
	writeJSON(w, http.StatusOK, model.PositionsResponse{Positions: positions})
}

func HandlePatterns(w http.ResponseWriter, r *http.Request) {
	var input model.PatternsRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	layout, err := resolveLayout(input.LayoutRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	patterns, err := findPatterns(input.Key, input.Scale, input.ThreeNotesPerString, layout)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if patterns == nil {
		patterns = make([]model.Pattern, 0)
	}
	writeJSON(w, http.StatusOK, model.PatternsResponse{Patterns: patterns})
}

func HandleTriads(w http.ResponseWriter, r *http.Request) {
	var input model.TriadsRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	layout, err := resolveLayout(input.LayoutRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := diatonicTriad(input.Key, input.Scale, input.Degree)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	voicings, err := findVoicings(t, input.Strategy, layout)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TriadsResponse{Triad: t.Name(), Voicings: voicings})
}

// HandleRender renders a view state. Fields missing from the body keep their
// defaults.
func HandleRender(w http.ResponseWriter, r *http.Request) {
	input := view.DefaultState()
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := checkBoardSize(input.Frets, len(input.Tuning)); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := view.Render(input, registry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
