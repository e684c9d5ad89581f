package instrument

import (
	"strings"
	"sync"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/note"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrInvalidInstrument = errors.New("invalid instrument")
	ErrPreset            = errors.New("preset instruments cannot be changed")
)

// Spec is the stored form of a custom instrument. Tuning keeps the raw
// spellings; invalid ones are dropped on registration.
type Spec struct {
	Name        string   `json:"name" yaml:"name" dynamodbav:"PK"`
	Tuning      []string `json:"tuning" yaml:"tuning" dynamodbav:"Tuning"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" dynamodbav:"Description,omitempty"`
}

type Instrument struct {
	Name        string `json:"name"`
	Tuning      Tuning `json:"tuning"`
	Description string `json:"description"`
	Custom      bool   `json:"custom"`
}

func (i Instrument) Fretboard(frets int) Fretboard {
	return Fretboard{Tuning: i.Tuning, Frets: frets}
}

func (i Instrument) Spec() Spec {
	return Spec{Name: i.Name, Tuning: i.Tuning.Names(), Description: i.Description}
}

var presets = []Instrument{
	{Name: "Guitar (Standard)", Tuning: Tuning{note.E, note.A, note.D, note.G, note.B, note.E}, Description: "Standard EADGBE tuning"},
	{Name: "Guitar (Drop D)", Tuning: Tuning{note.D, note.A, note.D, note.G, note.B, note.E}, Description: "Drop D tuning"},
	{Name: "Mandolin", Tuning: Tuning{note.G, note.D, note.A, note.E}, Description: "Standard GDAE tuning"},
	{Name: "Banjo (5-string)", Tuning: Tuning{note.G, note.D, note.G, note.B, note.D}, Description: "Standard 5-string banjo tuning"},
	{Name: "Ukulele (Soprano)", Tuning: Tuning{note.G, note.C, note.E, note.A}, Description: "Standard GCEA tuning"},
	{Name: "Bass (4-string)", Tuning: Tuning{note.E, note.A, note.D, note.G}, Description: "Standard bass tuning"},
	{Name: "Bass (5-string)", Tuning: Tuning{note.B, note.E, note.A, note.D, note.G}, Description: "5-string bass with low B"},
}

var presetGrids = []Grid{
	{Name: "Launchpad (Fourths)", Rows: 8, Cols: 8, RowStep: 5, ColStep: 1},
	{Name: "Launchpad (Chromatic)", Rows: 8, Cols: 8, RowStep: 8, ColStep: 1},
	{Name: "LinnStrument", Rows: 8, Cols: 16, RowStep: 5, ColStep: 1},
	{Name: "Wicki-Hayden", Rows: 6, Cols: 12, RowStep: 7, ColStep: 2},
}

// Source is where a custom instrument or grid came from. Reloading one
// source leaves the entries of the others in place.
type Source string

const (
	SourceLocal   Source = "local"
	SourceCatalog Source = "catalog"
	SourceDynamo  Source = "dynamo"
)

// Registry holds the preset instruments and grids plus any custom ones.
// Names keep insertion order. Safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	instruments map[string]Instrument
	order       []string
	grids       map[string]Grid
	gridOrder   []string
	sources     map[string]Source
	customGrids map[string]Source
}

func NewRegistry() *Registry {
	r := &Registry{
		instruments: make(map[string]Instrument),
		grids:       make(map[string]Grid),
		sources:     make(map[string]Source),
		customGrids: make(map[string]Source),
	}
	for _, p := range presets {
		r.instruments[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	for _, g := range presetGrids {
		r.grids[g.Name] = g
		r.gridOrder = append(r.gridOrder, g.Name)
	}
	return r
}

func (r *Registry) Get(name string) (Instrument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instruments[name]
	if !ok {
		return Instrument{}, errors.Wrapf(ErrUnknownInstrument, "%q", name)
	}
	return inst, nil
}

func (r *Registry) Grid(name string) (Grid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.grids[name]
	if !ok {
		return Grid{}, errors.Wrapf(ErrUnknownInstrument, "grid %q", name)
	}
	return g, nil
}

// Layout resolves name as an instrument first and then as a grid. frets only
// applies to instruments.
func (r *Registry) Layout(name string, frets int) (Layout, error) {
	if inst, err := r.Get(name); err == nil {
		return inst.Fretboard(frets), nil
	}
	g, err := r.Grid(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownInstrument, "%q", name)
	}
	return g, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

func (r *Registry) GridNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.gridOrder)
}

func (r *Registry) Instruments() []Instrument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Instrument, 0, len(r.order))
	for _, name := range r.order {
		res = append(res, r.instruments[name])
	}
	return res
}

// Custom lists custom instruments from any of srcs, or from every source
// when srcs is empty.
func (r *Registry) Custom(srcs ...Source) []Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Spec
	for _, name := range r.order {
		inst := r.instruments[name]
		if inst.Custom && (len(srcs) == 0 || slices.Contains(srcs, r.sources[name])) {
			res = append(res, inst.Spec())
		}
	}
	return res
}

func (r *Registry) CustomGrids() []Grid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Grid
	for _, name := range r.gridOrder {
		if _, ok := r.customGrids[name]; ok {
			res = append(res, r.grids[name])
		}
	}
	return res
}

func buildCustom(s Spec) (Instrument, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return Instrument{}, errors.Wrap(ErrInvalidInstrument, "empty name")
	}
	var tuning Tuning
	for _, n := range TuningFromNames(s.Tuning) {
		if n.Valid() {
			tuning = append(tuning, n)
		}
	}
	if len(tuning) == 0 {
		return Instrument{}, errors.Wrapf(ErrInvalidInstrument, "%q has no valid notes", name)
	}
	if len(tuning) > constants.MaxStrings {
		return Instrument{}, errors.Wrapf(ErrInvalidInstrument, "%q has %d strings, at most %d", name, len(tuning), constants.MaxStrings)
	}
	description := s.Description
	if description == "" {
		description = "Custom tuning: " + tuning.String()
	}
	return Instrument{Name: name, Tuning: tuning, Description: description, Custom: true}, nil
}

func validGrid(g Grid) error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.Wrap(ErrInvalidInstrument, "empty grid name")
	}
	if g.Rows <= 0 || g.Cols <= 0 || g.Rows > constants.MaxGridRows || g.Cols > constants.MaxGridCols {
		return errors.Wrapf(ErrInvalidInstrument, "grid %q is %dx%d, at most %dx%d",
			g.Name, g.Rows, g.Cols, constants.MaxGridRows, constants.MaxGridCols)
	}
	return nil
}

func (r *Registry) isPreset(name string) bool {
	inst, ok := r.instruments[name]
	if ok && !inst.Custom {
		return true
	}
	_, ok = r.grids[name]
	_, custom := r.customGrids[name]
	return ok && !custom
}

// AddCustom registers or replaces a custom instrument. Unrecognised note
// names are dropped.
func (r *Registry) AddCustom(name string, noteNames []string, description string) (Instrument, error) {
	inst, err := buildCustom(Spec{Name: name, Tuning: noteNames, Description: description})
	if err != nil {
		return Instrument{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isPreset(inst.Name) {
		return Instrument{}, errors.Wrapf(ErrPreset, "%q", inst.Name)
	}
	if _, ok := r.instruments[inst.Name]; !ok {
		r.order = append(r.order, inst.Name)
	}
	r.instruments[inst.Name] = inst
	r.sources[inst.Name] = SourceLocal
	return inst, nil
}

func (r *Registry) AddGrid(g Grid) error {
	if err := validGrid(g); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isPreset(g.Name) {
		return errors.Wrapf(ErrPreset, "%q", g.Name)
	}
	if _, ok := r.grids[g.Name]; !ok {
		r.gridOrder = append(r.gridOrder, g.Name)
	}
	r.grids[g.Name] = g
	r.customGrids[g.Name] = SourceLocal
	return nil
}

// Remove deletes a custom instrument or grid. Presets are never removed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inst, ok := r.instruments[name]; ok && inst.Custom {
		delete(r.instruments, name)
		delete(r.sources, name)
		r.order = remove(r.order, name)
		return true
	}
	if _, ok := r.customGrids[name]; ok {
		delete(r.grids, name)
		delete(r.customGrids, name)
		r.gridOrder = remove(r.gridOrder, name)
		return true
	}
	return false
}

// ReplaceSource swaps the custom entries that came from src for specs and
// grids. Entries from other sources stay unless a new entry takes their
// name. Nothing changes if any entry is invalid.
func (r *Registry) ReplaceSource(src Source, specs []Spec, grids []Grid) error {
	built := make([]Instrument, 0, len(specs))
	for _, s := range specs {
		inst, err := buildCustom(s)
		if err != nil {
			return err
		}
		built = append(built, inst)
	}
	for _, g := range grids {
		if err := validGrid(g); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inst := range built {
		if r.isPreset(inst.Name) {
			return errors.Wrapf(ErrPreset, "%q", inst.Name)
		}
	}
	for _, g := range grids {
		if r.isPreset(g.Name) {
			return errors.Wrapf(ErrPreset, "%q", g.Name)
		}
	}

	for _, name := range slices.Clone(r.order) {
		if r.instruments[name].Custom && r.sources[name] == src {
			delete(r.instruments, name)
			delete(r.sources, name)
			r.order = remove(r.order, name)
		}
	}
	for _, name := range slices.Clone(r.gridOrder) {
		if from, ok := r.customGrids[name]; ok && from == src {
			delete(r.grids, name)
			delete(r.customGrids, name)
			r.gridOrder = remove(r.gridOrder, name)
		}
	}

	for _, inst := range built {
		if _, ok := r.instruments[inst.Name]; !ok {
			r.order = append(r.order, inst.Name)
		}
		r.instruments[inst.Name] = inst
		r.sources[inst.Name] = src
	}
	for _, g := range grids {
		if _, ok := r.grids[g.Name]; !ok {
			r.gridOrder = append(r.gridOrder, g.Name)
		}
		r.grids[g.Name] = g
		r.customGrids[g.Name] = src
	}
	return nil
}

func remove(names []string, name string) []string {
	i := slices.Index(names, name)
	if i < 0 {
		return names
	}
	return slices.Delete(names, i, i+1)
}
