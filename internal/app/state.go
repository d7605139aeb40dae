// Package app provides application lifecycle management, state, and events.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"qet-wiremanager/internal/curve"
	"qet-wiremanager/internal/document"
	"qet-wiremanager/internal/project"
	"qet-wiremanager/internal/schematic"
	"qet-wiremanager/internal/wiresync"
	"qet-wiremanager/internal/wiretable"
)

// ErrNoSelection is returned by curve operations when no wire row or
// curve is selected.
var ErrNoSelection = errors.New("no selection")

// ErrNoActiveTable is returned when an operation needs a wire table and
// none is open.
var ErrNoActiveTable = errors.New("no active wire table")

// DefaultTableName is the table created for imports when the project
// does not name one.
const DefaultTableName = "Wires"

// State holds the application state including the current project, the
// routing document, and the open wire tables.
type State struct {
	mu sync.RWMutex

	// Project
	ProjectPath string
	Project     *project.File
	Modified    bool

	// Routing document
	Doc     *document.Document
	DocPath string

	// Wire tables
	Tables      *wiretable.Registry
	tablePaths  map[string]string
	ActiveTable string

	// Selection
	SelectedRow   int
	SelectedCurve *document.WireCurve

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventProjectLoaded EventType = iota
	EventProjectSaved
	EventDocumentLoaded
	EventWiresImported
	EventCurveBuilt
	EventCurveRefreshed
	EventLengthMeasured
	EventSelectionChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state with an empty document and an
// empty default wire table.
func NewState() *State {
	s := &State{
		Doc:        document.New("untitled"),
		Tables:     wiretable.NewRegistry(),
		tablePaths: make(map[string]string),
		listeners:  make(map[EventType][]EventListener),
	}
	s.Tables.Add(wiretable.NewSheet(DefaultTableName))
	s.ActiveTable = DefaultTableName
	return s
}

// Reset discards the current project, document, and tables, returning
// the state to its initial shape. Listeners stay registered.
func (s *State) Reset() {
	s.mu.Lock()
	s.ProjectPath = ""
	s.Project = nil
	s.Modified = false
	s.Doc = document.New("untitled")
	s.DocPath = ""
	s.Tables = wiretable.NewRegistry()
	s.Tables.Add(wiretable.NewSheet(DefaultTableName))
	s.tablePaths = make(map[string]string)
	s.ActiveTable = DefaultTableName
	s.SelectedRow = 0
	s.SelectedCurve = nil
	s.mu.Unlock()
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the project as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// syncer builds a curve syncer over the current document and tables,
// honoring the project's sag setting.
func (s *State) syncer() *wiresync.Syncer {
	sy := wiresync.New(s.Doc, s.Tables)
	if s.Project != nil {
		sy.Sag = s.Project.Settings.CurveSag
	}
	return sy
}

// ActiveStore returns the currently active wire table.
func (s *State) ActiveStore() (wiretable.Store, error) {
	s.mu.RLock()
	name := s.ActiveTable
	s.mu.RUnlock()
	if name == "" {
		return nil, ErrNoActiveTable
	}
	return s.Tables.Lookup(name)
}

// LoadProject loads a project and its referenced document and tables.
func (s *State) LoadProject(path string) error {
	proj, err := project.Load(path)
	if err != nil {
		return err
	}

	doc := document.New(proj.Name)
	docPath := proj.GetDocumentPath(path)
	if loaded, err := document.Load(docPath); err == nil {
		doc = loaded
	}

	tables := wiretable.NewRegistry()
	tablePaths := make(map[string]string)
	for _, ref := range proj.Tables {
		sheetPath := proj.GetTablePath(path, ref)
		sheet, err := wiretable.LoadSheet(sheetPath)
		if err != nil {
			return fmt.Errorf("table %s: %w", ref.Name, err)
		}
		tables.Add(sheet)
		tablePaths[sheet.Name()] = sheetPath
	}
	active := ""
	if names := tables.Names(); len(names) > 0 {
		active = names[0]
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Project = proj
	s.Modified = false
	s.Doc = doc
	s.DocPath = docPath
	s.Tables = tables
	s.tablePaths = tablePaths
	s.ActiveTable = active
	s.SelectedRow = 0
	s.SelectedCurve = nil
	s.mu.Unlock()

	s.Emit(EventProjectLoaded, path)
	return nil
}

// SaveProject saves the project file, the routing document, and every
// open wire table.
func (s *State) SaveProject(path string) error {
	s.mu.Lock()
	if s.Project == nil {
		s.Project = project.New("untitled")
	}
	proj := s.Project
	if s.DocPath == "" {
		s.DocPath = proj.GetDocumentPath(path)
	}
	docPath := s.DocPath
	s.mu.Unlock()

	if err := s.Doc.Save(docPath); err != nil {
		return err
	}
	proj.SetDocument(path, docPath)

	for _, name := range s.Tables.Names() {
		store, err := s.Tables.Lookup(name)
		if err != nil {
			return err
		}
		sheet, ok := store.(*wiretable.Sheet)
		if !ok {
			continue
		}
		s.mu.Lock()
		sheetPath, known := s.tablePaths[name]
		if !known {
			// Default: project_name_TableName.json
			base := path[:len(path)-len(filepath.Ext(path))]
			sheetPath = base + "_" + name + ".json"
			s.tablePaths[name] = sheetPath
		}
		s.mu.Unlock()
		if err := sheet.Save(sheetPath); err != nil {
			return err
		}
		proj.AddTable(path, name, sheetPath)
	}

	if err := proj.Save(path); err != nil {
		return err
	}

	s.mu.Lock()
	s.ProjectPath = path
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventProjectSaved, path)
	return nil
}

// LoadDocument replaces the routing document with one loaded from disk.
func (s *State) LoadDocument(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Doc = doc
	s.DocPath = path
	s.SelectedCurve = nil
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventDocumentLoaded, path)
	return nil
}

// ImportSchematic reads a conductor export, resolves it into logical
// wires, and appends them to the active wire table. It returns the
// number of wires imported.
func (s *State) ImportSchematic(path string) (int, error) {
	records, err := schematic.ReadExport(path)
	if err != nil {
		return 0, err
	}
	wires := schematic.Resolve(records)

	store, err := s.ActiveStore()
	if err != nil {
		return 0, err
	}
	wiretable.AppendWires(store, wires)

	if s.Project != nil {
		s.Project.SetSchematic(s.ProjectPath, path)
	}

	s.SetModified(true)
	s.Emit(EventWiresImported, len(wires))
	return len(wires), nil
}

// SelectRow records the selected wire row in the active table. The
// selected curve, if the row already has one bound to it, is left for
// the caller to resolve.
func (s *State) SelectRow(row int) {
	s.mu.Lock()
	s.SelectedRow = row
	s.mu.Unlock()
	s.Emit(EventSelectionChanged, row)
}

// SelectCurve records the selected wire curve.
func (s *State) SelectCurve(c *document.WireCurve) {
	s.mu.Lock()
	s.SelectedCurve = c
	s.mu.Unlock()
	s.Emit(EventSelectionChanged, c)
}

// BuildSelectedCurve builds a curve for the selected row in the active
// table, adds it to the document, and selects it.
func (s *State) BuildSelectedCurve() (*document.WireCurve, error) {
	s.mu.RLock()
	row := s.SelectedRow
	s.mu.RUnlock()
	if row < wiretable.FirstWireRow {
		return nil, ErrNoSelection
	}

	store, err := s.ActiveStore()
	if err != nil {
		return nil, err
	}

	c, err := s.syncer().Build(store, row)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.SelectedCurve = c
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventCurveBuilt, c)
	return c, nil
}

// RefreshCurve re-anchors the selected curve's endpoints to the current
// body positions.
func (s *State) RefreshCurve() error {
	s.mu.RLock()
	c := s.SelectedCurve
	s.mu.RUnlock()
	if c == nil {
		return ErrNoSelection
	}

	if err := s.syncer().Refresh(c); err != nil {
		return err
	}

	s.SetModified(true)
	s.Emit(EventCurveRefreshed, c)
	return nil
}

// MeasureCurve measures the selected curve and writes the length back
// into its wire row.
func (s *State) MeasureCurve() error {
	s.mu.RLock()
	c := s.SelectedCurve
	s.mu.RUnlock()
	if c == nil {
		return ErrNoSelection
	}

	if err := s.syncer().MeasureAndWriteBack(c); err != nil {
		return err
	}

	s.SetModified(true)
	s.Emit(EventLengthMeasured, c)
	return nil
}

// DensifyCurve doubles the selected curve's control point density so
// it can be shaped around obstacles.
func (s *State) DensifyCurve() error {
	s.mu.RLock()
	c := s.SelectedCurve
	s.mu.RUnlock()
	if c == nil {
		return ErrNoSelection
	}

	points, err := curve.Densify(c.ControlPoints())
	if err != nil {
		return err
	}
	c.SetControlPoints(points)

	s.SetModified(true)
	s.Emit(EventCurveRefreshed, c)
	return nil
}
