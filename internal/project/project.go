// Package project provides project file handling and persistence.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// TableRef names a wire table and the sheet file backing it, relative
// to the project file.
type TableRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// File represents a wire manager project file (.qwmproj).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	// Data file paths (relative to project file)
	DocumentPath  string     `json:"document,omitempty"`
	SchematicPath string     `json:"schematic,omitempty"`
	Tables        []TableRef `json:"tables,omitempty"`

	// User settings
	Settings ProjectSettings `json:"settings,omitempty"`
}

// ProjectSettings holds user preferences for the project.
type ProjectSettings struct {
	CurveSag float64 `json:"curve_sag,omitempty"`
}

// New creates a new project file with default settings.
func New(name string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
	}
}

// Load loads a project from a .qwmproj file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, err
	}

	return &proj, nil
}

// Save saves the project to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetDocument sets the routing document path (relative to project).
func (p *File) SetDocument(projectPath, docPath string) {
	p.DocumentPath = relTo(projectPath, docPath)
	p.Modified = time.Now()
}

// SetSchematic sets the schematic export path (relative to project).
func (p *File) SetSchematic(projectPath, exportPath string) {
	p.SchematicPath = relTo(projectPath, exportPath)
	p.Modified = time.Now()
}

// AddTable records a wire table and its backing sheet file. An existing
// entry with the same name is replaced.
func (p *File) AddTable(projectPath, name, sheetPath string) {
	ref := TableRef{Name: name, Path: relTo(projectPath, sheetPath)}
	for i, t := range p.Tables {
		if t.Name == name {
			p.Tables[i] = ref
			p.Modified = time.Now()
			return
		}
	}
	p.Tables = append(p.Tables, ref)
	p.Modified = time.Now()
}

// GetDocumentPath returns the absolute path to the routing document.
func (p *File) GetDocumentPath(projectPath string) string {
	if p.DocumentPath == "" {
		// Default: project_name_document.json
		base := projectPath[:len(projectPath)-len(filepath.Ext(projectPath))]
		return base + "_document.json"
	}
	return absFrom(projectPath, p.DocumentPath)
}

// GetSchematicPath returns the absolute path to the schematic export.
func (p *File) GetSchematicPath(projectPath string) string {
	if p.SchematicPath == "" {
		return ""
	}
	return absFrom(projectPath, p.SchematicPath)
}

// GetTablePath returns the absolute path to a table's sheet file.
func (p *File) GetTablePath(projectPath string, ref TableRef) string {
	return absFrom(projectPath, ref.Path)
}

func relTo(projectPath, path string) string {
	rel, err := filepath.Rel(filepath.Dir(projectPath), path)
	if err != nil {
		return path
	}
	return rel
}

func absFrom(projectPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(projectPath), path)
}
