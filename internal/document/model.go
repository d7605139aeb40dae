package document

import (
	"encoding/json"
	"fmt"
	"os"

	"qet-wiremanager/pkg/geometry"
)

// Assembly groups element bodies, e.g. one mounting rail or cabinet
// section. It has no geometry of its own.
type Assembly struct {
	name     string
	children []Object
}

// NewAssembly creates an empty assembly.
func NewAssembly(label string) *Assembly {
	return &Assembly{name: label}
}

// Label returns the assembly's display label.
func (a *Assembly) Label() string { return a.name }

// Children returns the grouped objects in insertion order.
func (a *Assembly) Children() []Object { return a.children }

// Add appends a child object.
func (a *Assembly) Add(obj Object) {
	a.children = append(a.children, obj)
}

// Body is a placed grouping: an electrical element's 3D body holding its
// pin features. Pin feature points are expressed in the body's local
// frame; the placement maps them into global coordinates.
type Body struct {
	name      string
	placement Placement
	children  []Object
}

// NewBody creates an empty body with the given placement.
func NewBody(label string, placement Placement) *Body {
	return &Body{name: label, placement: placement}
}

// Label returns the body's display label.
func (b *Body) Label() string { return b.name }

// Children returns the body's features in insertion order.
func (b *Body) Children() []Object { return b.children }

// Add appends a child feature.
func (b *Body) Add(obj Object) {
	b.children = append(b.children, obj)
}

// Placement returns the body's current placement.
func (b *Body) Placement() Placement { return b.placement }

// SetPlacement moves the body. Curves anchored on it go stale until the
// next refresh.
func (b *Body) SetPlacement(p Placement) { b.placement = p }

// PinFeature is a point-bearing leaf: the sketch geometry of one
// terminal, in the enclosing body's local frame.
type PinFeature struct {
	name   string
	points []geometry.Point3D
}

// NewPinFeature creates a feature with the given vertex points.
func NewPinFeature(label string, points []geometry.Point3D) *PinFeature {
	return &PinFeature{name: label, points: points}
}

// Label returns the feature's display label.
func (f *PinFeature) Label() string { return f.name }

// Points returns the feature's ordered vertex points.
func (f *PinFeature) Points() []geometry.Point3D { return f.points }

// Object type tags used in document files.
const (
	typeAssembly  = "assembly"
	typeBody      = "body"
	typeFeature   = "feature"
	typeWireCurve = "wire_curve"
)

// objectData is the serialized form of one document object.
type objectData struct {
	Type      string             `json:"type"`
	Label     string             `json:"label"`
	Placement *Placement         `json:"placement,omitempty"`
	Points    []geometry.Point3D `json:"points,omitempty"`
	SyncLabel string             `json:"sync_label,omitempty"`
	Color     []float64          `json:"color,omitempty"`
	Children  []objectData       `json:"children,omitempty"`
}

// documentFile is the JSON structure of a routing document file.
type documentFile struct {
	Version int          `json:"version"`
	Name    string       `json:"name"`
	Objects []objectData `json:"objects"`
}

// Load reads a routing document from a JSON file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df documentFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	doc := New(df.Name)
	for _, od := range df.Objects {
		obj, err := decodeObject(od)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", path, err)
		}
		doc.Add(obj)
	}
	return doc, nil
}

// Save writes the document to a JSON file.
func (d *Document) Save(path string) error {
	df := documentFile{
		Version: 1,
		Name:    d.Name,
		Objects: make([]objectData, 0, len(d.objects)),
	}
	for _, obj := range d.objects {
		od, err := encodeObject(obj)
		if err != nil {
			return err
		}
		df.Objects = append(df.Objects, od)
	}

	data, err := json.MarshalIndent(df, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func decodeObject(od objectData) (Object, error) {
	switch od.Type {
	case typeAssembly:
		a := NewAssembly(od.Label)
		for _, cd := range od.Children {
			child, err := decodeObject(cd)
			if err != nil {
				return nil, err
			}
			a.Add(child)
		}
		return a, nil

	case typeBody:
		placement := IdentityPlacement()
		if od.Placement != nil {
			placement = *od.Placement
		}
		b := NewBody(od.Label, placement)
		for _, cd := range od.Children {
			child, err := decodeObject(cd)
			if err != nil {
				return nil, err
			}
			b.Add(child)
		}
		return b, nil

	case typeFeature:
		return NewPinFeature(od.Label, od.Points), nil

	case typeWireCurve:
		c := NewWireCurve(od.Label, od.Points)
		c.SetSyncLabel(od.SyncLabel)
		if len(od.Color) == 3 {
			c.SetColor(od.Color[0], od.Color[1], od.Color[2])
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unknown object type %q (label %q)", od.Type, od.Label)
	}
}

func encodeObject(obj Object) (objectData, error) {
	switch o := obj.(type) {
	case *Assembly:
		od := objectData{Type: typeAssembly, Label: o.Label()}
		for _, child := range o.Children() {
			cd, err := encodeObject(child)
			if err != nil {
				return objectData{}, err
			}
			od.Children = append(od.Children, cd)
		}
		return od, nil

	case *Body:
		placement := o.Placement()
		od := objectData{Type: typeBody, Label: o.Label(), Placement: &placement}
		for _, child := range o.Children() {
			cd, err := encodeObject(child)
			if err != nil {
				return objectData{}, err
			}
			od.Children = append(od.Children, cd)
		}
		return od, nil

	case *PinFeature:
		return objectData{Type: typeFeature, Label: o.Label(), Points: o.Points()}, nil

	case *WireCurve:
		od := objectData{
			Type:      typeWireCurve,
			Label:     o.Label(),
			Points:    o.ControlPoints(),
			SyncLabel: o.SyncLabel(),
		}
		if rgb, ok := o.Color(); ok {
			od.Color = []float64{rgb[0], rgb[1], rgb[2]}
		}
		return od, nil

	default:
		return objectData{}, fmt.Errorf("cannot serialize object type %T (label %q)", obj, obj.Label())
	}
}
