// Package document models the routing document: a shallow graph of
// labeled objects. Assemblies group element bodies, bodies group pin
// features, and wire curves are built between them. Objects are
// addressed by their display label; labels are human-assigned and not
// required to be unique.
package document

import (
	"qet-wiremanager/pkg/geometry"
)

// Object is anything in the document addressable by its display label.
type Object interface {
	Label() string
}

// Grouping is an object that exposes child objects.
type Grouping interface {
	Object
	Children() []Object
}

// PointProvider is an object whose shape exposes ordered vertex points,
// expressed in the enclosing body's local frame.
type PointProvider interface {
	Object
	Points() []geometry.Point3D
}

// Placed is an object carrying a placement transform into global
// coordinates.
type Placed interface {
	Object
	Placement() Placement
}

// Container enumerates child objects in their native order.
type Container interface {
	Children() []Object
}

// Document is the root container of a routing document.
type Document struct {
	Name    string
	objects []Object
}

// New creates an empty document.
func New(name string) *Document {
	return &Document{Name: name}
}

// Children returns the top-level objects in insertion order.
func (d *Document) Children() []Object {
	return d.objects
}

// Add appends a top-level object.
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

// Curves returns all wire curves in the document, in insertion order.
func (d *Document) Curves() []*WireCurve {
	var curves []*WireCurve
	for _, obj := range d.objects {
		if c, ok := obj.(*WireCurve); ok {
			curves = append(curves, c)
		}
	}
	return curves
}

// FindCurve returns the first wire curve with the given display label,
// or nil if none exists.
func (d *Document) FindCurve(label string) *WireCurve {
	for _, c := range d.Curves() {
		if c.Label() == label {
			return c
		}
	}
	return nil
}
