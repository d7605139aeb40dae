// Package wiresync keeps wire curves and table rows in step: it builds a
// curve from a row's endpoint references, refreshes a curve's endpoints
// from current body positions, and writes measured lengths back to the
// row the curve was built from. The binding between a curve and its row
// is the sync key carried in the curve's secondary label.
package wiresync

import (
	"errors"
	"fmt"
	"log"

	"qet-wiremanager/internal/document"
	"qet-wiremanager/internal/schematic"
	"qet-wiremanager/internal/synckey"
	"qet-wiremanager/internal/wiretable"
	"qet-wiremanager/pkg/colorutil"
	"qet-wiremanager/pkg/geometry"
)

// ErrEndpointNotFound is returned when a wire endpoint's body or pin
// feature cannot be resolved in the document, or the feature has no
// extractable point. Callers treat it as a recoverable condition and
// abort the current operation.
var ErrEndpointNotFound = errors.New("endpoint not found")

// ErrNoEndpoints is returned when a curve carries fewer than two control
// points and so has no endpoints to re-anchor. Documents edited outside
// the application can contain such curves.
var ErrNoEndpoints = errors.New("curve has no endpoints")

// DefaultSag is the perpendicular displacement applied to a new curve's
// middle control point so the curve does not collapse onto the straight
// chord between its endpoints.
const DefaultSag = 5.0

// Syncer carries out curve operations against a routing document and the
// open wire tables. Operations run synchronously and leave the curve
// unmodified on any failure.
type Syncer struct {
	Doc    *document.Document
	Tables *wiretable.Registry

	// Sag overrides DefaultSag when positive.
	Sag float64
}

// New creates a syncer over a document and table registry.
func New(doc *document.Document, tables *wiretable.Registry) *Syncer {
	return &Syncer{Doc: doc, Tables: tables}
}

func (s *Syncer) sag() float64 {
	if s.Sag > 0 {
		return s.Sag
	}
	return DefaultSag
}

// Build creates a new curve for the wire stored at the given table row,
// anchored at the current global positions of both endpoints, and adds
// it to the document. The curve is tagged with a fresh sync key bound to
// (table name, row); the generated code is also written into the row's
// code column. An unparsable color is reported and skipped; the curve is
// still created, uncolored.
func (s *Syncer) Build(table wiretable.Store, row int) (*document.WireCurve, error) {
	w := wiretable.ReadWire(table, row)

	from, err := s.resolveAnchor(w.FromRef, w.FromPin)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveAnchor(w.ToRef, w.ToPin)
	if err != nil {
		return nil, err
	}

	mid := geometry.Midpoint(from, to).
		Add(geometry.Perpendicular(to.Sub(from)).Scale(s.sag()))
	c := document.NewWireCurve(curveLabel(w.WireID), []geometry.Point3D{from, mid, to})

	if w.Color != "" {
		r, g, b, colorErr := colorutil.ParseHex(w.Color)
		if colorErr != nil {
			log.Printf("wire %s: %v, leaving curve uncolored", w.WireID, colorErr)
		} else {
			c.SetColor(r, g, b)
		}
	}

	code := synckey.NewCode()
	c.SetSyncLabel(synckey.Encode(table.Name(), row, code))
	table.Set(wiretable.Cell(wiretable.ColCode, row), code)

	s.Doc.Add(c)
	return c, nil
}

// Refresh re-reads the curve's row through its sync key, re-resolves
// both endpoints, and overwrites only the first and last control points.
// Interior points added by densification are left untouched. The curve
// is unmodified on any failure.
func (s *Syncer) Refresh(c *document.WireCurve) error {
	if c.PointCount() < 2 {
		return fmt.Errorf("%w: %q", ErrNoEndpoints, c.Label())
	}

	w, _, _, err := s.boundWire(c)
	if err != nil {
		return err
	}

	from, err := s.resolveAnchor(w.FromRef, w.FromPin)
	if err != nil {
		return err
	}
	to, err := s.resolveAnchor(w.ToRef, w.ToPin)
	if err != nil {
		return err
	}

	c.SetControlPoint(0, from)
	c.SetControlPoint(c.PointCount()-1, to)
	return nil
}

// MeasureAndWriteBack measures the curve's arc length and writes it, as
// a two-decimal string, into the length column of the row the curve was
// built from.
func (s *Syncer) MeasureAndWriteBack(c *document.WireCurve) error {
	_, table, row, err := s.boundWire(c)
	if err != nil {
		return err
	}
	table.Set(wiretable.Cell(wiretable.ColLength, row), fmt.Sprintf("%.2f", c.Length()))
	return nil
}

// boundWire decodes the curve's sync key and reads the bound row.
func (s *Syncer) boundWire(c *document.WireCurve) (schematic.LogicalWire, wiretable.Store, int, error) {
	tableName, row, _, err := synckey.Decode(c.SyncLabel())
	if err != nil {
		return schematic.LogicalWire{}, nil, 0, err
	}
	table, err := s.Tables.Lookup(tableName)
	if err != nil {
		return schematic.LogicalWire{}, nil, 0, err
	}
	return wiretable.ReadWire(table, row), table, row, nil
}

// resolveAnchor resolves a ref label to a body in the document and the
// pin feature's first vertex, transformed into global coordinates by the
// body's current placement.
func (s *Syncer) resolveAnchor(ref, pin string) (geometry.Point3D, error) {
	obj, ok := document.Find(s.Doc, ref)
	if !ok {
		return geometry.Point3D{}, fmt.Errorf("%w: no object labeled %q", ErrEndpointNotFound, ref)
	}
	group, ok := obj.(document.Grouping)
	if !ok {
		return geometry.Point3D{}, fmt.Errorf("%w: %q has no sub-objects", ErrEndpointNotFound, ref)
	}
	sub, ok := document.Find(group, pin)
	if !ok {
		return geometry.Point3D{}, fmt.Errorf("%w: no feature %q under %q", ErrEndpointNotFound, pin, ref)
	}
	provider, ok := sub.(document.PointProvider)
	if !ok || len(provider.Points()) == 0 {
		return geometry.Point3D{}, fmt.Errorf("%w: feature %q under %q has no points", ErrEndpointNotFound, pin, ref)
	}

	local := provider.Points()[0]
	if placed, ok := obj.(document.Placed); ok {
		return placed.Placement().ToGlobal(local), nil
	}
	return local, nil
}

// curveLabel builds the display label for a wire's curve.
func curveLabel(wireID string) string {
	if wireID == "" {
		return "Wire"
	}
	return "Wire " + wireID
}
