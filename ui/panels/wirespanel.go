// Package panels provides the side panel widgets of the main window.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"qet-wiremanager/internal/app"
	"qet-wiremanager/internal/wiretable"
)

// WiresPanel shows the active wire table as a grid. Selecting a row
// selects the corresponding wire in the application state.
type WiresPanel struct {
	state *app.State
	table *widget.Table
	info  *widget.Label

	columns []string
	titles  []string
}

// NewWiresPanel creates the wires panel bound to the application state.
func NewWiresPanel(state *app.State) *WiresPanel {
	p := &WiresPanel{
		state:   state,
		columns: wiretable.Columns(),
		titles:  wiretable.HeaderTitles(),
		info:    widget.NewLabel("No wire selected"),
	}

	p.table = widget.NewTable(
		p.dimensions,
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		p.updateCell,
	)
	p.table.OnSelected = p.onSelected

	state.On(app.EventWiresImported, func(interface{}) { p.Reload() })
	state.On(app.EventProjectLoaded, func(interface{}) { p.Reload() })
	state.On(app.EventLengthMeasured, func(interface{}) { p.Reload() })
	state.On(app.EventCurveBuilt, func(interface{}) { p.Reload() })

	return p
}

// Container returns the panel's root widget.
func (p *WiresPanel) Container() fyne.CanvasObject {
	return container.NewBorder(nil, p.info, nil, nil, p.table)
}

// Reload refreshes the grid from the active table.
func (p *WiresPanel) Reload() {
	p.table.Refresh()
}

// dimensions reports one header row plus the wire rows of the active table.
func (p *WiresPanel) dimensions() (int, int) {
	store, err := p.state.ActiveStore()
	if err != nil {
		return 1, len(p.columns)
	}
	return 1 + wiretable.WireRowCount(store), len(p.columns)
}

func (p *WiresPanel) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)
	if id.Row == 0 {
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.SetText(p.titles[id.Col])
		return
	}
	label.TextStyle = fyne.TextStyle{}

	store, err := p.state.ActiveStore()
	if err != nil {
		label.SetText("")
		return
	}
	row := wiretable.FirstWireRow + id.Row - 1
	label.SetText(store.Get(wiretable.Cell(p.columns[id.Col], row)))
}

// onSelected maps a grid selection to a wire row selection.
func (p *WiresPanel) onSelected(id widget.TableCellID) {
	if id.Row == 0 {
		return
	}
	row := wiretable.FirstWireRow + id.Row - 1
	p.state.SelectRow(row)

	store, err := p.state.ActiveStore()
	if err != nil {
		return
	}
	w := wiretable.ReadWire(store, row)
	p.info.SetText(fmt.Sprintf("Wire %s: %s:%s -> %s:%s", w.WireID, w.FromRef, w.FromPin, w.ToRef, w.ToPin))
}
