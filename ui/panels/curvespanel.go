package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"qet-wiremanager/internal/app"
	"qet-wiremanager/internal/document"
)

// CurvesPanel lists the wire curves in the routing document. Selecting a
// curve selects it in the application state.
type CurvesPanel struct {
	state *app.State
	list  *widget.List
	info  *widget.Label

	curves []*document.WireCurve
}

// NewCurvesPanel creates the curves panel bound to the application state.
func NewCurvesPanel(state *app.State) *CurvesPanel {
	p := &CurvesPanel{
		state: state,
		info:  widget.NewLabel("No curve selected"),
	}

	p.list = widget.NewList(
		func() int { return len(p.curves) },
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(p.curves[i].Label())
		},
	)
	p.list.OnSelected = p.onSelected

	state.On(app.EventCurveBuilt, func(interface{}) { p.Reload() })
	state.On(app.EventCurveRefreshed, func(interface{}) { p.Reload() })
	state.On(app.EventProjectLoaded, func(interface{}) { p.Reload() })

	p.Reload()
	return p
}

// Container returns the panel's root widget.
func (p *CurvesPanel) Container() fyne.CanvasObject {
	return container.NewBorder(nil, p.info, nil, nil, p.list)
}

// Reload refreshes the list from the document.
func (p *CurvesPanel) Reload() {
	p.curves = p.state.Doc.Curves()
	p.list.Refresh()
}

func (p *CurvesPanel) onSelected(i widget.ListItemID) {
	if i < 0 || i >= len(p.curves) {
		return
	}
	c := p.curves[i]
	p.state.SelectCurve(c)
	p.info.SetText(fmt.Sprintf("%s: %d points, length %.2f", c.Label(), c.PointCount(), c.Length()))
}
