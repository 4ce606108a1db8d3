package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"sandspill/internal/core"
)

// Target is what the parameter panel reads from and adjusts.
type Target interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// Panel holds the frontend-independent state of the HUD: control layout,
// cached values and the read-only status lines.
type Panel struct {
	target   Target
	title    string
	width    int
	snapshot core.ParameterSnapshot
	controls []controlState
	status   []StatusLine
}

// StatusLine is one read-only entry rendered below the controls.
type StatusLine struct {
	Header bool
	Label  string
	Value  string
	Top    int
}

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	statusHeight   = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

// NewPanel lays out the controls target exposes inside a panel of width pixels.
func NewPanel(target Target, name string, width int) *Panel {
	if width < 0 {
		width = 0
	}
	p := &Panel{target: target, title: buildTitle(name), width: width}
	controls := target.ParameterControls()
	p.controls = make([]controlState, len(controls))
	for i, ctrl := range controls {
		p.controls[i] = controlState{control: ctrl}
	}
	p.layoutControls()
	return p
}

func buildTitle(name string) string {
	if name == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

// Title returns the panel heading.
func (p *Panel) Title() string { return p.title }

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.width }

// Refresh re-reads the parameter snapshot from the target.
func (p *Panel) Refresh() {
	p.snapshot = p.target.Parameters()
	p.refreshControlValues()
	p.buildStatus()
}

func (p *Panel) refreshControlValues() {
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := p.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			state.hasValue = false
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

func (p *Panel) buildStatus() {
	p.status = p.status[:0]
	top := controlsTop + len(p.controls)*lineHeight + statusHeight/2
	controlled := make(map[string]bool, len(p.controls))
	for _, c := range p.controls {
		controlled[c.control.Key] = true
	}
	for _, g := range p.snapshot.Groups {
		var lines []StatusLine
		for _, param := range g.Params {
			if controlled[param.Key] {
				continue
			}
			lines = append(lines, StatusLine{Label: param.Label, Value: param.Value})
		}
		if len(lines) == 0 {
			continue
		}
		p.status = append(p.status, StatusLine{Header: true, Label: g.Name, Top: top})
		top += statusHeight
		for _, l := range lines {
			l.Top = top
			p.status = append(p.status, l)
			top += statusHeight
		}
	}
}

// Status returns the read-only lines built by the last Refresh.
func (p *Panel) Status() []StatusLine { return p.status }

// Click applies a press at panel-local coordinates. It reports whether a
// control button was hit and accepted.
func (p *Panel) Click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return p.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (p *Panel) adjust(state *controlState, direction int) bool {
	if !p.canAdjust(state, direction) {
		return false
	}
	target := state.control.Clamp(state.value + direction*stepOf(state.control))
	if !p.target.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.value = target
	return true
}

func (p *Panel) canAdjust(state *controlState, direction int) bool {
	if !state.hasValue || direction == 0 {
		return false
	}
	target := state.control.Clamp(state.value + direction*stepOf(state.control))
	return target != state.value
}

func stepOf(c core.ParameterControl) int {
	if c.Step <= 0 {
		return 1
	}
	return c.Step
}

func (p *Panel) layoutControls() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
