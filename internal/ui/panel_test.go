package ui

import (
	"image"
	"strconv"
	"testing"

	"sandspill/internal/core"
)

type fakeTarget struct {
	size int
	sets int
}

func (f *fakeTarget) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Brush", Params: []core.Parameter{
			core.IntParam("size", "Size", f.size),
			core.TextParam("mode", "Mode", "paint"),
		}},
		{Name: "Counters", Params: []core.Parameter{
			core.IntParam("count", "Particles", 12),
		}},
	}}
}

func (f *fakeTarget) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Size", Step: 2, Min: 1, Max: 5},
		{Key: "missing", Label: "Missing", Step: 1},
	}
}

func (f *fakeTarget) SetIntParameter(key string, value int) bool {
	if key != "size" {
		return false
	}
	f.size = value
	f.sets++
	return true
}

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func TestPanelClickAdjustsWithinBounds(t *testing.T) {
	target := &fakeTarget{size: 3}
	p := NewPanel(target, "sand", 200)
	p.Refresh()

	px, py := center(p.controls[0].plusRect)
	if !p.Click(px, py) {
		t.Fatal("plus click should be accepted")
	}
	if target.size != 5 {
		t.Fatalf("expected size 5, got %d", target.size)
	}
	p.Refresh()
	if p.Click(px, py) {
		t.Fatal("plus at max should be rejected")
	}
	if target.sets != 1 {
		t.Fatalf("expected one setter call, got %d", target.sets)
	}

	mx, my := center(p.controls[0].minusRect)
	p.Click(mx, my)
	p.Click(mx, my)
	p.Click(mx, my)
	if target.size != 1 {
		t.Fatalf("expected clamp to min 1, got %d", target.size)
	}
}

func TestPanelSkipsControlsWithoutValue(t *testing.T) {
	target := &fakeTarget{size: 3}
	p := NewPanel(target, "", 200)
	p.Refresh()
	if p.controls[1].hasValue {
		t.Fatal("control missing from the snapshot should have no value")
	}
	x, y := center(p.controls[1].plusRect)
	if p.Click(x, y) {
		t.Fatal("click on valueless control should be ignored")
	}
	if p.Title() != "Controls" {
		t.Fatalf("unexpected default title %q", p.Title())
	}
}

func TestPanelStatusExcludesControls(t *testing.T) {
	p := NewPanel(&fakeTarget{size: 3}, "sand", 200)
	p.Refresh()
	if p.Title() != "Sand Controls" {
		t.Fatalf("unexpected title %q", p.Title())
	}
	var labels []string
	lastTop := 0
	for _, line := range p.Status() {
		if line.Top <= lastTop {
			t.Fatalf("status lines must stack downward, %d after %d", line.Top, lastTop)
		}
		lastTop = line.Top
		labels = append(labels, line.Label+"="+line.Value)
	}
	want := []string{"Brush=", "Mode=paint", "Counters=", "Particles=" + strconv.Itoa(12)}
	if len(labels) != len(want) {
		t.Fatalf("expected %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], labels[i])
		}
	}
}

func TestBrushRectClipsToGrid(t *testing.T) {
	size := core.Size{W: 10, H: 8}
	r, ok := BrushRect(size, 10, 55, 45, 3)
	if !ok || r != image.Rect(40, 30, 70, 60) {
		t.Fatalf("unexpected rect %v ok=%v", r, ok)
	}
	r, ok = BrushRect(size, 10, 2, 2, 3)
	if !ok || r != image.Rect(0, 0, 20, 20) {
		t.Fatalf("corner stamp should clip, got %v", r)
	}
	if _, ok := BrushRect(size, 10, 100, 5, 3); ok {
		t.Fatal("pointer right of the grid must be rejected")
	}
}
