package scene

import (
	"math"
	"testing"

	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/frames"
)

func TestAdvanceFrame(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 8, 1},
		{6, 8, 7},
		{7, 8, 0},
		{0, 1, 0},
		{3, 0, 0},
		{3, -2, 0},
		{-1, 8, 0},
		{-3, 8, 6},
		{-9, 8, 0},
	}

	for _, tt := range tests {
		if got := AdvanceFrame(tt.i, tt.n); got != tt.want {
			t.Errorf("AdvanceFrame(%d, %d) = %d, expected %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestAdvanceFrameCycle(t *testing.T) {
	n := frames.Len()
	i := 0
	for step := 0; step < n; step++ {
		i = AdvanceFrame(i, n)
	}
	if i != 0 {
		t.Errorf("after %d steps index = %d, expected 0", n, i)
	}
}

func TestAdvanceScroll(t *testing.T) {
	if got := AdvanceScroll(41); got != 42 {
		t.Errorf("AdvanceScroll(41) = %d, expected 42", got)
	}
	if got := AdvanceScroll(math.MaxUint); got != 0 {
		t.Errorf("AdvanceScroll(MaxUint) = %d, expected 0", got)
	}
}

func TestStateNext(t *testing.T) {
	st := State{FrameIndex: frames.Len() - 1, ScrollOffset: 10}
	next := st.Next()
	if next.FrameIndex != 0 || next.ScrollOffset != 11 {
		t.Errorf("Next() = %+v, expected {0 11}", next)
	}
	if st.FrameIndex != frames.Len()-1 {
		t.Error("Next should not modify the receiver")
	}
}

func TestDriverStep(t *testing.T) {
	d := NewDriver()
	none := core.NewInputFrame()

	for i := 0; i < 3; i++ {
		d.Step(none)
	}
	if got := d.State(); got.FrameIndex != 3 || got.ScrollOffset != 3 {
		t.Errorf("after 3 steps state = %+v, expected {3 3}", got)
	}
	if d.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", d.Ticks())
	}
}

func TestDriverPause(t *testing.T) {
	d := NewDriver()
	none := core.NewInputFrame()
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	d.Step(none)
	d.Step(pause)
	if !d.Paused() {
		t.Fatal("expected driver to be paused")
	}
	frozen := d.State()

	d.Step(none)
	d.Step(none)
	if d.State() != frozen {
		t.Errorf("state advanced while paused: %+v -> %+v", frozen, d.State())
	}

	// Unpausing advances on the same tick.
	d.Step(pause)
	if d.Paused() {
		t.Fatal("expected driver to resume")
	}
	if got := d.State(); got.ScrollOffset != frozen.ScrollOffset+1 {
		t.Errorf("scroll after resume = %d, expected %d", got.ScrollOffset, frozen.ScrollOffset+1)
	}
	if d.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", d.Ticks())
	}
}

func TestComputeLayout(t *testing.T) {
	layout, ok := ComputeLayout(80, 24)
	if !ok {
		t.Fatal("ComputeLayout(80, 24) should succeed")
	}

	if layout.Sky != core.NewRect(0, 0, 80, 21) {
		t.Errorf("Sky = %+v", layout.Sky)
	}
	if layout.Ground != core.NewRect(0, 21, 80, 2) {
		t.Errorf("Ground = %+v", layout.Ground)
	}
	if layout.Help != core.NewRect(0, 23, 80, 1) {
		t.Errorf("Help = %+v", layout.Help)
	}
	if layout.Figure != core.NewRect(37, 17, frames.Width, frames.Height) {
		t.Errorf("Figure = %+v", layout.Figure)
	}

	for _, sz := range []struct{ w, h int }{{19, 24}, {80, 3}, {0, 0}, {-1, 10}} {
		if _, ok := ComputeLayout(sz.w, sz.h); ok {
			t.Errorf("ComputeLayout(%d, %d) should report too small", sz.w, sz.h)
		}
	}
}
