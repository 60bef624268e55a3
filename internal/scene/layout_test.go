package scene

import (
	"testing"

	"github.com/vovakirdan/citywalk/internal/core"
)

func TestResizeBlanksBelowMinimum(t *testing.T) {
	c := New()
	dst := c.RenderScene(State{FrameIndex: 1, ScrollOffset: 7}, 40, 12)

	// Still large enough: the top-left corner survives.
	corner := dst.GetCell(0, 0)
	Resize(dst, MinWidth, MinHeight)
	if dst.GetCell(0, 0) != corner {
		t.Errorf("corner = %+v after shrinking to the minimum, expected %+v", dst.GetCell(0, 0), corner)
	}

	Resize(dst, MinWidth-1, MinHeight)
	if !dst.Equal(core.NewScreen(MinWidth-1, MinHeight)) {
		t.Errorf("screen should be blank below the minimum size, got:\n%s", dst.String())
	}
}
