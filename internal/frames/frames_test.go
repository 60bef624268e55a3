package frames

import (
	"testing"
	"unicode/utf8"
)

func TestCatalogDimensions(t *testing.T) {
	if Len() == 0 {
		t.Fatal("catalog must not be empty")
	}

	for i := 0; i < Len(); i++ {
		for y, row := range Get(i) {
			if len(row) != Width {
				t.Errorf("frame %d row %d has width %d, expected %d: %q", i, y, len(row), Width, row)
			}
			for _, r := range row {
				if r >= utf8.RuneSelf {
					t.Errorf("frame %d row %d has non-ASCII glyph %q", i, y, r)
				}
			}
		}
	}
}

func TestGetWrapsIndex(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{3, 3},
		{Len(), 0},
		{Len() + 2, 2},
		{-1, Len() - 1},
	}

	for _, tc := range tests {
		if Get(tc.in) != Get(tc.want) {
			t.Errorf("Get(%d) should equal Get(%d)", tc.in, tc.want)
		}
	}
}

func TestFrameAt(t *testing.T) {
	f := Get(0)

	if f.At(3, 0) != 'O' {
		t.Errorf("head should be at (3, 0), got %q", f.At(3, 0))
	}
	if f.At(1, 3) != '/' || f.At(5, 3) != '\\' {
		t.Errorf("first frame feet not where expected: %q %q", f.At(1, 3), f.At(5, 3))
	}
	if f.At(-1, 0) != ' ' || f.At(Width, 0) != ' ' || f.At(0, Height) != ' ' {
		t.Error("out-of-frame lookups should return space")
	}
}

func TestFrameAtDoesNotAllocate(t *testing.T) {
	f := Get(1)
	allocs := testing.AllocsPerRun(100, func() {
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				_ = f.At(x, y)
			}
		}
	})
	if allocs != 0 {
		t.Errorf("At allocated %.0f times per frame, expected 0", allocs)
	}
}

func TestFrameString(t *testing.T) {
	want := "   O  \n  /|\\ \n   |  \n   |  "
	if got := Get(2).String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
