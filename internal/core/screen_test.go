package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("New screen should hold blank cells, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render as empty string, got %q", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	s.SetCell(10, 10, Cell{Rune: 'B'})

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenSetKeepsColors(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetCell(1, 0, Cell{Rune: '█', Fg: ColorGray, Bg: ColorNavy})

	s.SetWithColor(1, 0, 'O', ColorBrightGreen)
	got := s.GetCell(1, 0)
	want := Cell{Rune: 'O', Fg: ColorBrightGreen, Bg: ColorNavy}
	if got != want {
		t.Errorf("SetWithColor should keep background: got %+v, want %+v", got, want)
	}

	s.Set(1, 0, 'x')
	if got := s.GetCell(1, 0); got.Fg != ColorBrightGreen || got.Bg != ColorNavy {
		t.Errorf("Set should keep colors, got %+v", got)
	}
}

func TestScreenClearAndFillCell(t *testing.T) {
	s := NewScreen(5, 5)
	fill := Cell{Rune: '#', Fg: ColorRed, Bg: ColorBlue}
	s.FillCell(fill)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.GetCell(x, y) != fill {
				t.Fatalf("After FillCell, expected %+v at (%d, %d), got %+v", fill, x, y, s.GetCell(x, y))
			}
		}
	}

	s.Clear()
	if s.GetCell(2, 2) != (Cell{Rune: ' '}) {
		t.Errorf("After Clear, expected blank cell, got %+v", s.GetCell(2, 2))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorYellow)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Fg != ColorYellow {
			t.Errorf("DrawText: expected %q/yellow at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "─a─", ColorDefault)

	// Columns advance per rune, not per byte.
	if s.Row(0) != "─a─       " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorGray)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}

	// Text wider than the screen starts at column 0.
	narrow := NewScreen(3, 1)
	narrow.DrawTextCentered(0, "Hello", ColorGray)
	if narrow.Row(0) != "Hel" {
		t.Errorf("Row(0) = %q, expected %q", narrow.Row(0), "Hel")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	fill := Cell{Rune: '#', Bg: ColorBrown}
	s.DrawRect(NewRect(2, 2, 3, 3), fill)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y) != fill {
				t.Errorf("DrawRect: expected fill at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawRectClipsAtEdges(t *testing.T) {
	s := NewScreen(6, 4)
	fill := Cell{Rune: '█', Fg: ColorBrown, Bg: ColorBrown}

	// Bottom two rows, overhanging on both sides and below.
	s.DrawRect(NewRect(-3, 2, 12, 5), fill)

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := Cell{Rune: ' '}
			if y >= 2 {
				want = fill
			}
			if got := s.GetCell(x, y); got != want {
				t.Errorf("cell (%d, %d) = %+v, expected %+v", x, y, got, want)
			}
		}
	}

	// Nothing to do for a rect outside the screen.
	s.DrawRect(NewRect(10, 10, 3, 3), Cell{Rune: '#'})
	if strings.Contains(s.String(), "#") {
		t.Error("DrawRect outside the screen should not write anything")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorRed)
	s.DrawText(0, 5, "World", ColorRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Fg != ColorRed {
		t.Error("Colors should be preserved on resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenEqual(t *testing.T) {
	a := NewScreen(4, 2)
	b := NewScreen(4, 2)
	if !a.Equal(b) {
		t.Error("fresh screens of the same size should be equal")
	}

	b.SetCell(3, 1, Cell{Rune: ' ', Bg: ColorNavy})
	if a.Equal(b) {
		t.Error("screens differing only in background should not be equal")
	}

	if a.Equal(NewScreen(4, 3)) {
		t.Error("screens of different size should not be equal")
	}
}
