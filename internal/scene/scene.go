// Package scene composes one screen of the city walk: skyline, walking
// figure, ground strip and help line, from a frame index and scroll offset.
//
// Rendering is pure. The same State and screen size always produce the same
// cells, and nothing outside the destination screen is touched.
package scene

import (
	"github.com/vovakirdan/citywalk/internal/config"
	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/frames"
	"github.com/vovakirdan/citywalk/internal/skyline"
)

// Ground glyphs.
const (
	GlyphGroundBase    = ' '
	GlyphGroundTexture = '▒'
	GlyphGroundSolid   = '█'
)

// groundTexturePeriod is the column spacing of the texture on the top ground row.
const groundTexturePeriod = 4

// Compositor renders scenes. It is immutable after New and safe to share.
type Compositor struct {
	skyline  *skyline.Skyline
	palette  config.Palette
	helpText string
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithSkyline replaces the default city block.
func WithSkyline(s *skyline.Skyline) Option {
	return func(c *Compositor) {
		if s != nil {
			c.skyline = s
		}
	}
}

// WithPalette sets the scene colors.
func WithPalette(p config.Palette) Option {
	return func(c *Compositor) {
		c.palette = p
	}
}

// WithHelpText sets the text on the bottom row.
func WithHelpText(text string) Option {
	return func(c *Compositor) {
		c.helpText = text
	}
}

// New creates a compositor with the default skyline, palette and help text.
func New(opts ...Option) *Compositor {
	defaults := config.DefaultSceneConfig()
	c := &Compositor{
		skyline:  skyline.Default(),
		palette:  defaults.Palette,
		helpText: defaults.HelpText,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HelpText returns the text drawn on the bottom row.
func (c *Compositor) HelpText() string {
	return c.helpText
}

// Palette returns the scene colors.
func (c *Compositor) Palette() config.Palette {
	return c.palette
}

// RenderScene renders st into a fresh w×h screen.
func (c *Compositor) RenderScene(st State, w, h int) *core.Screen {
	dst := core.NewScreen(w, h)
	c.Render(dst, st)
	return dst
}

// Render composes the scene into dst in place. Screens smaller than
// MinWidth×MinHeight are left untouched.
func (c *Compositor) Render(dst *core.Screen, st State) {
	layout, ok := ComputeLayout(dst.Width(), dst.Height())
	if !ok {
		return
	}

	dst.FillCell(core.Cell{Rune: ' ', Fg: c.palette.Sky, Bg: c.palette.Sky})
	c.drawSkyline(dst, layout.Sky, st.ScrollOffset)
	c.drawFigure(dst, layout.Figure, st.FrameIndex)
	c.drawGround(dst, layout.Ground, st.ScrollOffset)
	dst.DrawTextCentered(layout.Help.Y, c.helpText, c.palette.Help)
}

// drawSkyline overlays the non-sky glyphs of the skyline window.
func (c *Compositor) drawSkyline(dst *core.Screen, area core.Rect, offset uint) {
	grid := c.skyline.Render(area.W, area.H, offset)
	for y, row := range grid {
		for x, r := range row {
			fg, bg, ok := skyline.Tones(r)
			if !ok {
				continue
			}
			dst.SetCell(area.X+x, area.Y+y, core.Cell{Rune: r, Fg: c.tone(fg), Bg: c.tone(bg)})
		}
	}
}

// drawFigure overlays the current pose. Only the foreground changes; the
// sky or building background underneath stays.
func (c *Compositor) drawFigure(dst *core.Screen, area core.Rect, frameIndex int) {
	visible := area.Intersect(dst.Bounds())
	if visible.Empty() {
		return
	}

	f := frames.Get(frameIndex)
	for y := visible.Y; y < visible.Bottom(); y++ {
		for x := visible.X; x < visible.Right(); x++ {
			r := f.At(x-area.X, y-area.Y)
			if r == ' ' {
				continue
			}
			dst.SetWithColor(x, y, r, c.palette.Figure)
		}
	}
}

// drawGround paints the textured top row and the solid bottom row. The
// texture is keyed to the scroll offset so it crawls with the skyline.
func (c *Compositor) drawGround(dst *core.Screen, area core.Rect, offset uint) {
	base := core.Cell{Rune: GlyphGroundBase, Fg: c.palette.GroundTexture, Bg: c.palette.Ground}
	texture := core.Cell{Rune: GlyphGroundTexture, Fg: c.palette.GroundTexture, Bg: c.palette.Ground}
	solid := core.Cell{Rune: GlyphGroundSolid, Fg: c.palette.Ground, Bg: c.palette.Ground}

	for x := 0; x < area.W; x++ {
		cell := base
		// 2^N is a multiple of the period, so wrapping keeps the pattern continuous.
		if (uint(x)+offset)%groundTexturePeriod == 0 {
			cell = texture
		}
		dst.SetCell(area.X+x, area.Y, cell)
	}
	dst.DrawRect(core.NewRect(area.X, area.Y+1, area.W, area.H-1), solid)
}

func (c *Compositor) tone(t skyline.Tone) core.Color {
	switch t {
	case skyline.ToneBuilding:
		return c.palette.Building
	case skyline.ToneAccent:
		return c.palette.Accent
	default:
		return c.palette.Sky
	}
}
