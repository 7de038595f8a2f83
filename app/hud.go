package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"quark/hal"
	"quark/quarkgl"
)

var (
	hudTitle = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudDim   = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

// hud writes text lines over the rendered frame.
type hud struct {
	d    *fbDisplayer
	font tinyfont.Fonter
	// line advance in pixels
	lineH int16
}

func newHUD(fb hal.Framebuffer) *hud {
	font := &tinyfont.TomThumb
	lineH := int16(font.GetYAdvance())
	if lineH <= 0 {
		lineH = 6
	}
	return &hud{d: &fbDisplayer{fb: fb}, font: font, lineH: lineH + 1}
}

// lines draws s top-down from the upper-left corner; the first line in c,
// the rest dimmed.
func (h *hud) lines(c color.RGBA, s ...string) {
	y := int16(4)
	for i, line := range s {
		col := hudDim
		if i == 0 {
			col = c
		}
		y += h.lineH
		tinyfont.WriteLine(h.d, h.font, 4, y, line, col)
	}
}

func (h *hud) footer(s string) {
	_, height := h.d.Size()
	tinyfont.WriteLine(h.d, h.font, 4, height-4, s, hudDim)
}

// fbDisplayer adapts an RGB565 framebuffer to drivers.Displayer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	p := quarkgl.RGB565(c.R, c.G, c.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
