package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"quark/hal"
)

// guard turns a panic inside step into an error. The panic and its stack go
// to the logger and onto the screen before the error is returned.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"quark panic:", fmt.Sprintf("%v", v)}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	font := &tinyfont.TomThumb
	_, adv := tinyfont.LineWidth(font, "0")
	colW := int16(adv)
	lineH := int16(font.GetYAdvance()) + 1
	if colW <= 0 || lineH <= 1 {
		_ = fb.Present()
		return
	}

	d := &fbDisplayer{fb: fb}
	fg := color.RGBA{A: 0xFF}
	cols := int(int16(fb.Width()) / colW)
	maxY := int16(fb.Height())

	y := lineH
	for _, line := range lines {
		for line != "" {
			if y > maxY {
				_ = fb.Present()
				return
			}
			var chunk string
			chunk, line = splitRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += lineH
			line = strings.TrimLeft(line, " ")
		}
	}
	_ = fb.Present()
}

// splitRunes cuts s after at most n runes.
func splitRunes(s string, n int) (prefix, rest string) {
	if n <= 0 {
		n = 1
	}
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
