package terminal

import (
	"github.com/gdamore/tcell/v2"

	"ledbackground/internal/led"
)

// upperHalf shows the upper LED in the foreground and the lower LED in the
// background, so each character cell carries two LEDs.
const upperHalf = '▀'

// surface composites LEDs in a virtual pixel space of led.Pitch pixels per
// LED and samples each LED centre when presenting to the terminal.
type surface struct {
	*led.Framebuffer
}

func newSurface() *surface {
	return &surface{Framebuffer: led.NewFramebuffer(0, 0)}
}

// virtualSize is the pixel space for a cols x rows terminal.
func virtualSize(cols, rows int) (int, int) {
	return cols * led.Pitch, rows * 2 * led.Pitch
}

// toVirtual maps a character cell to the pixel between its two LEDs.
func toVirtual(col, row int) (float64, float64) {
	return float64(col*led.Pitch) + led.Pitch/2.0, float64(row*2*led.Pitch) + led.Pitch
}

// present writes every character cell to screen.
func (s *surface) present(screen tcell.Screen) {
	w, h := s.Size()
	cols, rows := w/led.Pitch, h/(2*led.Pitch)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := col*led.Pitch + led.Pitch/2
			top := s.sample(x, 2*row*led.Pitch+led.Pitch/2)
			bottom := s.sample(x, (2*row+1)*led.Pitch+led.Pitch/2)
			screen.SetContent(col, row, upperHalf, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func (s *surface) sample(x, y int) tcell.Color {
	r, g, b, _ := s.At(x, y)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
