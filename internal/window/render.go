package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw uploads the composited framebuffer and paints the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if pix := g.fb.Pix; len(pix) > 0 && len(pix) == b.Dx()*b.Dy()*4 {
		screen.WritePixels(pix)
	}
	if g.caption != nil {
		g.caption.draw(screen)
	}
	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, g.debugText(ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) debugText(fps, tps float64) string {
	s := g.anim.Stats()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nGrid: %dx%d\nEffect: %s\nLit: %d (glow %d)\nPointer: %v",
		fps, tps, s.Cols, s.Rows, s.Effect, s.Lit, s.Glowing, s.Pointer)
}
