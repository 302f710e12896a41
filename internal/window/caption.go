package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"ledbackground/internal/config"
)

const (
	captionTitleSize = 32
	captionHintSize  = 18
	captionPadding   = 32
	captionGap       = 16
)

var (
	captionFill   = color.NRGBA{A: 51}
	captionBorder = color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	captionTitle  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	captionHint   = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
)

// caption is the translucent title panel centred over the animation.
type caption struct {
	title, hint         string
	titleFace, hintFace *text.GoTextFace
}

func newCaption(cfg config.CaptionConfig) (*caption, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading caption font: %w", err)
	}
	return &caption{
		title:     cfg.Title,
		hint:      cfg.Hint,
		titleFace: &text.GoTextFace{Source: src, Size: captionTitleSize},
		hintFace:  &text.GoTextFace{Source: src, Size: captionHintSize},
	}, nil
}

type rect struct{ x, y, w, h float64 }

// panelRect centres a padded box of the given content size on the screen.
func panelRect(screenW, screenH int, contentW, contentH float64) rect {
	w := contentW + 2*captionPadding
	h := contentH + 2*captionPadding
	return rect{
		x: (float64(screenW) - w) / 2,
		y: (float64(screenH) - h) / 2,
		w: w,
		h: h,
	}
}

func (c *caption) draw(screen *ebiten.Image) {
	if c.title == "" && c.hint == "" {
		return
	}
	tw, th := text.Measure(c.title, c.titleFace, 0)
	hw, hh := text.Measure(c.hint, c.hintFace, 0)
	contentH := th + hh
	if c.title != "" && c.hint != "" {
		contentH += captionGap
	}
	b := screen.Bounds()
	r := panelRect(b.Dx(), b.Dy(), max(tw, hw), contentH)

	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), captionFill, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, captionBorder, false)

	y := r.y + captionPadding
	if c.title != "" {
		drawCentered(screen, c.title, c.titleFace, r.x+r.w/2, y, captionTitle)
		y += th + captionGap
	}
	if c.hint != "" {
		drawCentered(screen, c.hint, c.hintFace, r.x+r.w/2, y, captionHint)
	}
}

func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
