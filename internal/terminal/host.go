// Package terminal hosts the LED animator in a terminal, two LEDs per
// character cell.
package terminal

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"ledbackground/internal/config"
	"ledbackground/internal/led"
)

const eventBuffer = 100

var (
	panelStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 20))
	titleStyle = panelStyle.Foreground(tcell.ColorWhite).Bold(true)
	hintStyle  = panelStyle.Foreground(tcell.NewRGBColor(204, 204, 204))
	debugStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
)

type host struct {
	screen  tcell.Screen
	cfg     *config.Config
	now     func() time.Time
	anim    *led.Animator
	surface *surface

	cols, rows   int
	lastStatsLog time.Time
}

func newHost(screen tcell.Screen, cfg *config.Config, rng *rand.Rand, now func() time.Time) *host {
	s := newSurface()
	return &host{
		screen:  screen,
		cfg:     cfg,
		now:     now,
		anim:    led.NewAnimator(s, rng, now()),
		surface: s,
	}
}

// Run initialises screen, animates until ctx is done or the user quits, and
// restores the terminal.
func Run(ctx context.Context, screen tcell.Screen, cfg *config.Config, rng *rand.Rand) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.SeedOr(time.Now().UnixNano())))
	}
	h := newHost(screen, cfg, rng, time.Now)
	h.resize(screen.Size())

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()
	log.Printf("Terminal host started (%dx%d, %d FPS)", h.cols, h.rows, cfg.Terminal.FPS)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

// handle applies one terminal event and reports whether to keep running.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		px, py := toVirtual(x, y)
		h.anim.Pointer(px, py, h.now())
	}
	return true
}

func (h *host) resize(cols, rows int) {
	h.cols, h.rows = cols, rows
	w, ht := virtualSize(cols, rows)
	h.anim.Resize(w, ht, h.now())
	h.screen.Clear()
}

func (h *host) frame() {
	now := h.now()
	if !h.anim.Frame(now) {
		return
	}
	h.surface.present(h.screen)
	if h.cfg.Caption.Enabled {
		h.drawCaption()
	}
	if h.cfg.Debug {
		h.drawStatus()
		h.logStats(now)
	}
	h.screen.Show()
}

// drawCaption paints a centred panel with the title and hint.
func (h *host) drawCaption() {
	title, hint := h.cfg.Caption.Title, h.cfg.Caption.Hint
	width := max(len([]rune(title)), len([]rune(hint))) + 4
	if width > h.cols {
		width = h.cols
	}
	const height = 5
	if width <= 4 || h.rows < height {
		return
	}
	x0 := (h.cols - width) / 2
	y0 := (h.rows - height) / 2
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			h.screen.SetContent(x, y, ' ', nil, panelStyle)
		}
	}
	h.drawCentered(y0+1, x0, width, title, titleStyle)
	h.drawCentered(y0+3, x0, width, hint, hintStyle)
}

func (h *host) drawCentered(y, x0, width int, s string, style tcell.Style) {
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	x := x0 + (width-len(runes))/2
	for i, r := range runes {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (h *host) drawStatus() {
	s := h.anim.Stats()
	line := fmt.Sprintf(" %dx%d | %s | lit %d glow %d | pointer %v ", s.Cols, s.Rows, s.Effect, s.Lit, s.Glowing, s.Pointer)
	for i, r := range []rune(line) {
		if i >= h.cols {
			break
		}
		h.screen.SetContent(i, 0, r, nil, debugStyle)
	}
}

func (h *host) logStats(now time.Time) {
	if h.cfg.StatsInterval <= 0 || now.Sub(h.lastStatsLog) < h.cfg.StatsInterval {
		return
	}
	s := h.anim.Stats()
	log.Printf("Frame %d: %s, %d/%d cells lit (%d glowing), mean %.3f max %.3f",
		s.Frames, s.Effect, s.Lit, s.Cols*s.Rows, s.Glowing, s.Mean, s.Max)
	h.lastStatsLog = now
}
