// Package window hosts the LED animator in a desktop window.
package window

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ledbackground/internal/config"
	"ledbackground/internal/led"
)

// Options tune a single Run.
type Options struct {
	// Rand seeds the animator; nil seeds from the clock.
	Rand *rand.Rand
	// AutoPointer, when positive, replaces real input with a scripted pointer
	// for that long and then closes the window.
	AutoPointer time.Duration
}

// Game implements ebiten.Game around a led.Animator.
type Game struct {
	ctx  context.Context
	cfg  *config.Config
	now  func() time.Time
	anim *led.Animator
	fb   *led.Framebuffer

	width, height      int
	pendingW, pendingH int

	pointers *pointerTracker
	touchIDs []ebiten.TouchID
	auto     *autoPointer
	caption  *caption

	lastStatsLog time.Time
}

// newGame constructs a Game; nothing is drawn until the first Layout.
func newGame(ctx context.Context, cfg *config.Config, opts Options, now func() time.Time) *Game {
	start := now()
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.SeedOr(start.UnixNano())))
	}
	fb := led.NewFramebuffer(0, 0)
	g := &Game{
		ctx:      ctx,
		cfg:      cfg,
		now:      now,
		anim:     led.NewAnimator(fb, rng, start),
		fb:       fb,
		pointers: newPointerTracker(),
	}
	if opts.AutoPointer > 0 {
		g.auto = newAutoPointer(opts.AutoPointer, start, rand.New(rand.NewSource(start.UnixNano()+3)))
	}
	if cfg.Caption.Enabled {
		c, err := newCaption(cfg.Caption)
		if err != nil {
			log.Printf("Caption disabled: %v", err)
		} else {
			g.caption = c
		}
	}
	return g
}

// Run opens the window and blocks until it is closed, ctx is cancelled, or
// the scripted pointer finishes.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetTPS(ticksPerSecond(cfg.Window))

	g := newGame(ctx, cfg, opts, time.Now)
	log.Printf("Window host started (%dx%d, %s)", cfg.Window.Width, cfg.Window.Height, tickRate(cfg.Window))
	return ebiten.RunGame(g)
}

// ticksPerSecond maps the configured rate to ebiten's. Zero runs one Update
// per rendered frame, so the per-frame decay follows the display refresh.
func ticksPerSecond(w config.WindowConfig) int {
	if w.TPS == config.SyncTPS {
		return ebiten.SyncWithFPS
	}
	return w.TPS
}

func tickRate(w config.WindowConfig) string {
	if w.TPS == config.SyncTPS {
		return "TPS synced to display"
	}
	return fmt.Sprintf("%d TPS", w.TPS)
}

// Update applies pending resizes, feeds input, and advances one frame.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	now := g.now()
	if g.auto != nil && g.auto.done(now) {
		log.Printf("Scripted pointer finished")
		return ebiten.Termination
	}
	if g.pendingW != g.width || g.pendingH != g.height {
		g.resize(now)
	}
	g.pollInput(now)
	g.anim.Frame(now)
	g.logStats(now)
	return nil
}

// Layout tracks the window size; the logical screen always matches it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) resize(now time.Time) {
	g.width, g.height = g.pendingW, g.pendingH
	g.anim.Resize(g.width, g.height, now)
	if g.auto != nil {
		g.auto.bounds(g.width, g.height)
	}
	if grid := g.anim.Grid(); grid != nil {
		log.Printf("Viewport %dx%d: %dx%d cells", g.width, g.height, grid.Cols, grid.Rows)
	}
}

// logStats prints a throttled summary of the grid in debug mode.
func (g *Game) logStats(now time.Time) {
	if !g.cfg.Debug || g.cfg.StatsInterval <= 0 {
		return
	}
	if now.Sub(g.lastStatsLog) < g.cfg.StatsInterval {
		return
	}
	s := g.anim.Stats()
	log.Printf("Frame %d: %s, %d/%d cells lit (%d glowing), mean %.3f max %.3f",
		s.Frames, s.Effect, s.Lit, s.Cols*s.Rows, s.Glowing, s.Mean, s.Max)
	g.lastStatsLog = now
}
