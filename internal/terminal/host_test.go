package terminal

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"ledbackground/internal/config"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func testHost(t *testing.T, cols, rows int, caption bool) (*host, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	cfg := config.Default()
	cfg.Caption.Enabled = caption
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	h := newHost(screen, cfg, rand.New(rand.NewSource(1)), clock.now)
	h.resize(screen.Size())
	return h, screen, clock
}

func TestResizeMapsTwoLEDsPerCell(t *testing.T) {
	h, _, _ := testHost(t, 20, 10, false)
	g := h.anim.Grid()
	if g == nil || g.Cols != 20 || g.Rows != 20 {
		t.Fatalf("expected a 20x20 LED grid, got %+v", g)
	}

	h.handle(tcell.NewEventResize(10, 4))
	if g := h.anim.Grid(); g.Cols != 10 || g.Rows != 8 {
		t.Errorf("expected a 10x8 grid after resize, got %dx%d", g.Cols, g.Rows)
	}
}

func TestFramePaintsHalfBlocks(t *testing.T) {
	h, screen, _ := testHost(t, 8, 4, false)
	h.frame()

	col, row := 3, 2
	mainc, _, style, _ := screen.GetContent(col, row)
	if mainc != upperHalf {
		t.Fatalf("cell (%d,%d) holds %q, want %q", col, row, mainc, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	checkColor(t, "upper", fg, h.surface, 3*6+3, 4*6+3)
	checkColor(t, "lower", bg, h.surface, 3*6+3, 5*6+3)
}

func checkColor(t *testing.T, name string, got tcell.Color, s *surface, x, y int) {
	t.Helper()
	r, g, b, _ := s.At(x, y)
	gr, gg, gb := got.RGB()
	if gr != int32(r) || gg != int32(g) || gb != int32(b) {
		t.Errorf("%s LED colour (%d,%d,%d), framebuffer has (%d,%d,%d)", name, gr, gg, gb, r, g, b)
	}
}

func TestMouseActivatesInteraction(t *testing.T) {
	h, _, _ := testHost(t, 20, 10, false)
	h.handle(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))

	in := h.anim.Interaction()
	if !in.Active {
		t.Fatal("mouse motion should activate the interaction")
	}
	if in.X != 27 || in.Y != 42 {
		t.Errorf("pointer mapped to (%v, %v), want (27, 42)", in.X, in.Y)
	}
}

func TestQuitKeys(t *testing.T) {
	h, _, _ := testHost(t, 10, 5, false)
	tests := []struct {
		name string
		ev   *tcell.EventKey
		keep bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.handle(tt.ev); got != tt.keep {
				t.Errorf("handle(%s) = %v, want %v", tt.name, got, tt.keep)
			}
		})
	}
}

func TestCaptionDrawnOverGrid(t *testing.T) {
	h, screen, _ := testHost(t, 80, 24, true)
	h.frame()

	var found bool
	for y := 0; y < 24 && !found; y++ {
		found = strings.Contains(rowText(screen, y, 80), h.cfg.Caption.Title)
	}
	if !found {
		t.Errorf("caption title %q not on screen", h.cfg.Caption.Title)
	}
}

func TestStatusLineInDebugMode(t *testing.T) {
	h, screen, _ := testHost(t, 80, 10, false)
	h.cfg.Debug = true
	h.cfg.StatsInterval = 0
	h.frame()

	if line := rowText(screen, 0, 80); !strings.Contains(line, "80x20") || !strings.Contains(line, "fluid") {
		t.Errorf("unexpected status line %q", line)
	}
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := config.Default()
	if err := Run(ctx, tcell.NewSimulationScreen(""), cfg, rand.New(rand.NewSource(1))); err != nil {
		t.Errorf("Run: %v", err)
	}
}
