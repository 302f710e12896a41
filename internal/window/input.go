package window

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type point struct{ x, y int }

// pointerTracker turns polled cursor and touch positions into move events.
// Ebiten reports positions every tick, so an event is only raised on change.
type pointerTracker struct {
	cursor     point
	cursorSeen bool
	touches    map[ebiten.TouchID]point
}

func newPointerTracker() *pointerTracker {
	return &pointerTracker{touches: make(map[ebiten.TouchID]point)}
}

// cursorMoved records the cursor position and reports whether it moved. The
// first sample only primes the tracker.
func (t *pointerTracker) cursorMoved(x, y int) bool {
	p := point{x, y}
	if !t.cursorSeen {
		t.cursor, t.cursorSeen = p, true
		return false
	}
	if p == t.cursor {
		return false
	}
	t.cursor = p
	return true
}

// touchStarted records a new touch; it always counts as input.
func (t *pointerTracker) touchStarted(id ebiten.TouchID, x, y int) {
	t.touches[id] = point{x, y}
}

// touchMoved reports whether a held touch changed position.
func (t *pointerTracker) touchMoved(id ebiten.TouchID, x, y int) bool {
	prev, ok := t.touches[id]
	p := point{x, y}
	t.touches[id] = p
	return !ok || prev != p
}

func (t *pointerTracker) touchEnded(id ebiten.TouchID) {
	delete(t.touches, id)
}

// pollInput forwards pointer move, touch start, and touch move to the animator.
func (g *Game) pollInput(now time.Time) {
	if g.auto != nil {
		if x, y, ok := g.auto.next(now); ok {
			g.anim.Pointer(x, y, now)
		}
		return
	}

	if x, y := ebiten.CursorPosition(); g.pointers.cursorMoved(x, y) {
		g.anim.Pointer(float64(x), float64(y), now)
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.pointers.touchStarted(id, x, y)
		g.anim.Pointer(float64(x), float64(y), now)
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if g.pointers.touchMoved(id, x, y) {
			g.anim.Pointer(float64(x), float64(y), now)
		}
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		g.pointers.touchEnded(id)
	}
}

const (
	autoPointerSpeed     = 6.0
	autoPointerMinFrames = 20
	autoPointerMaxFrames = 70
)

// autoPointer drives a scripted pointer that wanders in random headings,
// bouncing off the viewport edges, until its deadline passes.
type autoPointer struct {
	deadline   time.Time
	rng        *rand.Rand
	x, y       float64
	dirX, dirY float64
	frames     int
	width      float64
	height     float64
}

func newAutoPointer(duration time.Duration, now time.Time, rng *rand.Rand) *autoPointer {
	return &autoPointer{
		deadline: now.Add(duration),
		rng:      rng,
	}
}

// bounds sets the area the pointer wanders in and recentres it if it fell
// outside.
func (p *autoPointer) bounds(width, height int) {
	p.width, p.height = float64(width), float64(height)
	if p.x <= 0 || p.x >= p.width || p.y <= 0 || p.y >= p.height {
		p.x, p.y = p.width/2, p.height/2
	}
}

func (p *autoPointer) done(now time.Time) bool {
	return !now.Before(p.deadline)
}

// next advances the pointer by one frame.
func (p *autoPointer) next(now time.Time) (float64, float64, bool) {
	if p.done(now) || p.width <= 0 || p.height <= 0 {
		return 0, 0, false
	}
	if p.frames <= 0 {
		p.randomizeHeading()
	}
	p.frames--
	p.x += p.dirX * autoPointerSpeed
	p.y += p.dirY * autoPointerSpeed
	if p.x < 0 || p.x > p.width {
		p.dirX = -p.dirX
		p.x = math.Max(0, math.Min(p.width, p.x))
	}
	if p.y < 0 || p.y > p.height {
		p.dirY = -p.dirY
		p.y = math.Max(0, math.Min(p.height, p.y))
	}
	return p.x, p.y, true
}

func (p *autoPointer) randomizeHeading() {
	angle := p.rng.Float64() * 2 * math.Pi
	p.dirX = math.Cos(angle)
	p.dirY = math.Sin(angle)
	p.frames = autoPointerMinFrames + p.rng.Intn(autoPointerMaxFrames-autoPointerMinFrames)
}
