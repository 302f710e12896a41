package led

import (
	"math"
	"math/rand"
	"time"
)

// Animator owns the cell grid and the surface it paints into. All methods must
// be called from the host's single loop goroutine.
type Animator struct {
	surface Surface
	grid    *Grid
	pointer Interaction
	rng     *rand.Rand
	start   time.Time
	effect  Effect
	frames  uint64
}

// NewAnimator binds an animator to surface. The effect cycle starts at start.
func NewAnimator(surface Surface, rng *rand.Rand, start time.Time) *Animator {
	if rng == nil {
		rng = rand.New(rand.NewSource(start.UnixNano()))
	}
	return &Animator{
		surface: surface,
		rng:     rng,
		start:   start,
	}
}

// Resize resizes the surface and re-seeds the grid. The previous grid is
// discarded.
func (a *Animator) Resize(width, height int, now time.Time) {
	if a.surface == nil {
		return
	}
	a.surface.Resize(width, height)
	w, h := a.surface.Size()
	a.grid = NewGrid(w, h, a.rng, now)
}

// Pointer records pointer or touch input at surface coordinates (x, y).
func (a *Animator) Pointer(x, y float64, now time.Time) {
	a.pointer.Touch(x, y, now)
}

// Elapsed returns the effect clock in milliseconds.
func (a *Animator) Elapsed(now time.Time) float64 {
	return float64(now.Sub(a.start)) / float64(time.Millisecond)
}

// Frame advances every cell by one frame and paints the result. It reports
// false, changing nothing, when there is no surface to draw on.
func (a *Animator) Frame(now time.Time) bool {
	if a.surface == nil || !a.surface.Begin() {
		return false
	}
	t := a.Elapsed(now)
	a.effect = PhaseAt(t)
	switch a.effect {
	case EffectFluid:
		Fluid(a.grid, t)
	case EffectFire:
		Fire(a.grid, t, a.rng)
	default:
		if a.rng.Float64() < rippleSpawnOdds {
			w, h := a.surface.Size()
			Wave(a.grid, a.rng.Float64()*float64(w), a.rng.Float64()*float64(h), t)
		}
	}
	if a.pointer.Refresh(now) {
		Wave(a.grid, a.pointer.X, a.pointer.Y, t)
	}

	if a.grid != nil {
		for i := range a.grid.Cells {
			c := &a.grid.Cells[i]
			step(c, now)
			a.paint(c)
		}
	}
	a.frames++
	return true
}

// step eases the intensity toward the target and decays the target. The
// easing factor is capped so a long gap between frames cannot snap a cell.
func step(c *Cell, now time.Time) {
	lerp := float64(now.Sub(c.LastUpdate)) / float64(smoothingWindow)
	lerp = clamp(lerp, 0, 1)
	c.Intensity += (c.Target - c.Intensity) * lerp * smoothingRate
	c.Target *= targetDecay
	c.LastUpdate = now
}

func (a *Animator) paint(c *Cell) {
	if c.Intensity <= visibleThreshold {
		return
	}
	x, y := c.X-CellSize/2.0, c.Y-CellSize/2.0
	fill := cellColor(c.Hue, c.Intensity)
	a.surface.FillRect(x, y, CellSize, CellSize, fill)
	if c.Intensity > glowThreshold {
		glow := glowColor(c.Hue)
		glow.A = fill.A
		a.surface.Glow(x, y, CellSize, CellSize, c.Intensity*glowBlurScale, glow)
		a.surface.FillRect(x, y, CellSize, CellSize, fill)
	}
}

// Grid exposes the current grid; nil before the first Resize.
func (a *Animator) Grid() *Grid { return a.grid }

// Interaction returns a copy of the interaction point.
func (a *Animator) Interaction() Interaction { return a.pointer }

// Stats summarises the grid after the most recent frame.
type Stats struct {
	Cols, Rows int
	Effect     Effect
	Frames     uint64
	Lit        int
	Glowing    int
	Mean, Max  float64
	Pointer    bool
}

// Stats scans the grid; it is meant for overlays and logs, not the hot path.
func (a *Animator) Stats() Stats {
	s := Stats{Effect: a.effect, Frames: a.frames, Pointer: a.pointer.Active}
	if a.grid == nil {
		return s
	}
	s.Cols, s.Rows = a.grid.Cols, a.grid.Rows
	var sum float64
	for i := range a.grid.Cells {
		v := a.grid.Cells[i].Intensity
		sum += v
		s.Max = math.Max(s.Max, v)
		if v > visibleThreshold {
			s.Lit++
		}
		if v > glowThreshold {
			s.Glowing++
		}
	}
	if n := len(a.grid.Cells); n > 0 {
		s.Mean = sum / float64(n)
	}
	return s
}
