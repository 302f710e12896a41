package led

import (
	"math"
	"math/rand"
)

// Effect names the ambient pass selected by the 15 s cycle.
type Effect int

const (
	EffectFluid Effect = iota
	EffectFire
	EffectRipples
)

// String returns the lowercase effect name used in logs and overlays.
func (e Effect) String() string {
	switch e {
	case EffectFluid:
		return "fluid"
	case EffectFire:
		return "fire"
	case EffectRipples:
		return "ripples"
	default:
		return "unknown"
	}
}

// PhaseAt selects the ambient effect for t milliseconds into the cycle.
func PhaseAt(t float64) Effect {
	phase := math.Floor(math.Mod(t/phaseMS, phaseCount))
	if phase < 0 {
		phase += phaseCount
	}
	return Effect(int(phase))
}

// WaveRadius is the ring radius at time t; it grows linearly and wraps every
// wavePeriodMS.
func WaveRadius(t float64) float64 {
	return math.Mod(t, wavePeriodMS) / wavePeriodMS * waveMaxRadius
}

// WaveRing returns the ring weight for a cell at distance d, in [0, 1]. It is
// zero outside the ring and exactly one on the radius.
func WaveRing(d, t float64) float64 {
	off := math.Abs(d - WaveRadius(t))
	if off >= waveWidth {
		return 0
	}
	return 1 - off/waveWidth
}

// Wave raises the cells on the expanding ring around (cx, cy).
func Wave(g *Grid, cx, cy, t float64) {
	if g == nil {
		return
	}
	for i := range g.Cells {
		c := &g.Cells[i]
		d := math.Hypot(c.X-cx, c.Y-cy)
		ring := WaveRing(d, t)
		if ring <= 0 {
			continue
		}
		c.raise(ring * waveGain)
		c.Hue = math.Mod(t/10+d/5, 360)
	}
}

// Fluid overlays three drifting sine fields across the lattice.
func Fluid(g *Grid, t float64) {
	if g == nil || g.Cols == 0 {
		return
	}
	for i := range g.Cells {
		col, row := g.position(i)
		fc, fr := float64(col), float64(row)
		w1 := math.Sin(fc*0.1+t*0.003)*0.5 + 0.5
		w2 := math.Cos(fr*0.1+t*0.002)*0.5 + 0.5
		w3 := math.Sin((fc+fr)*0.05+t*0.004)*0.5 + 0.5

		c := &g.Cells[i]
		c.raise(w1 * w2 * w3 * fluidGain)
		c.Hue = math.Mod(t/20+fc*2+fr*3, 360)
	}
}

// FireHeight weights rows so row 0 burns hottest and the last row coolest.
func FireHeight(row, rows int) float64 {
	if rows <= 0 {
		return 0
	}
	return float64(rows-row) / float64(rows)
}

// Fire lights cells with a flickering, height-weighted flame in the
// red-to-yellow band.
func Fire(g *Grid, t float64, rng *rand.Rand) {
	if g == nil || g.Cols == 0 {
		return
	}
	for i := range g.Cells {
		col, row := g.position(i)
		noise := math.Sin(float64(col)*0.3+t*0.005) * math.Cos(float64(row)*0.2+t*0.003)
		fire := FireHeight(row, g.Rows) * (fireBase + noise*fireNoiseGain) * (rng.Float64()*fireJitter + fireJitterMin)
		if fire <= fireThreshold {
			continue
		}
		c := &g.Cells[i]
		c.raise(fire * fireGain)
		c.Hue = clamp(fire*fireHueScale+rng.Float64()*fireHueJitter, 0, fireHueMax)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
