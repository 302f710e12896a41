package led

import "time"

// Lattice, effect, and paint constants. The effect values are tuned by eye and
// kept literal so every host renders the same picture.
const (
	CellSize = 5
	CellGap  = 1
	Pitch    = CellSize + CellGap

	seedIntensity = 0.1

	wavePeriodMS  = 2000.0
	waveMaxRadius = 300.0
	waveWidth     = 50.0
	waveGain      = 0.8

	fluidGain = 0.6

	fireBase      = 0.3
	fireNoiseGain = 0.4
	fireJitterMin = 0.7
	fireJitter    = 0.3
	fireThreshold = 0.1
	fireGain      = 0.7
	fireHueScale  = 120.0
	fireHueJitter = 20.0
	fireHueMax    = 60.0

	phaseMS          = 5000.0
	phaseCount       = 3
	rippleSpawnOdds  = 0.02
	interactionHold  = 2000 * time.Millisecond
	smoothingWindow  = 100 * time.Millisecond
	smoothingRate    = 0.1
	targetDecay      = 0.95
	visibleThreshold = 0.01
	glowThreshold    = 0.5
	glowBlurScale    = 10.0
)
