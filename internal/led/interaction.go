package led

import "time"

// Interaction is the last pointer or touch location. It stays active for
// interactionHold after the most recent input.
type Interaction struct {
	X, Y   float64
	Active bool
	Last   time.Time
}

// Touch records new input at (x, y).
func (p *Interaction) Touch(x, y float64, now time.Time) {
	p.X, p.Y = x, y
	p.Active = true
	p.Last = now
}

// Refresh deactivates the point once the hold window has elapsed and reports
// whether it is still active.
func (p *Interaction) Refresh(now time.Time) bool {
	if p.Active && now.Sub(p.Last) >= interactionHold {
		p.Active = false
	}
	return p.Active
}
