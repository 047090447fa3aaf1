package input

// Edge is a button transition observed between two frames.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgePress
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgePress:
		return "press"
	case EdgeRelease:
		return "release"
	}
	return "none"
}

// PointerTracker remembers the launch button state of the previous frame so press and release are
// reported once each.
type PointerTracker struct {
	down bool
}

// Update feeds the current frame's button state and returns the transition, if any.
func (p *PointerTracker) Update(down bool) Edge {
	switch {
	case down && !p.down:
		p.down = true
		return EdgePress
	case !down && p.down:
		p.down = false
		return EdgeRelease
	}
	return EdgeNone
}

// Held reports whether the button was down at the last Update.
func (p *PointerTracker) Held() bool {
	return p.down
}
