// Package events turns step reports into log lines and sound cues.
package events

import (
	"slices"

	"alien-scene/internal/input"
	"alien-scene/internal/logger"
	"alien-scene/internal/physics"
)

// Reporter logs spawns, launches, contacts and deactivations. A contact is logged when the set of
// colliding adversaries differs from the previous step, so a body resting in contact is logged once.
type Reporter struct {
	log *logger.Logger
	// OnHit and OnLaunch are optional cue hooks.
	OnHit    func()
	OnLaunch func()

	prev []int
}

// NewReporter returns a reporter writing to log.
func NewReporter(log *logger.Logger) *Reporter {
	return &Reporter{log: log}
}

// Report handles the outcome of one World.Step.
func (rp *Reporter) Report(w *physics.World, r physics.StepReport) {
	p := w.Player()
	switch r.Pointer {
	case input.EdgePress:
		rp.log.Logf("spawn %.1f,%.1f", p.Position.X(), p.Position.Y())
	case input.EdgeRelease:
		rp.log.Logf("launch %.1f,%.1f", p.Velocity.X(), p.Velocity.Y())
		if rp.OnLaunch != nil {
			rp.OnLaunch()
		}
	}

	if len(r.Collisions) > 0 && rp.OnHit != nil {
		rp.OnHit()
	}
	if !slices.Equal(rp.prev, r.Collisions) {
		if len(r.Collisions) > 0 {
			rp.log.Logf("collision with adversaries %v", r.Collisions)
		}
		rp.prev = append(rp.prev[:0], r.Collisions...)
	}
	for _, i := range r.Deactivated {
		rp.log.Logf("adversary %d down, score %d", i, w.Score())
	}
}
