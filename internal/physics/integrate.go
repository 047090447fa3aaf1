package physics

import "github.com/go-gl/mathgl/mgl32"

// Integrator advances bodies by dt seconds scaled by TimeScale.
type Integrator struct {
	TimeScale float32
}

// Advance integrates a force-driven body: v = u + a*t, then s = (u+v)/2 * t.
// When the frame is idle and resistance pushed velocity.x across zero, velocity is snapped to rest.
// The position update averages the velocity captured before the step with the final (clamped) one.
func (in Integrator) Advance(b *Body, force mgl32.Vec3, idle bool, dt float32) {
	t := dt * in.TimeScale
	acc := force.Mul(b.InvMass)

	old := b.Velocity
	b.Velocity = b.Velocity.Add(acc.Mul(t))

	if idle && crossedZero(old.X(), b.Velocity.X()) {
		b.Velocity = mgl32.Vec3{}
	}

	b.Position = b.Position.Add(old.Add(b.Velocity).Mul(0.5 * t))
}

// Drift moves a body along its velocity with no force involved: s = v*t.
func (in Integrator) Drift(b *Body, dt float32) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt * in.TimeScale))
}

func crossedZero(before, after float32) bool {
	return (after > 0 && before < 0) || (after < 0 && before > 0)
}
