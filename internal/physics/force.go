package physics

import "github.com/go-gl/mathgl/mgl32"

// Unit directional inputs on the motion axis.
var (
	Left  = mgl32.Vec3{-1, 0, 0}
	Right = mgl32.Vec3{1, 0, 0}
)

// ForceAccumulator sums directional input for one frame and adds the resistance term when idle.
// The owner calls Reset at the end of every frame.
type ForceAccumulator struct {
	Resistance float32
	force      mgl32.Vec3
}

// NewForceAccumulator returns an empty accumulator with the given resistance magnitude.
func NewForceAccumulator(resistance float32) *ForceAccumulator {
	return &ForceAccumulator{Resistance: resistance}
}

// Add accumulates a directional contribution. Opposite directions cancel.
func (f *ForceAccumulator) Add(dir mgl32.Vec3) {
	f.force = f.force.Add(dir)
}

// Resolve returns the net force for the frame and whether the frame is idle (no directional input).
// When idle and velocity is non-zero, a constant force of magnitude Resistance opposes velocity.x.
// Resistance is never added on top of an active push.
func (f *ForceAccumulator) Resolve(velocity mgl32.Vec3) (mgl32.Vec3, bool) {
	idle := isZero(f.force)
	if idle && !isZero(velocity) {
		f.force[0] = -sign(velocity.X()) * f.Resistance
	}
	return f.force, idle
}

// Force returns the currently accumulated force.
func (f *ForceAccumulator) Force() mgl32.Vec3 {
	return f.force
}

// Reset clears the accumulated force so the next frame starts clean.
func (f *ForceAccumulator) Reset() {
	f.force = mgl32.Vec3{}
}

func sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
