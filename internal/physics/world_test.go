package physics

import (
	"testing"

	"alien-scene/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	s := DefaultSettings()
	s.ViewportW, s.ViewportH = 1000, 500 // world is 1000 x 500
	s.Seed = 42
	return s
}

func newTestWorld(t *testing.T, mutate func(*Settings)) *World {
	t.Helper()
	s := testSettings()
	if mutate != nil {
		mutate(&s)
	}
	w, err := NewWorld(s)
	require.NoError(t, err)
	return w
}

// clearAdversaries parks every adversary far away and at rest.
func clearAdversaries(w *World) {
	for i := range w.adversaries {
		w.adversaries[i].Position = mgl32.Vec3{-1e6, -1e6, 0}
		w.adversaries[i].Velocity = mgl32.Vec3{}
	}
}

func TestNewWorldLayout(t *testing.T) {
	w := newTestWorld(t, nil)

	width, height := w.Bounds()
	assert.Equal(t, float32(1000), width)
	assert.Equal(t, float32(500), height)

	p := w.Player()
	assert.Equal(t, mgl32.Vec3{500, 50, 0}, p.Position)
	assert.Equal(t, float32(10), p.Radius())
	assert.Equal(t, float32(1), p.InvMass)
	assert.False(t, p.Active)

	require.Equal(t, 5, w.NumAdversaries())
	for i := 0; i < w.NumAdversaries(); i++ {
		a := w.Adversary(i)
		assert.True(t, a.Active)
		assert.Equal(t, KindAdversary, a.Kind)
		assert.Equal(t, float32(20), a.Radius())
		assert.Equal(t, float32(2), a.Mass)
		assert.Equal(t, mgl32.Vec3{}, a.Velocity)
		assert.GreaterOrEqual(t, a.Position.X(), float32(0))
		assert.Less(t, a.Position.X(), width)
		assert.GreaterOrEqual(t, a.Position.Y(), height/2)
		assert.Less(t, a.Position.Y(), height)
	}
}

func TestNewWorldSeedIsDeterministic(t *testing.T) {
	a := newTestWorld(t, nil)
	b := newTestWorld(t, nil)
	assert.Equal(t, a.AppendAdversaries(nil), b.AppendAdversaries(nil))
}

func TestNewWorldRandomSpeed(t *testing.T) {
	w := newTestWorld(t, func(s *Settings) { s.AdversarySpeed = 3 })
	for _, a := range w.AppendAdversaries(nil) {
		assert.LessOrEqual(t, math32.Abs(a.Velocity.X()), float32(3))
		assert.LessOrEqual(t, math32.Abs(a.Velocity.Y()), float32(3))
		assert.Equal(t, float32(0), a.Velocity.Z())
	}
}

func TestNewWorldRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"player mass", func(s *Settings) { s.PlayerMass = 0 }, ErrNonPositiveMass},
		{"adversary mass", func(s *Settings) { s.AdversaryMass = -1 }, ErrNonPositiveMass},
		{"player radius", func(s *Settings) { s.PlayerRadius = 0 }, ErrNonPositiveRadius},
		{"adversary radius", func(s *Settings) { s.AdversaryRadius = 0 }, ErrNonPositiveRadius},
		{"world height", func(s *Settings) { s.WorldHeight = 0 }, nil},
		{"viewport", func(s *Settings) { s.ViewportH = 0 }, nil},
		{"time scale", func(s *Settings) { s.TimeScale = 0 }, nil},
		{"resistance", func(s *Settings) { s.Resistance = -1 }, nil},
		{"count", func(s *Settings) { s.AdversaryCount = -1 }, nil},
		{"detector", func(s *Settings) { s.Detector = "sweep" }, nil},
		{"response", func(s *Settings) { s.Response = "stick" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			tt.mutate(&s)
			w, err := NewWorld(s)
			assert.Nil(t, w)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestStepRejectsInvalidDt(t *testing.T) {
	w := newTestWorld(t, nil)
	before := w.Player()
	for _, dt := range []float32{-0.01, math32.NaN(), math32.Inf(1)} {
		_, err := w.Step(dt, input.Snapshot{Right: true})
		assert.ErrorIs(t, err, ErrInvalidStep)
	}
	assert.Equal(t, before, w.Player())
	assert.Equal(t, uint64(0), w.Frame())
}

func TestStepResistanceConverges(t *testing.T) {
	for _, v0 := range []float32{1.2, -1.2, 3, -7.3, 0.01} {
		w := newTestWorld(t, nil)
		clearAdversaries(w)
		w.player.Velocity = mgl32.Vec3{v0, 0, 0}

		stopped := false
		for i := 0; i < 1000; i++ {
			_, err := w.Step(1.0/60, input.Snapshot{})
			require.NoError(t, err)
			vx := w.Player().Velocity.X()
			if v0 > 0 {
				require.GreaterOrEqual(t, vx, float32(0), "overshoot from %v at step %d", v0, i)
			} else {
				require.LessOrEqual(t, vx, float32(0), "overshoot from %v at step %d", v0, i)
			}
			if vx == 0 {
				stopped = true
				break
			}
		}
		assert.True(t, stopped, "v0=%v never came to rest", v0)
		assert.Equal(t, mgl32.Vec3{}, w.Player().Velocity)
	}
}

func TestStepDirectionalCancellation(t *testing.T) {
	w := newTestWorld(t, nil)
	clearAdversaries(w)
	start := w.Player().Position

	_, err := w.Step(0.1, input.Snapshot{Left: true, Right: true})
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{}, w.forces.Force())
	assert.Equal(t, start, w.Player().Position)
	assert.Equal(t, mgl32.Vec3{}, w.Player().Velocity)
}

func TestStepIdleAtRestIsNoop(t *testing.T) {
	w := newTestWorld(t, nil)
	clearAdversaries(w)
	start := w.Player().Position
	for _, dt := range []float32{0, 0.016, 0.5, 3} {
		_, err := w.Step(dt, input.Snapshot{})
		require.NoError(t, err)
	}
	assert.Equal(t, start, w.Player().Position)
}

func TestStepPushMovesPlayer(t *testing.T) {
	w := newTestWorld(t, nil)
	clearAdversaries(w)

	_, err := w.Step(0.1, input.Snapshot{Right: true})
	require.NoError(t, err)

	// a = 1, t = 0.5: v = 0.5, s = 0.5 * 0.5 * 0.5
	p := w.Player()
	assert.InDelta(t, 0.5, p.Velocity.X(), 1e-6)
	assert.InDelta(t, 500.125, p.Position.X(), 1e-4)
	assert.Equal(t, mgl32.Vec3{}, w.forces.Force(), "force is reset after the step")
}

func TestStepPointerSpawnAndLaunch(t *testing.T) {
	w := newTestWorld(t, nil)
	clearAdversaries(w)
	view := input.Snapshot{ViewportW: 1000, ViewportH: 500}

	press := view
	press.PointerDown = true
	press.PointerX, press.PointerY = 200, 400 // world (200, 100)
	r, err := w.Step(0, press)
	require.NoError(t, err)
	assert.Equal(t, input.EdgePress, r.Pointer)
	assert.True(t, w.Player().Active)
	assert.Equal(t, mgl32.Vec3{200, 100, 0}, w.Player().Position)

	drag := press
	drag.PointerX, drag.PointerY = 150, 450 // world (150, 50)
	r, err = w.Step(0, drag)
	require.NoError(t, err)
	assert.Equal(t, input.EdgeNone, r.Pointer)

	release := drag
	release.PointerDown = false
	r, err = w.Step(0, release)
	require.NoError(t, err)
	assert.Equal(t, input.EdgeRelease, r.Pointer)
	assert.True(t, w.Player().Active)
	assert.Equal(t, mgl32.Vec3{50, 50, 0}, w.Player().Velocity)
}

func TestStepCollisionSwap(t *testing.T) {
	w := newTestWorld(t, nil)
	clearAdversaries(w)
	w.player.Active = true
	w.player.Position = mgl32.Vec3{100, 100, 0}
	w.player.Velocity = mgl32.Vec3{0, 0, 0}
	w.adversaries[2].Position = mgl32.Vec3{110, 100, 0}
	w.adversaries[2].Velocity = mgl32.Vec3{-2, 0, 0}

	r, err := w.Step(0, input.Snapshot{})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, r.Collisions)
	assert.Empty(t, r.Deactivated)
	assert.Equal(t, mgl32.Vec3{-2, 0, 0}, w.Player().Velocity)
	assert.Equal(t, mgl32.Vec3{}, w.Adversary(2).Velocity)
	assert.True(t, w.Adversary(2).Active)
	assert.Equal(t, 0, w.Score())
}

func TestStepRadiusDetectorHitsEveryActiveAdversary(t *testing.T) {
	w := newTestWorld(t, func(s *Settings) { s.Detector = DetectRadiusName })
	w.player.Active = true

	r, err := w.Step(0.016, input.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r.Collisions)
}

func TestStepInactivePlayerStillCollides(t *testing.T) {
	w := newTestWorld(t, func(s *Settings) { s.Detector = DetectRadiusName })
	require.False(t, w.Player().Active)
	w.adversaries[0].Velocity = mgl32.Vec3{3, 0, 0}

	r, err := w.Step(0, input.Snapshot{})
	require.NoError(t, err)

	// Swaps run in index order: the player takes adversary 0's velocity and hands it to adversary 1.
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r.Collisions)
	assert.Equal(t, mgl32.Vec3{}, w.Adversary(0).Velocity)
	assert.Equal(t, mgl32.Vec3{3, 0, 0}, w.Adversary(1).Velocity)
	assert.Equal(t, mgl32.Vec3{}, w.Adversary(4).Velocity)
	assert.Equal(t, mgl32.Vec3{}, w.Player().Velocity)
	assert.False(t, w.Player().Active)
}

func TestStepDeactivateOnHit(t *testing.T) {
	w := newTestWorld(t, func(s *Settings) {
		s.Detector = DetectRadiusName
		s.DeactivateOnHit = true
	})
	w.player.Active = true
	w.adversaries[1].Active = false

	r, err := w.Step(0.016, input.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 4}, r.Collisions)
	assert.Equal(t, []int{0, 2, 3, 4}, r.Deactivated)
	assert.Equal(t, 4, w.Score())

	r, err = w.Step(0.016, input.Snapshot{})
	require.NoError(t, err)
	assert.Empty(t, r.Collisions)
}

func TestStepAdversaryDrift(t *testing.T) {
	w := newTestWorld(t, nil)
	clearAdversaries(w)
	w.adversaries[0].Position = mgl32.Vec3{10, 10, 0}
	w.adversaries[0].Velocity = mgl32.Vec3{1, 2, 0}
	w.adversaries[1].Position = mgl32.Vec3{20, 20, 0}
	w.adversaries[1].Velocity = mgl32.Vec3{1, 2, 0}
	w.adversaries[1].Active = false

	_, err := w.Step(0.2, input.Snapshot{})
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{11, 12, 0}, w.Adversary(0).Position)
	assert.Equal(t, mgl32.Vec3{20, 20, 0}, w.Adversary(1).Position, "inactive adversaries stay put")
}

func TestWorldRuntimeSettings(t *testing.T) {
	w := newTestWorld(t, nil)

	require.NoError(t, w.SetTimeScale(2))
	assert.Error(t, w.SetTimeScale(0))
	require.NoError(t, w.SetResistance(0.5))
	assert.Error(t, w.SetResistance(-1))
	require.NoError(t, w.SetDetector(DetectRadiusName))
	assert.Error(t, w.SetDetector("nope"))
	require.NoError(t, w.SetResponse(ResolveElasticName))
	assert.Error(t, w.SetResponse("nope"))
	w.SetDeactivateOnHit(true)

	s := w.Settings()
	assert.Equal(t, float32(2), s.TimeScale)
	assert.Equal(t, float32(0.5), s.Resistance)
	assert.Equal(t, DetectRadiusName, s.Detector)
	assert.Equal(t, ResolveElasticName, s.Response)
	assert.True(t, s.DeactivateOnHit)
}

func TestWorldReset(t *testing.T) {
	w := newTestWorld(t, func(s *Settings) {
		s.Detector = DetectRadiusName
		s.DeactivateOnHit = true
	})
	initial := w.AppendAdversaries(nil)
	w.player.Active = true
	_, err := w.Step(0.1, input.Snapshot{Right: true})
	require.NoError(t, err)
	require.Equal(t, 5, w.Score())

	require.NoError(t, w.Reset())

	assert.Equal(t, 0, w.Score())
	assert.Equal(t, uint64(0), w.Frame())
	assert.False(t, w.Player().Active)
	assert.Equal(t, initial, w.AppendAdversaries(nil))
}
