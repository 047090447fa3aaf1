package physics

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"alien-scene/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidStep is returned by Step for a negative or non-finite dt.
var ErrInvalidStep = errors.New("dt must be finite and non-negative")

// Settings are the numeric parameters of one scene. Viewport size is only used to derive the
// world width from WorldHeight so the world keeps the window's aspect ratio.
type Settings struct {
	WorldHeight          float32
	ViewportW, ViewportH float32
	TimeScale            float32
	Resistance           float32

	PlayerMass   float32
	PlayerRadius float32

	AdversaryCount  int
	AdversaryMass   float32
	AdversaryRadius float32
	// AdversarySpeed bounds the random initial velocity on x and y; 0 keeps adversaries still.
	AdversarySpeed float32

	Detector        string // DetectRadiusName or DetectDistanceName
	Response        string // ResolveSwapName or ResolveElasticName
	DeactivateOnHit bool

	// Seed drives adversary placement; 0 uses a time-based seed.
	Seed int64
}

// DefaultSettings returns a world 500 units high, time scale 5, resistance 1,
// five adversaries of radius 20 and mass 2, a player of radius 10 and mass 1.
func DefaultSettings() Settings {
	return Settings{
		WorldHeight:     500,
		ViewportW:       800,
		ViewportH:       600,
		TimeScale:       5,
		Resistance:      1,
		PlayerMass:      1,
		PlayerRadius:    10,
		AdversaryCount:  5,
		AdversaryMass:   2,
		AdversaryRadius: 20,
		Detector:        DetectDistanceName,
		Response:        ResolveSwapName,
	}
}

// StepReport describes what happened during one Step. Slices are reused by the next Step.
type StepReport struct {
	Frame       uint64
	Pointer     input.Edge
	Collisions  []int // adversary indices that overlapped the player
	Deactivated []int // adversary indices switched off this frame
}

// World owns the roster: one player and a fixed arena of adversaries allocated once.
// It is not safe for concurrent use; a single Step call is the only mutator.
type World struct {
	settings Settings
	width    float32
	height   float32

	player      Body
	adversaries []Body

	forces     *ForceAccumulator
	integrator Integrator
	detect     Detector
	resolve    Resolver
	pointer    input.PointerTracker

	frame  uint64
	score  int
	report StepReport
}

// NewWorld validates s and allocates the roster.
func NewWorld(s Settings) (*World, error) {
	if s.WorldHeight <= 0 || !finite(s.WorldHeight) {
		return nil, fmt.Errorf("physics: world height %g must be positive", s.WorldHeight)
	}
	if s.ViewportW <= 0 || s.ViewportH <= 0 {
		return nil, fmt.Errorf("physics: viewport %gx%g must be positive", s.ViewportW, s.ViewportH)
	}
	if s.TimeScale <= 0 || !finite(s.TimeScale) {
		return nil, fmt.Errorf("physics: time scale %g must be positive", s.TimeScale)
	}
	if s.Resistance < 0 || !finite(s.Resistance) {
		return nil, fmt.Errorf("physics: resistance %g must be non-negative", s.Resistance)
	}
	if s.AdversaryCount < 0 {
		return nil, fmt.Errorf("physics: adversary count %d must be non-negative", s.AdversaryCount)
	}
	detect, err := DetectorByName(s.Detector)
	if err != nil {
		return nil, err
	}
	resolve, err := ResolverByName(s.Response)
	if err != nil {
		return nil, err
	}

	w := &World{
		settings:    s,
		height:      s.WorldHeight,
		width:       s.WorldHeight * s.ViewportW / s.ViewportH,
		adversaries: make([]Body, s.AdversaryCount),
		forces:      NewForceAccumulator(s.Resistance),
		integrator:  Integrator{TimeScale: s.TimeScale},
		detect:      detect,
		resolve:     resolve,
	}
	w.report.Collisions = make([]int, 0, s.AdversaryCount)
	w.report.Deactivated = make([]int, 0, s.AdversaryCount)
	if err := w.populate(); err != nil {
		return nil, err
	}
	return w, nil
}

// populate places the player and adversaries. Adversary slots are overwritten in place.
func (w *World) populate() error {
	s := w.settings
	p, err := NewBody(KindPlayer,
		mgl32.Vec3{w.width / 2, w.height / 10, 0},
		mgl32.Vec3{s.PlayerRadius, s.PlayerRadius, 1},
		s.PlayerMass)
	if err != nil {
		return err
	}
	w.player = *p

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	maxX := max(1, int(w.width))
	halfY := max(1, int(w.height/2))
	for i := range w.adversaries {
		pos := mgl32.Vec3{
			float32(rng.Intn(maxX)),
			float32(rng.Intn(halfY)) + w.height/2,
			0,
		}
		a, err := NewBody(KindAdversary, pos, mgl32.Vec3{s.AdversaryRadius, s.AdversaryRadius, 1}, s.AdversaryMass)
		if err != nil {
			return err
		}
		if s.AdversarySpeed > 0 {
			a.Velocity = mgl32.Vec3{
				(rng.Float32()*2 - 1) * s.AdversarySpeed,
				(rng.Float32()*2 - 1) * s.AdversarySpeed,
				0,
			}
		}
		a.Active = true
		w.adversaries[i] = *a
	}
	return nil
}

// Reset puts every body back to its initial state and clears the score. The arena is reused.
func (w *World) Reset() error {
	w.frame = 0
	w.score = 0
	w.forces.Reset()
	w.pointer = input.PointerTracker{}
	return w.populate()
}

// Step advances the scene by dt seconds using the input sampled for this frame.
// Order: pointer/keys, player force and integration, force reset, then for each active adversary
// collision against the player followed by its own kinematic advance. The player collides whether
// or not it is active.
func (w *World) Step(dt float32, in input.Snapshot) (StepReport, error) {
	if dt < 0 || !finite(dt) {
		return StepReport{}, fmt.Errorf("physics: step dt %g: %w", dt, ErrInvalidStep)
	}
	w.frame++
	r := &w.report
	r.Frame = w.frame
	r.Collisions = r.Collisions[:0]
	r.Deactivated = r.Deactivated[:0]

	r.Pointer = w.applyPointer(in)
	if in.Left {
		w.forces.Add(Left)
	}
	if in.Right {
		w.forces.Add(Right)
	}

	force, idle := w.forces.Resolve(w.player.Velocity)
	w.integrator.Advance(&w.player, force, idle, dt)
	w.forces.Reset()

	for i := range w.adversaries {
		a := &w.adversaries[i]
		if !a.Active {
			continue
		}
		if w.detect(&w.player, a) {
			w.resolve(&w.player, a)
			r.Collisions = append(r.Collisions, i)
			if w.settings.DeactivateOnHit {
				a.Active = false
				w.score++
				r.Deactivated = append(r.Deactivated, i)
			}
		}
		w.integrator.Drift(a, dt)
	}
	return *r, nil
}

// applyPointer spawns the player under the pointer on press and launches it on release with
// velocity pointing from the pointer back to the player.
func (w *World) applyPointer(in input.Snapshot) input.Edge {
	edge := w.pointer.Update(in.PointerDown)
	switch edge {
	case input.EdgePress:
		w.player.Active = true
		w.player.Position = in.PointerWorld(w.width, w.height)
		w.player.Velocity = mgl32.Vec3{}
	case input.EdgeRelease:
		w.player.Velocity = w.player.Position.Sub(in.PointerWorld(w.width, w.height))
	}
	return edge
}

// Player returns a copy of the player body.
func (w *World) Player() Body {
	return w.player
}

// NumAdversaries is the arena capacity N.
func (w *World) NumAdversaries() int {
	return len(w.adversaries)
}

// Adversary returns a copy of adversary i.
func (w *World) Adversary(i int) Body {
	return w.adversaries[i]
}

// AppendAdversaries appends copies of all adversaries to dst, letting renderers reuse a buffer.
func (w *World) AppendAdversaries(dst []Body) []Body {
	return append(dst, w.adversaries...)
}

// Bounds returns the world extents.
func (w *World) Bounds() (width, height float32) {
	return w.width, w.height
}

// Score counts adversaries deactivated by hits. Stays zero unless DeactivateOnHit is set.
func (w *World) Score() int {
	return w.score
}

// Frame is the number of completed steps since creation or Reset.
func (w *World) Frame() uint64 {
	return w.frame
}

// Settings returns the active settings, including runtime changes.
func (w *World) Settings() Settings {
	return w.settings
}

// SetTimeScale changes the simulated-time multiplier.
func (w *World) SetTimeScale(ts float32) error {
	if ts <= 0 || !finite(ts) {
		return fmt.Errorf("physics: time scale %g must be positive", ts)
	}
	w.settings.TimeScale = ts
	w.integrator.TimeScale = ts
	return nil
}

// SetResistance changes the idle resistance magnitude.
func (w *World) SetResistance(r float32) error {
	if r < 0 || !finite(r) {
		return fmt.Errorf("physics: resistance %g must be non-negative", r)
	}
	w.settings.Resistance = r
	w.forces.Resistance = r
	return nil
}

// SetDetector switches the collision detector by name.
func (w *World) SetDetector(name string) error {
	d, err := DetectorByName(name)
	if err != nil {
		return err
	}
	w.settings.Detector = name
	w.detect = d
	return nil
}

// SetResponse switches the collision response by name.
func (w *World) SetResponse(name string) error {
	r, err := ResolverByName(name)
	if err != nil {
		return err
	}
	w.settings.Response = name
	w.resolve = r
	return nil
}

// SetDeactivateOnHit toggles removing adversaries when they are hit.
func (w *World) SetDeactivateOnHit(on bool) {
	w.settings.DeactivateOnHit = on
}
