package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNonPositiveMass is returned when a body is built with mass <= 0.
	ErrNonPositiveMass = errors.New("mass must be positive")
	// ErrNonPositiveRadius is returned when a body's scale.x (its collision radius) is <= 0.
	ErrNonPositiveRadius = errors.New("radius (scale.x) must be positive")
	// ErrNonFinite is returned when a vector or scalar holds NaN or Inf.
	ErrNonFinite = errors.New("value must be finite")
)

// Kind selects the initialization parameters of a body. It does not change update logic.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindAdversary
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAdversary:
		return "adversary"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Body is one simulated circular entity. Scale is used for drawing and its X component is the
// collision radius (uniform scale assumed; Y and Z are cosmetic).
// InvMass is computed once in NewBody since mass never changes.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Scale    mgl32.Vec3
	Mass     float32
	InvMass  float32
	Active   bool
	Kind     Kind
}

// NewBody returns a body at position with the given scale and mass. Velocity is zero and the body
// starts inactive. Mass and scale.x must be positive; they are checked here and never at use.
func NewBody(kind Kind, position, scale mgl32.Vec3, mass float32) (*Body, error) {
	if !finite(mass) || !finiteVec(position) || !finiteVec(scale) {
		return nil, fmt.Errorf("physics: new %s: %w", kind, ErrNonFinite)
	}
	if mass <= 0 {
		return nil, fmt.Errorf("physics: new %s: mass %g: %w", kind, mass, ErrNonPositiveMass)
	}
	if scale.X() <= 0 {
		return nil, fmt.Errorf("physics: new %s: scale.x %g: %w", kind, scale.X(), ErrNonPositiveRadius)
	}
	return &Body{
		Position: position,
		Scale:    scale,
		Mass:     mass,
		InvMass:  1 / mass,
		Kind:     kind,
	}, nil
}

// Radius is the collision proxy radius.
func (b *Body) Radius() float32 {
	return b.Scale.X()
}

// IsMoving reports whether any velocity component is non-zero.
func (b *Body) IsMoving() bool {
	return !isZero(b.Velocity)
}

func isZero(v mgl32.Vec3) bool {
	return v == mgl32.Vec3{}
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func finiteVec(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
