package physics

import "fmt"

// Detector decides whether two bodies overlap.
type Detector func(a, b *Body) bool

// Resolver rewrites the velocities of two overlapping bodies.
type Resolver func(a, b *Body)

// Detector and resolver names accepted by DetectorByName and ResolverByName.
const (
	DetectRadiusName   = "radius"
	DetectDistanceName = "distance"
	ResolveSwapName    = "swap"
	ResolveElasticName = "elastic"
)

// DetectRadius compares the difference of the two radii against their sum. Positions are ignored,
// so any pair of positive radii reports an overlap.
func DetectRadius(a, b *Body) bool {
	ra, rb := a.Radius(), b.Radius()
	return ra-rb < ra+rb
}

// DetectDistance is the geometric circle test: |pA - pB| < rA + rB.
// Squared lengths are compared to avoid the square root.
func DetectDistance(a, b *Body) bool {
	d := a.Position.Sub(b.Position)
	r := a.Radius() + b.Radius()
	return d.Dot(d) < r*r
}

// ResolveSwap exchanges the two velocities in full regardless of mass.
func ResolveSwap(a, b *Body) {
	a.Velocity, b.Velocity = b.Velocity, a.Velocity
}

// ResolveElastic applies a perfectly elastic exchange along the line of centres using both masses.
// Only the normal components change; tangential components are kept. Coincident centres have no
// normal, so the bodies fall back to a full swap.
func ResolveElastic(a, b *Body) {
	delta := b.Position.Sub(a.Position)
	if isZero(delta) {
		ResolveSwap(a, b)
		return
	}
	n := delta.Normalize()

	ua := a.Velocity.Dot(n)
	ub := b.Velocity.Dot(n)
	total := a.Mass + b.Mass

	va := (ua*(a.Mass-b.Mass) + 2*b.Mass*ub) / total
	vb := (ub*(b.Mass-a.Mass) + 2*a.Mass*ua) / total

	a.Velocity = a.Velocity.Add(n.Mul(va - ua))
	b.Velocity = b.Velocity.Add(n.Mul(vb - ub))
}

// DetectorByName maps a config name to a detector.
func DetectorByName(name string) (Detector, error) {
	switch name {
	case DetectRadiusName:
		return DetectRadius, nil
	case DetectDistanceName:
		return DetectDistance, nil
	}
	return nil, fmt.Errorf("physics: unknown detector %q (use %s or %s)", name, DetectRadiusName, DetectDistanceName)
}

// ResolverByName maps a config name to a resolver.
func ResolverByName(name string) (Resolver, error) {
	switch name {
	case ResolveSwapName:
		return ResolveSwap, nil
	case ResolveElasticName:
		return ResolveElastic, nil
	}
	return nil, fmt.Errorf("physics: unknown response %q (use %s or %s)", name, ResolveSwapName, ResolveElasticName)
}
