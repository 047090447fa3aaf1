package input

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is everything the scene core reads from the platform in one frame. The host samples it
// once per frame and passes it to World.Step, so the core never queries devices itself.
type Snapshot struct {
	Left, Right bool // directional keys held this frame
	PointerDown bool // launch button held this frame
	// PointerX, PointerY are in screen pixels, y growing downwards.
	PointerX, PointerY float32
	// ViewportW, ViewportH are the current screen size in pixels.
	ViewportW, ViewportH float32
}

// Viewport returns the viewport size as a pair.
func (s Snapshot) Viewport() (w, h float32) {
	return s.ViewportW, s.ViewportH
}

// Muted returns s with the keys and the pointer button released. Pointer position and viewport
// are kept so the world mapping stays valid.
func (s Snapshot) Muted() Snapshot {
	s.Left, s.Right, s.PointerDown = false, false, false
	return s
}

// ScreenToWorld converts a screen pixel position to world coordinates:
// world = pointer * (worldExtent / viewportExtent), with y flipped since screen y grows downwards.
// A zero-sized viewport maps everything to the origin.
func ScreenToWorld(x, y, viewportW, viewportH, worldW, worldH float32) mgl32.Vec3 {
	if viewportW <= 0 || viewportH <= 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{
		x * (worldW / viewportW),
		(viewportH - y) * (worldH / viewportH),
		0,
	}
}

// PointerWorld is ScreenToWorld applied to the snapshot's pointer.
func (s Snapshot) PointerWorld(worldW, worldH float32) mgl32.Vec3 {
	return ScreenToWorld(s.PointerX, s.PointerY, s.ViewportW, s.ViewportH, worldW, worldH)
}

// WorldToScreen is the inverse of ScreenToWorld. It returns the screen pixel position of a world
// point and the pixels per world unit on each axis. A zero-sized world maps everything to 0,0.
func WorldToScreen(p mgl32.Vec3, viewportW, viewportH, worldW, worldH float32) (x, y, sx, sy float32) {
	if worldW <= 0 || worldH <= 0 {
		return 0, 0, 0, 0
	}
	sx = viewportW / worldW
	sy = viewportH / worldH
	return p.X() * sx, viewportH - p.Y()*sy, sx, sy
}
