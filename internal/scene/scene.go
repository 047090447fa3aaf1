package scene

import (
	"alien-scene/internal/input"
	"alien-scene/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridMinorStep  = 25
	gridMajorStep  = 100
	gridMinorAlpha = 30
	gridMajorAlpha = 70
	velocityAlpha  = 160
	// velocityLength is the seconds of motion drawn as the player's velocity line.
	velocityLength = 0.25
)

var (
	playerColor    = rl.NewColor(90, 200, 255, 255)
	adversaryColor = rl.NewColor(120, 230, 90, 255)
	hitColor       = rl.NewColor(255, 90, 70, 255)
	minorColor     = rl.NewColor(128, 128, 128, gridMinorAlpha)
	majorColor     = rl.NewColor(160, 160, 160, gridMajorAlpha)
	velocityColor  = rl.NewColor(255, 255, 255, velocityAlpha)
)

// Scene draws the world in 2D, mapping world units onto the whole screen with y pointing up.
type Scene struct {
	world       *physics.World
	GridVisible bool

	// hits holds adversary indices that collided this frame; they are drawn in hitColor.
	hits   map[int]struct{}
	bodies []physics.Body
}

// New returns a scene drawing w with the grid visible.
func New(w *physics.World) *Scene {
	return &Scene{world: w, GridVisible: true, hits: make(map[int]struct{})}
}

// SetGridVisible sets whether the world grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update records the collisions from the last step for highlighting.
func (s *Scene) Update(r physics.StepReport) {
	clear(s.hits)
	for _, i := range r.Collisions {
		s.hits[i] = struct{}{}
	}
}

// Draw renders the grid, active adversaries and the player if active.
func (s *Scene) Draw() {
	vw, vh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	ww, wh := s.world.Bounds()
	if s.GridVisible {
		drawGrid(vw, vh, ww, wh)
	}

	s.bodies = s.world.AppendAdversaries(s.bodies[:0])
	for i := range s.bodies {
		b := &s.bodies[i]
		if !b.Active {
			continue
		}
		c := adversaryColor
		if _, hit := s.hits[i]; hit {
			c = hitColor
		}
		drawBody(b, c, vw, vh, ww, wh)
	}

	p := s.world.Player()
	if !p.Active {
		return
	}
	drawBody(&p, playerColor, vw, vh, ww, wh)
	x, y, sx, sy := input.WorldToScreen(p.Position, vw, vh, ww, wh)
	rl.DrawLineV(
		rl.NewVector2(x, y),
		rl.NewVector2(x+p.Velocity.X()*velocityLength*sx, y-p.Velocity.Y()*velocityLength*sy),
		velocityColor)
}

func drawBody(b *physics.Body, c rl.Color, vw, vh, ww, wh float32) {
	x, y, _, sy := input.WorldToScreen(b.Position, vw, vh, ww, wh)
	rl.DrawCircleV(rl.NewVector2(x, y), b.Radius()*sy, c)
}

// drawGrid draws minor and major lines every gridMinorStep and gridMajorStep world units.
func drawGrid(vw, vh, ww, wh float32) {
	var start, end rl.Vector2
	for gx := 0; float32(gx) <= ww; gx += gridMinorStep {
		c := minorColor
		if gx%gridMajorStep == 0 {
			c = majorColor
		}
		x, _, _, _ := input.WorldToScreen(mgl32.Vec3{float32(gx), 0, 0}, vw, vh, ww, wh)
		start.X, start.Y = x, 0
		end.X, end.Y = x, vh
		rl.DrawLineV(start, end, c)
	}
	for gy := 0; float32(gy) <= wh; gy += gridMinorStep {
		c := minorColor
		if gy%gridMajorStep == 0 {
			c = majorColor
		}
		_, y, _, _ := input.WorldToScreen(mgl32.Vec3{0, float32(gy), 0}, vw, vh, ww, wh)
		start.X, start.Y = 0, y
		end.X, end.Y = vw, y
		rl.DrawLineV(start, end, c)
	}
}
