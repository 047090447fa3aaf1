package spectate

import (
	"fmt"

	"alien-scene/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// Body is the read-only view of one body sent to spectators.
type Body struct {
	Kind     string     `json:"kind"`
	Position mgl32.Vec3 `json:"position"`
	Velocity mgl32.Vec3 `json:"velocity"`
	Scale    mgl32.Vec3 `json:"scale"`
	Mass     float32    `json:"mass"`
	Active   bool       `json:"active"`
}

// Frame is the state of the scene after one step.
type Frame struct {
	Frame       uint64  `json:"frame"`
	Width       float32 `json:"width"`
	Height      float32 `json:"height"`
	Score       int     `json:"score"`
	Player      Body    `json:"player"`
	Adversaries []Body  `json:"adversaries"`
	Collisions  []int   `json:"collisions"`
}

// FrameFrom copies the world state and the step report into a Frame that owns all its memory,
// so it can be handed to other goroutines.
func FrameFrom(w *physics.World, r physics.StepReport) (Frame, error) {
	width, height := w.Bounds()
	f := Frame{
		Frame:      w.Frame(),
		Width:      width,
		Height:     height,
		Score:      w.Score(),
		Collisions: append([]int(nil), r.Collisions...),
	}

	p := w.Player()
	if err := copier.Copy(&f.Player, &p); err != nil {
		return Frame{}, fmt.Errorf("spectate: player: %w", err)
	}
	f.Player.Kind = p.Kind.String()

	advs := w.AppendAdversaries(nil)
	if err := copier.Copy(&f.Adversaries, &advs); err != nil {
		return Frame{}, fmt.Errorf("spectate: adversaries: %w", err)
	}
	for i := range f.Adversaries {
		f.Adversaries[i].Kind = advs[i].Kind.String()
	}
	return f, nil
}
