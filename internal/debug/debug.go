package debug

import (
	"fmt"

	"alien-scene/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: text is rebuilt every N frames to limit allocations.
	updateInterval = 15
)

// Debug draws runtime overlays in the top-right corner. FPS is off by default; scene stats are on.
type Debug struct {
	ShowFPS   bool
	ShowStats bool
	world     *physics.World

	frameCount uint32
	fpsText    string
	statsText  [2]string
}

// New returns an overlay reporting on w.
func New(w *physics.World) *Debug {
	return &Debug{world: w, ShowStats: true}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// Draw renders the enabled overlays. Call after the scene and before the terminal.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 || d.fpsText == ""

	if update {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		p := d.world.Player()
		d.statsText[0] = fmt.Sprintf("frame %d  score %d", d.world.Frame(), d.world.Score())
		d.statsText[1] = fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f",
			p.Position.X(), p.Position.Y(), p.Velocity.X(), p.Velocity.Y())
	}

	y := int32(padding)
	if d.ShowFPS {
		drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowStats {
		for _, s := range d.statsText {
			drawRight(s, y)
			y += lineHeight
		}
	}
}

func drawRight(text string, y int32) {
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
