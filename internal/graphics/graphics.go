package graphics

import (
	"alien-scene/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const title = "alien scene"

// Window describes the host window.
type Window struct {
	Width, Height int32
	Fullscreen    bool
	TargetFPS     int32
}

// Open creates the window and returns the drawable size in pixels. Fullscreen asks raylib for
// a zero-sized window, which it opens at the monitor resolution. ESC is left to the terminal; the window closes from its close button.
func Open(win Window) (width, height int32) {
	w, h := win.Width, win.Height
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		w, h = 0, 0
	}
	rl.InitWindow(w, h, title)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Close destroys the window opened by Open.
func Close() {
	rl.CloseWindow()
}

// Loop drives the frame loop until the window is closed. Each frame it calls update with the
// seconds since the previous frame, then clears the screen and calls draw.
func Loop(update func(dt float32), draw func()) {
	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// SampleInput reads the current keyboard and pointer state. The right mouse button is the
// steering pointer, matching the arrow keys for thrust.
func SampleInput() input.Snapshot {
	p := rl.GetMousePosition()
	return input.Snapshot{
		Left:        rl.IsKeyDown(rl.KeyLeft),
		Right:       rl.IsKeyDown(rl.KeyRight),
		PointerDown: rl.IsMouseButtonDown(rl.MouseButtonRight),
		PointerX:    p.X,
		PointerY:    p.Y,
		ViewportW:   float32(rl.GetScreenWidth()),
		ViewportH:   float32(rl.GetScreenHeight()),
	}
}
