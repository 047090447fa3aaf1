package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"alien-scene/internal/logger"
	"alien-scene/internal/physics"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the scene config file, relative to the process working directory.
const DefaultPath = "config/scene.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the scene parameters and host preferences. Persisted as YAML.
type Config struct {
	Seed      int64     `yaml:"seed"`
	World     World     `yaml:"world"`
	Player    Player    `yaml:"player"`
	Adversary Adversary `yaml:"adversary"`
	Collision Collision `yaml:"collision"`
	Window    Window    `yaml:"window"`
	Logging   Logging   `yaml:"logging"`
	Spectate  Spectate  `yaml:"spectate"`
	Audio     Audio     `yaml:"audio"`
}

type World struct {
	Height     float32 `yaml:"height"`
	TimeScale  float32 `yaml:"timeScale"`
	Resistance float32 `yaml:"resistance"`
}

type Player struct {
	Mass   float32 `yaml:"mass"`
	Radius float32 `yaml:"radius"`
}

type Adversary struct {
	Count  int     `yaml:"count"`
	Mass   float32 `yaml:"mass"`
	Radius float32 `yaml:"radius"`
	Speed  float32 `yaml:"speed"`
}

// Collision picks the detector ("distance" or "radius") and response ("swap" or "elastic").
type Collision struct {
	Detector        string `yaml:"detector"`
	Response        string `yaml:"response"`
	DeactivateOnHit bool   `yaml:"deactivateOnHit"`
}

type Window struct {
	Width      int32 `yaml:"width"`
	Height     int32 `yaml:"height"`
	Fullscreen bool  `yaml:"fullscreen"`
	TargetFPS  int32 `yaml:"targetFPS"`
	ShowFPS    bool  `yaml:"showFPS"`
}

type Logging struct {
	Path string `yaml:"path"`
	Keep int    `yaml:"keep"`
}

// Spectate.Addr enables the websocket spectator stream when non-empty (e.g. ":8090").
type Spectate struct {
	Addr string `yaml:"addr"`
}

type Audio struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns a 500-unit world with five adversaries and a windowed 1280x720 host.
func Default() Config {
	return Config{
		World:     World{Height: 500, TimeScale: 5, Resistance: 1},
		Player:    Player{Mass: 1, Radius: 10},
		Adversary: Adversary{Count: 5, Mass: 2, Radius: 20},
		Collision: Collision{Detector: physics.DetectDistanceName, Response: physics.ResolveSwapName},
		Window:    Window{Width: 1280, Height: 720, TargetFPS: 60},
		Logging:   Logging{Path: logger.DefaultPath, Keep: 200},
		Audio:     Audio{Enabled: true},
	}
}

// Load reads the config at path on top of Default. A missing file is not an error.
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every numeric range and collision mode name.
func (c Config) Validate() error {
	floats := []struct {
		field string
		value float32
	}{
		{"world.height", c.World.Height},
		{"world.timeScale", c.World.TimeScale},
		{"world.resistance", c.World.Resistance},
		{"player.mass", c.Player.Mass},
		{"player.radius", c.Player.Radius},
		{"adversary.mass", c.Adversary.Mass},
		{"adversary.radius", c.Adversary.Radius},
		{"adversary.speed", c.Adversary.Speed},
	}
	for _, f := range floats {
		if math32.IsNaN(f.value) || math32.IsInf(f.value, 0) {
			return invalid(f.field, f.value, "must be finite")
		}
	}

	switch {
	case c.World.Height <= 0:
		return invalid("world.height", c.World.Height, "must be positive")
	case c.World.TimeScale <= 0:
		return invalid("world.timeScale", c.World.TimeScale, "must be positive")
	case c.World.Resistance < 0:
		return invalid("world.resistance", c.World.Resistance, "must be non-negative")
	case c.Player.Mass <= 0:
		return invalid("player.mass", c.Player.Mass, "must be positive")
	case c.Player.Radius <= 0:
		return invalid("player.radius", c.Player.Radius, "must be positive")
	case c.Adversary.Count < 0:
		return invalid("adversary.count", c.Adversary.Count, "must be non-negative")
	case c.Adversary.Mass <= 0:
		return invalid("adversary.mass", c.Adversary.Mass, "must be positive")
	case c.Adversary.Radius <= 0:
		return invalid("adversary.radius", c.Adversary.Radius, "must be positive")
	case c.Adversary.Speed < 0:
		return invalid("adversary.speed", c.Adversary.Speed, "must be non-negative")
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window", fmt.Sprintf("%dx%d", c.Window.Width, c.Window.Height), "must be positive")
	case c.Logging.Keep < 0:
		return invalid("logging.keep", c.Logging.Keep, "must be non-negative")
	}
	if _, err := physics.DetectorByName(c.Collision.Detector); err != nil {
		return fmt.Errorf("config: collision.detector: %w: %v", ErrInvalid, err)
	}
	if _, err := physics.ResolverByName(c.Collision.Response); err != nil {
		return fmt.Errorf("config: collision.response: %w: %v", ErrInvalid, err)
	}
	return nil
}

// Settings converts the config into world settings for a viewport of the given size.
func (c Config) Settings(viewportW, viewportH float32) physics.Settings {
	return physics.Settings{
		WorldHeight:     c.World.Height,
		ViewportW:       viewportW,
		ViewportH:       viewportH,
		TimeScale:       c.World.TimeScale,
		Resistance:      c.World.Resistance,
		PlayerMass:      c.Player.Mass,
		PlayerRadius:    c.Player.Radius,
		AdversaryCount:  c.Adversary.Count,
		AdversaryMass:   c.Adversary.Mass,
		AdversaryRadius: c.Adversary.Radius,
		AdversarySpeed:  c.Adversary.Speed,
		Detector:        c.Collision.Detector,
		Response:        c.Collision.Response,
		DeactivateOnHit: c.Collision.DeactivateOnHit,
		Seed:            c.Seed,
	}
}

func invalid(field string, value any, why string) error {
	return fmt.Errorf("config: %s %v %s: %w", field, value, why, ErrInvalid)
}
