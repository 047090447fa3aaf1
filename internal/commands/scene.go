package commands

import (
	"fmt"

	"alien-scene/internal/config"
	"alien-scene/internal/logger"
	"alien-scene/internal/physics"
)

// SceneDeps is what the scene subcommands act on. Paused, ShowFPS and ShowGrid are owned by the
// host loop.
type SceneDeps struct {
	World      *physics.World
	Config     *config.Config
	ConfigPath string
	Log        *logger.Logger
	Paused     *bool
	ShowFPS    func(bool)
	ShowGrid   func(bool)
}

// RegisterScene adds the scene tuning commands to r.
func RegisterScene(r *Registry, d SceneDeps) {
	r.Register("help", "list commands", nil, func([]string) error {
		for _, line := range r.Help() {
			d.Log.Log(line)
		}
		return nil
	})

	r.Register("reset", "respawn all bodies and clear the score", nil, func([]string) error {
		if err := d.World.Reset(); err != nil {
			return err
		}
		d.Log.Log("scene reset")
		return nil
	})

	tsFlags := NewFlagSet("timescale")
	ts := tsFlags.Float64("value", 0, "simulated seconds per real second")
	r.Register("timescale", "--value F", tsFlags, func([]string) error {
		if err := d.World.SetTimeScale(float32(*ts)); err != nil {
			return err
		}
		d.Log.Logf("time scale %g", *ts)
		return nil
	})

	resFlags := NewFlagSet("resistance")
	res := resFlags.Float64("value", -1, "idle resistance magnitude")
	r.Register("resistance", "--value F", resFlags, func([]string) error {
		if err := d.World.SetResistance(float32(*res)); err != nil {
			return err
		}
		d.Log.Logf("resistance %g", *res)
		return nil
	})

	detFlags := NewFlagSet("detector")
	det := detFlags.String("mode", "", physics.DetectDistanceName+" or "+physics.DetectRadiusName)
	r.Register("detector", "--mode distance|radius", detFlags, func([]string) error {
		if err := d.World.SetDetector(*det); err != nil {
			return err
		}
		d.Log.Logf("collision detector %s", *det)
		return nil
	})

	respFlags := NewFlagSet("response")
	resp := respFlags.String("mode", "", physics.ResolveSwapName+" or "+physics.ResolveElasticName)
	r.Register("response", "--mode swap|elastic", respFlags, func([]string) error {
		if err := d.World.SetResponse(*resp); err != nil {
			return err
		}
		d.Log.Logf("collision response %s", *resp)
		return nil
	})

	deactFlags := NewFlagSet("deactivate")
	deact := deactFlags.Bool("on", false, "remove adversaries when hit")
	r.Register("deactivate", "--on[=false]", deactFlags, func([]string) error {
		d.World.SetDeactivateOnHit(*deact)
		d.Log.Logf("deactivate on hit %t", *deact)
		return nil
	})

	r.Register("pause", "toggle simulation pause", nil, func([]string) error {
		*d.Paused = !*d.Paused
		if *d.Paused {
			d.Log.Log("paused")
		} else {
			d.Log.Log("resumed")
		}
		return nil
	})

	registerToggle(r, "fps", "FPS counter", d.ShowFPS)
	registerToggle(r, "grid", "world grid", d.ShowGrid)

	r.Register("save", "write current settings to the config file", nil, func([]string) error {
		s := d.World.Settings()
		d.Config.World.TimeScale = s.TimeScale
		d.Config.World.Resistance = s.Resistance
		d.Config.Collision.Detector = s.Detector
		d.Config.Collision.Response = s.Response
		d.Config.Collision.DeactivateOnHit = s.DeactivateOnHit
		if err := config.Save(d.ConfigPath, *d.Config); err != nil {
			return err
		}
		d.Log.Logf("saved %s", d.ConfigPath)
		return nil
	})
}

// registerToggle adds a "name --show | --hide" command that calls set.
func registerToggle(r *Registry, name, what string, set func(bool)) {
	fs := NewFlagSet(name)
	show := fs.Bool("show", false, "show "+what)
	hide := fs.Bool("hide", false, "hide "+what)
	r.Register(name, "--show | --hide", fs, func([]string) error {
		if *show == *hide {
			return fmt.Errorf("%s: pass exactly one of --show or --hide", name)
		}
		set(*show)
		return nil
	})
}
