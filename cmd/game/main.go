package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"alien-scene/internal/audio"
	"alien-scene/internal/commands"
	"alien-scene/internal/config"
	"alien-scene/internal/debug"
	"alien-scene/internal/events"
	"alien-scene/internal/graphics"
	"alien-scene/internal/logger"
	"alien-scene/internal/physics"
	"alien-scene/internal/scene"
	"alien-scene/internal/spectate"
	"alien-scene/internal/terminal"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "scene config file")
	envPath := flag.String("env", ".env", "dotenv file with SCENE_* overrides")
	flag.Parse()

	if err := run(*cfgPath, *envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath, envPath string) error {
	if err := config.LoadDotEnv(envPath); err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Path, cfg.Logging.Keep)

	w, h := graphics.Open(graphics.Window{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
	})
	defer graphics.Close()

	world, err := physics.NewWorld(cfg.Settings(float32(w), float32(h)))
	if err != nil {
		return err
	}
	ww, wh := world.Bounds()
	log.Logf("world %.0fx%.0f, %d adversaries, %s/%s",
		ww, wh, world.NumAdversaries(), cfg.Collision.Detector, cfg.Collision.Response)

	scn := scene.New(world)
	dbg := debug.New(world)
	dbg.SetShowFPS(cfg.Window.ShowFPS)

	var paused bool
	reg := commands.NewRegistry()
	commands.RegisterScene(reg, commands.SceneDeps{
		World:      world,
		Config:     &cfg,
		ConfigPath: cfgPath,
		Log:        log,
		Paused:     &paused,
		ShowFPS:    dbg.SetShowFPS,
		ShowGrid:   scn.SetGridVisible,
	})
	term := terminal.New(log, reg)

	var hub *spectate.Hub
	if cfg.Spectate.Addr != "" {
		hub = spectate.NewHub(log)
		srv := hub.Serve(cfg.Spectate.Addr)
		log.Logf("spectators on ws://%s/ws", cfg.Spectate.Addr)
		defer func() {
			hub.Close()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	var cue *audio.Cue
	if cfg.Audio.Enabled {
		c, err := audio.NewCue()
		if err != nil {
			// Non-fatal: the scene runs without sound.
			log.Logf("audio disabled: %v", err)
		}
		cue = c
		defer cue.Close()
	}

	reporter := events.NewReporter(log)
	if cue != nil {
		reporter.OnHit = func() { cue.Play(audio.EventHit) }
		reporter.OnLaunch = func() { cue.Play(audio.EventLaunch) }
	}

	update := func(dt float32) {
		term.Update()
		in := graphics.SampleInput()
		if term.IsOpen() {
			in = in.Muted()
		}
		if paused {
			return
		}
		r, err := world.Step(dt, in)
		if err != nil {
			log.Log(err.Error())
			return
		}
		scn.Update(r)
		reporter.Report(world, r)
		if hub != nil && hub.Clients() > 0 {
			f, err := spectate.FrameFrom(world, r)
			if err == nil {
				err = hub.Publish(f)
			}
			if err != nil {
				log.Log(err.Error())
			}
		}
	}
	draw := func() {
		scn.Draw()
		dbg.Draw()
		term.Draw()
	}
	graphics.Loop(update, draw)
	return nil
}
