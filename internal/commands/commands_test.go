package commands

import (
	"errors"
	"path/filepath"
	"testing"

	"alien-scene/internal/config"
	"alien-scene/internal/logger"
	"alien-scene/internal/physics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{"cmd reset", []string{"reset"}, true},
		{"cmd   timescale --value 2 ", []string{"timescale", "--value", "2"}, true},
		{"cmd ", nil, true},
		{"hello", nil, false},
		{"CMD reset", nil, false},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		assert.Equal(t, tt.wantOK, ok, tt.line)
		assert.Equal(t, tt.want, args, tt.line)
	}
}

func TestRegistryExecute(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("echo")
	n := fs.Int("n", 1, "count")
	var gotN int
	var gotArgs []string
	r.Register("echo", "--n N words...", fs, func(args []string) error {
		gotN, gotArgs = *n, args
		return nil
	})
	r.Register("fail", "", nil, func([]string) error { return errors.New("boom") })

	require.NoError(t, r.Execute([]string{"echo", "--n", "3", "a", "b"}))
	assert.Equal(t, 3, gotN)
	assert.Equal(t, []string{"a", "b"}, gotArgs)

	require.NoError(t, r.Execute([]string{"echo"}))
	assert.Equal(t, 1, gotN, "flags reset to defaults between runs")

	assert.ErrorContains(t, r.Execute(nil), "missing subcommand")
	assert.ErrorContains(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.ErrorContains(t, r.Execute([]string{"echo", "--bogus"}), "usage: --n N words...")
	assert.EqualError(t, r.Execute([]string{"fail"}), "boom")

	assert.Equal(t, []string{"echo", "fail"}, r.Names())
	assert.Equal(t, []string{"echo: --n N words...", "fail: "}, r.Help())
}

type sceneFixture struct {
	reg      *Registry
	world    *physics.World
	cfg      *config.Config
	log      *logger.Logger
	paused   bool
	showFPS  bool
	showGrid bool
	path     string
}

func newSceneFixture(t *testing.T) *sceneFixture {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Seed = 1
	w, err := physics.NewWorld(cfg.Settings(1000, 500))
	require.NoError(t, err)

	f := &sceneFixture{
		reg:   NewRegistry(),
		world: w,
		cfg:   &cfg,
		log:   logger.New(filepath.Join(dir, "scene.txt"), 0),
		path:  filepath.Join(dir, "scene.yaml"),
	}
	RegisterScene(f.reg, SceneDeps{
		World:      f.world,
		Config:     f.cfg,
		ConfigPath: f.path,
		Log:        f.log,
		Paused:     &f.paused,
		ShowFPS:    func(on bool) { f.showFPS = on },
		ShowGrid:   func(on bool) { f.showGrid = on },
	})
	return f
}

func (f *sceneFixture) run(t *testing.T, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok)
	return f.reg.Execute(args)
}

func TestSceneCommandsTune(t *testing.T) {
	f := newSceneFixture(t)

	require.NoError(t, f.run(t, "cmd timescale --value 2.5"))
	require.NoError(t, f.run(t, "cmd resistance --value 0"))
	require.NoError(t, f.run(t, "cmd detector --mode radius"))
	require.NoError(t, f.run(t, "cmd response --mode elastic"))
	require.NoError(t, f.run(t, "cmd deactivate --on"))

	s := f.world.Settings()
	assert.Equal(t, float32(2.5), s.TimeScale)
	assert.Equal(t, float32(0), s.Resistance)
	assert.Equal(t, physics.DetectRadiusName, s.Detector)
	assert.Equal(t, physics.ResolveElasticName, s.Response)
	assert.True(t, s.DeactivateOnHit)

	assert.Error(t, f.run(t, "cmd timescale"), "default 0 is rejected")
	assert.Error(t, f.run(t, "cmd resistance"), "default -1 is rejected")
	assert.Error(t, f.run(t, "cmd detector --mode sweep"))
	assert.Error(t, f.run(t, "cmd response"))
}

func TestSceneCommandsToggles(t *testing.T) {
	f := newSceneFixture(t)

	require.NoError(t, f.run(t, "cmd pause"))
	assert.True(t, f.paused)
	require.NoError(t, f.run(t, "cmd pause"))
	assert.False(t, f.paused)

	require.NoError(t, f.run(t, "cmd fps --show"))
	assert.True(t, f.showFPS)
	require.NoError(t, f.run(t, "cmd fps --hide"))
	assert.False(t, f.showFPS)
	assert.Error(t, f.run(t, "cmd fps"))
	assert.Error(t, f.run(t, "cmd fps --show --hide"))

	require.NoError(t, f.run(t, "cmd grid --hide"))
	assert.False(t, f.showGrid)
	require.NoError(t, f.run(t, "cmd grid --show"))
	assert.True(t, f.showGrid)
}

func TestSceneCommandsSaveAndReset(t *testing.T) {
	f := newSceneFixture(t)

	require.NoError(t, f.run(t, "cmd timescale --value 3"))
	require.NoError(t, f.run(t, "cmd response --mode elastic"))
	require.NoError(t, f.run(t, "cmd save"))

	saved, err := config.Load(f.path)
	require.NoError(t, err)
	assert.Equal(t, float32(3), saved.World.TimeScale)
	assert.Equal(t, physics.ResolveElasticName, saved.Collision.Response)

	require.NoError(t, f.run(t, "cmd reset"))
	assert.Equal(t, uint64(0), f.world.Frame())

	require.NoError(t, f.run(t, "cmd help"))
	assert.Contains(t, f.log.Lines()[len(f.log.Lines())-1], "timescale: --value F")
}
