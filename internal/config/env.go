package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override file values.
const (
	EnvSeed          = "SCENE_SEED"
	EnvWorldHeight   = "SCENE_WORLD_HEIGHT"
	EnvTimeScale     = "SCENE_TIME_SCALE"
	EnvResistance    = "SCENE_RESISTANCE"
	EnvAdversaries   = "SCENE_ADVERSARIES"
	EnvDetector      = "SCENE_DETECTOR"
	EnvResponse      = "SCENE_RESPONSE"
	EnvSpectateAddr  = "SCENE_SPECTATE_ADDR"
	EnvAudioDisabled = "SCENE_NO_AUDIO"
)

// LoadDotEnv reads KEY=VALUE lines from path (e.g. ".env") into the process environment.
// Variables already set in the environment win. A missing file is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	vars, err := parseDotEnv(f)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		_ = os.Setenv(k, v)
	}
	return nil
}

// parseDotEnv skips blank lines, # comments and lines without a key, and strips one level of
// matching quotes around values.
func parseDotEnv(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
			value = value[1 : n-1]
		}
		vars[key] = value
	}
	return vars, scanner.Err()
}

// ApplyEnv overrides cfg from SCENE_* variables and validates the result.
func ApplyEnv(cfg *Config) error {
	if err := envInt64(EnvSeed, &cfg.Seed); err != nil {
		return err
	}
	if err := envFloat(EnvWorldHeight, &cfg.World.Height); err != nil {
		return err
	}
	if err := envFloat(EnvTimeScale, &cfg.World.TimeScale); err != nil {
		return err
	}
	if err := envFloat(EnvResistance, &cfg.World.Resistance); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvAdversaries); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvAdversaries, err)
		}
		cfg.Adversary.Count = n
	}
	if v, ok := os.LookupEnv(EnvDetector); ok {
		cfg.Collision.Detector = v
	}
	if v, ok := os.LookupEnv(EnvResponse); ok {
		cfg.Collision.Response = v
	}
	if v, ok := os.LookupEnv(EnvSpectateAddr); ok {
		cfg.Spectate.Addr = v
	}
	if v, ok := os.LookupEnv(EnvAudioDisabled); ok && v != "" && v != "0" {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}

func envFloat(key string, dst *float32) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = float32(f)
	return nil
}

func envInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}
