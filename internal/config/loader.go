package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigDir is the working-directory config folder. Tests point it
// elsewhere.
var localConfigDir = "configs"

// userConfigDir returns ~/.mini2d/configs, or empty if home is unavailable.
var userConfigDir = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mini2d", "configs")
}

// Load reads the config for a demo.
// Search order: customPath -> ~/.mini2d/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> fallback.
//
// Files are decoded over fallback(), so a YAML file only needs the keys it
// changes. Only an explicit customPath can fail; broken files found by the
// search are skipped.
func Load[T any](demoID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	name := demoID + ".yaml"
	var candidates []string
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	candidates = append(candidates, filepath.Join(localConfigDir, name))

	for _, path := range candidates {
		if c, ok := tryFile(path, fallback); ok {
			return c, nil
		}
	}

	if data := GetDefaultYAML(demoID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), nil // Fallback to hardcoded if embed is broken
		}
	}
	return cfg, nil
}

func tryFile[T any](path string, fallback func() T) (T, bool) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// LoadBalls loads the cannon and balls configuration.
func LoadBalls(customPath string) (BallsConfig, error) {
	return Load(BallsID, customPath, DefaultBallsConfig)
}

// LoadEmitter loads the particle emitter configuration.
func LoadEmitter(customPath string) (EmitterConfig, error) {
	return Load(ParticlesID, customPath, DefaultEmitterConfig)
}

// LoadShapes loads the shape inspector configuration.
func LoadShapes(customPath string) (ShapesConfig, error) {
	return Load(ShapesID, customPath, DefaultShapesConfig)
}

// ApplyBallsPreset modifies the config based on a difficulty preset.
func ApplyBallsPreset(cfg *BallsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Cannon.Ammo = 50
		cfg.Ball.Friction = 0.95
		cfg.Targets.Width *= 1.5
	case DifficultyHard:
		cfg.Cannon.Ammo = 20
		cfg.Ball.Friction = 0.8
		cfg.Targets.DriftSpeed *= 1.5
	}
}
