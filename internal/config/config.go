// Package config handles game configuration loading and management.
package config

import (
	"time"

	"github.com/LeDaffy/FlappyClone/internal/engine/physics"
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// Config holds all game settings.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Physics  PhysicsConfig  `yaml:"physics" toml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// PhysicsConfig holds integrator settings.
type PhysicsConfig struct {
	// Acceleration is "per_frame" or "scaled".
	Acceleration string  `yaml:"acceleration" toml:"acceleration"`
	MaxAngleDeg  float32 `yaml:"max_angle_deg" toml:"max_angle_deg"`
	// FixedStep replaces the measured frame time when non-zero.
	FixedStep time.Duration `yaml:"fixed_step" toml:"fixed_step"`
}

// GameplayConfig holds tuning for the player and pipes.
type GameplayConfig struct {
	PlayerScale   float32 `yaml:"player_scale" toml:"player_scale"`
	StartVelocity float32 `yaml:"start_velocity" toml:"start_velocity"`
	Gravity       float32 `yaml:"gravity" toml:"gravity"`
	SpinRateDeg   float32 `yaml:"spin_rate_deg" toml:"spin_rate_deg"`
	SpinAccelDeg  float32 `yaml:"spin_accel_deg" toml:"spin_accel_deg"`
	FlapSpeed     float32 `yaml:"flap_speed" toml:"flap_speed"`
	FlapAngleDeg  float32 `yaml:"flap_angle_deg" toml:"flap_angle_deg"`
	PipeStartX    float32 `yaml:"pipe_start_x" toml:"pipe_start_x"`
	PipeSpeed     float32 `yaml:"pipe_speed" toml:"pipe_speed"`
	PipeWrapX     float32 `yaml:"pipe_wrap_x" toml:"pipe_wrap_x"`
	PlayerBoundZ  float32 `yaml:"player_bound_z" toml:"player_bound_z"`
}

// AssetsConfig holds asset paths. Relative paths resolve against Roots,
// later roots taking priority. Empty shader paths select the embedded
// sources.
type AssetsConfig struct {
	Roots          []string `yaml:"roots" toml:"roots"`
	Texture        string   `yaml:"texture" toml:"texture"`
	VertexShader   string   `yaml:"vertex_shader" toml:"vertex_shader"`
	FragmentShader string   `yaml:"fragment_shader" toml:"fragment_shader"`
	ScreenshotDir  string   `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Flappy",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Physics: PhysicsConfig{
			Acceleration: "per_frame",
			MaxAngleDeg:  90,
		},
		Gameplay: DefaultGameplay(),
		Assets: AssetsConfig{
			Roots:         []string{"."},
			Texture:       "textures/sprites.png",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultGameplay returns the stock tuning.
func DefaultGameplay() GameplayConfig {
	return GameplayConfig{
		PlayerScale:   0.5,
		StartVelocity: 2,
		Gravity:       -0.17,
		SpinRateDeg:   1,
		SpinAccelDeg:  0.1,
		FlapSpeed:     425,
		FlapAngleDeg:  -45,
		PipeStartX:    400,
		PipeSpeed:     -48,
		PipeWrapX:     50,
		PlayerBoundZ:  128,
	}
}

// Integrator converts the physics section into integrator settings.
func (p PhysicsConfig) Integrator() (physics.Config, error) {
	mode, err := physics.ParseAccelerationMode(p.Acceleration)
	if err != nil {
		return physics.Config{}, err
	}
	cfg := physics.DefaultConfig()
	cfg.Mode = mode
	cfg.MaxAngle = math.Radians(p.MaxAngleDeg)
	return cfg, nil
}
