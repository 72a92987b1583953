package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/LeDaffy/FlappyClone/internal/engine/physics"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search list.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		"./config.toml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Flappy")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Flappy")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "flappy")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "flappy")
	}
}

// loadFromFile merges a YAML or TOML file over the existing values.
// The format follows the file extension; anything but .toml is YAML.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate reports settings the game cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := physics.ParseAccelerationMode(c.Physics.Acceleration); err != nil {
		errs = append(errs, err)
	}
	if c.Physics.FixedStep < 0 {
		errs = append(errs, fmt.Errorf("fixed step %v must not be negative", c.Physics.FixedStep))
	}
	if len(c.Assets.Roots) == 0 {
		errs = append(errs, errors.New("no asset roots"))
	}
	if c.Assets.Texture == "" {
		errs = append(errs, errors.New("texture path is empty"))
	}
	if (c.Assets.VertexShader == "") != (c.Assets.FragmentShader == "") {
		errs = append(errs, errors.New("vertex and fragment shader paths must be set together"))
	}
	return errors.Join(errs...)
}
