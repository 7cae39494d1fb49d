package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/oliverbestmann/gpuenv/pulse"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window  WindowConfig
	GPU     GPUConfig
	Log     LogConfig
	Profile ProfileConfig
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// GPUConfig holds the backend negotiation settings.
type GPUConfig struct {
	// backend candidates in priority order
	Backends []string

	// log level of wgpu-native itself
	LogLevel string `mapstructure:"log_level"`
}

type LogConfig struct {
	Level string
}

type ProfileConfig struct {
	CPU  bool
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix GPUENV_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GPUENV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gpuenv"))
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine unless it was asked for explicitly
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", pulse.DefaultWindowWidth)
	v.SetDefault("window.height", pulse.DefaultWindowHeight)
	v.SetDefault("window.title", pulse.DefaultWindowTitle)
	v.SetDefault("gpu.backends", []string{string(pulse.BackendVulkan)})
	v.SetDefault("gpu.log_level", "warn")
	v.SetDefault("log.level", "info")
	v.SetDefault("profile.cpu", false)
	v.SetDefault("profile.path", "")

	v.SetEnvPrefix("GPUENV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// a list from an env var arrives as a single comma separated value
	if len(c.GPU.Backends) == 1 && strings.Contains(c.GPU.Backends[0], ",") {
		c.GPU.Backends = strings.Split(c.GPU.Backends[0], ",")
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks that all values can be used.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	if len(c.GPU.Backends) == 0 {
		return errors.New("no gpu backend configured")
	}

	if _, err := pulse.ParseBackends(c.GPU.Backends); err != nil {
		return fmt.Errorf("gpu.backends: %w", err)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	switch strings.ToLower(c.GPU.LogLevel) {
	case "off", "error", "warn", "info", "debug", "trace":
	default:
		return fmt.Errorf("gpu.log_level: unknown level %q", c.GPU.LogLevel)
	}

	return nil
}

// Backends returns the configured backend candidates.
func (c Config) Backends() []pulse.Backend {
	backends, _ := pulse.ParseBackends(c.GPU.Backends)
	return backends
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}
