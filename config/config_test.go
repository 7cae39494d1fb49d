package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/gpuenv/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GPUENV_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, WindowConfig{Width: 1600, Height: 900, Title: "gpuenv"}, cfg.Window)
	assert.Equal(t, []pulse.Backend{pulse.BackendVulkan}, cfg.Backends())
	assert.Equal(t, "warn", cfg.GPU.LogLevel)
	assert.False(t, cfg.Profile.CPU)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)

	t.Setenv("GPUENV_WINDOW_WIDTH", "800")
	t.Setenv("GPUENV_WINDOW_TITLE", "demo")
	t.Setenv("GPUENV_GPU_BACKENDS", "metal,vulkan")
	t.Setenv("GPUENV_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, []pulse.Backend{pulse.BackendMetal, pulse.BackendVulkan}, cfg.Backends())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "gpuenv.toml")
	content := `
[window]
width = 1280
height = 720

[gpu]
backends = ["dx12", "vulkan"]
log_level = "error"

[profile]
cpu = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("GPUENV_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, []pulse.Backend{pulse.BackendDX12, pulse.BackendVulkan}, cfg.Backends())
	assert.Equal(t, "error", cfg.GPU.LogLevel)
	assert.True(t, cfg.Profile.CPU)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("GPUENV_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Window: WindowConfig{Width: 1600, Height: 900},
		GPU:    GPUConfig{Backends: []string{"vulkan"}, LogLevel: "warn"},
		Log:    LogConfig{Level: "info"},
	}

	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"zero width":        func(c *Config) { c.Window.Width = 0 },
		"negative height":   func(c *Config) { c.Window.Height = -1 },
		"no backends":       func(c *Config) { c.GPU.Backends = nil },
		"unknown backend":   func(c *Config) { c.GPU.Backends = []string{"vulkan", "glide"} },
		"unknown log level": func(c *Config) { c.Log.Level = "loud" },
		"unknown gpu level": func(c *Config) { c.GPU.LogLevel = "chatty" },
	}

	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			c.GPU.Backends = append([]string(nil), valid.GPU.Backends...)
			modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}
