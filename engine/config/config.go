package config

import (
	"fmt"
	"os"

	"github.com/cellscape/cellscape/engine/core"
	"github.com/cellscape/cellscape/engine/renderer"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the window and renderer settings loadable from a TOML file.
// Zero-valued or absent fields fall back to the engine defaults.
type Config struct {
	// Window settings.
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// Renderer settings. PresentMode is "vsync" or "uncapped"; MSAA is the
	// sample count (1, 4, 8, or 16).
	PresentMode string `toml:"present_mode"`
	MSAA        uint32 `toml:"msaa"`
}

// Default returns the engine default configuration: 1280x720 window titled
// "cellscape", vsync presentation, 4x MSAA.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Title:       "cellscape",
		Width:       1280,
		Height:      720,
		PresentMode: "vsync",
		MSAA:        uint32(renderer.MSAA4x),
	}
}

// Load reads a TOML configuration file and merges it over the defaults. A
// missing file is not an error: the defaults are returned and a warning is
// logged, so applications run unconfigured out of the box.
//
// Parameters:
//   - path: path to the TOML configuration file
//
// Returns:
//   - Config: the merged configuration
//   - error: non-nil if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogWarn("config: %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	core.LogDebug("config: loaded %s (%dx%d)", path, cfg.Width, cfg.Height)
	return cfg, nil
}

// validate rejects values the renderer cannot honor.
func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	switch c.PresentMode {
	case "vsync", "uncapped":
	default:
		return fmt.Errorf("config: unknown present mode %q", c.PresentMode)
	}
	switch renderer.MSAASampleCount(c.MSAA) {
	case renderer.MSAAOff, renderer.MSAA4x, renderer.MSAA8x, renderer.MSAA16x:
	default:
		return fmt.Errorf("config: unsupported msaa sample count %d", c.MSAA)
	}
	return nil
}

// RendererPresentMode maps the configured present mode string to the
// renderer's PresentMode.
//
// Returns:
//   - renderer.PresentMode: the mapped present mode
func (c *Config) RendererPresentMode() renderer.PresentMode {
	if c.PresentMode == "uncapped" {
		return renderer.PresentModeUncapped
	}
	return renderer.PresentModeVSync
}

// RendererMSAA maps the configured sample count to the renderer's
// MSAASampleCount.
//
// Returns:
//   - renderer.MSAASampleCount: the mapped sample count
func (c *Config) RendererMSAA() renderer.MSAASampleCount {
	return renderer.MSAASampleCount(c.MSAA)
}
