package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cellscape/cellscape/engine/renderer"
	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cellscape.toml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "cellscape", cfg.Title)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, renderer.PresentModeVSync, cfg.RendererPresentMode())
	assert.Equal(t, renderer.MSAA4x, cfg.RendererMSAA())
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
title = "lattice viewer"
width = 1920
height = 1080
present_mode = "uncapped"
msaa = 8
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "lattice viewer", cfg.Title)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, renderer.PresentModeUncapped, cfg.RendererPresentMode())
	assert.Equal(t, renderer.MSAA8x, cfg.RendererMSAA())
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, `width = 800
height = 600
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "cellscape", cfg.Title)
	assert.Equal(t, renderer.MSAA4x, cfg.RendererMSAA())
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `width = "not a number`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, contents := range map[string]string{
		"zero width":    "width = 0",
		"negative size": "height = -5",
		"bad mode":      `present_mode = "adaptive"`,
		"bad msaa":      "msaa = 3",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, contents))
			assert.Error(t, err)
		})
	}
}
