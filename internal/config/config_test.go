package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/out", "/photos/out"},
		{"single trailing slash", "/photos/out/", "/photos/out"},
		{"multiple trailing slashes", "/photos/out///", "/photos/out"},
		{"root path", "/", "/"},
		{"relative path", "out", "out"},
		{"relative with slash", "out/", "out"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "jpg", NormalizeExt("jpg"))
	assert.Equal(t, "jpg", NormalizeExt(".jpg"))
	assert.Equal(t, "tif", NormalizeExt("  ..tif "))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestDefaultConfig_FixedLayout(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "photos/*.JPG", cfg.InputPattern)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "jpg", cfg.OutputExt)
	assert.Equal(t, "./stitch", cfg.Stitcher)
	assert.Equal(t, OrderSorted, cfg.Order)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.SkipExisting)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"native order", func(c *Config) { c.Order = OrderNative }, false},
		{"unknown order", func(c *Config) { c.Order = "random" }, true},
		{"empty order", func(c *Config) { c.Order = "" }, true},
		{"unknown color", func(c *Config) { c.ColorMode = "rainbow" }, true},
		{"empty stitcher", func(c *Config) { c.Stitcher = "  " }, true},
		{"empty ext", func(c *Config) { c.OutputExt = "." }, true},
		{"ext with separator", func(c *Config) { c.OutputExt = "a/b" }, true},
		{"empty pattern", func(c *Config) { c.InputPattern = "" }, true},
		{"malformed pattern", func(c *Config) { c.InputPattern = "photos/[*.JPG" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NormalizesInPlace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputExt = ".PNG"
	cfg.OutputDir = "panoramas/"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "PNG", cfg.OutputExt)
	assert.Equal(t, "panoramas", cfg.OutputDir)
}

func TestLoadFile_OverlaysPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stitch.yaml")
	body := "input: shots/*.jpeg\nstitcher: /usr/local/bin/stitch\norder: native\nskip_existing: true\ncolor: never\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadFile(path, &cfg))

	assert.Equal(t, "shots/*.jpeg", cfg.InputPattern)
	assert.Equal(t, "/usr/local/bin/stitch", cfg.Stitcher)
	assert.Equal(t, OrderNative, cfg.Order)
	assert.True(t, cfg.SkipExisting)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	// Untouched keys keep their defaults.
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "jpg", cfg.OutputExt)
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadFile(path, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, LoadFile(filepath.Join(dir, "nope.yaml"), &cfg))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("outptu: x\n"), 0o644))
		cfg := DefaultConfig()
		assert.Error(t, LoadFile(path, &cfg))
	})

	t.Run("bad enum", func(t *testing.T) {
		path := filepath.Join(dir, "order.yaml")
		require.NoError(t, os.WriteFile(path, []byte("order: shuffled\n"), 0o644))
		cfg := DefaultConfig()
		assert.Error(t, LoadFile(path, &cfg))
	})
}
