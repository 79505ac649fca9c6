package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestColorParsing(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#5c616c")))
	assert.Equal(t, RGB(0x5c, 0x61, 0x6c), c)

	require.NoError(t, c.UnmarshalText([]byte("#f5f6f7ee")))
	assert.Equal(t, RGBA(0xf5, 0xf6, 0xf7, 0xee), c)

	assert.Error(t, c.UnmarshalText([]byte("5c616c")), "missing '#'")
	assert.Error(t, c.UnmarshalText([]byte("#xyzxyz")))
}

func TestColorRoundTrip(t *testing.T) {
	for _, s := range []string{"#5c616c", "#f5f6f7ee"} {
		var c Color
		require.NoError(t, c.UnmarshalText([]byte(s)))
		out, err := c.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s, string(out))
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "askpass.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "unlock"

[dialog]
input_timeout = 5
foreground = "#102030"

[dialog.indicator]
type = "circle"

[dialog.ok_button]
label = "Yes"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "unlock", cfg.Title)
	assert.Equal(t, 5, cfg.Dialog.InputTimeout)
	assert.Equal(t, RGB(0x10, 0x20, 0x30), cfg.Dialog.Foreground)
	assert.Equal(t, IndicatorCircle, cfg.Dialog.Indicator.Type)
	assert.Equal(t, "Yes", cfg.Dialog.OKButton.Label)
	// Untouched fields keep their defaults.
	assert.Equal(t, "Cancel", cfg.Dialog.CancelButton.Label)
	assert.Equal(t, 512, cfg.Dialog.MaxLength)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "askpass.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dialog:
  background: "#f5f6f7ee"
  indicator:
    type: strings
    strings:
      mode: disco
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, RGBA(0xf5, 0xf6, 0xf7, 0xee), cfg.Dialog.Background)
	assert.Equal(t, IndicatorStrings, cfg.Dialog.Indicator.Type)
	assert.Equal(t, StringsDisco, cfg.Dialog.Indicator.Strings.Mode)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ASKPASS_TITLE", "ssh unlock")
	t.Setenv("ASKPASS_INPUT_TIMEOUT", "7")
	t.Setenv("ASKPASS_INDICATOR", "circle")

	path := filepath.Join(t.TempDir(), "askpass.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = "from file"`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh unlock", cfg.Title, "environment wins over file")
	assert.Equal(t, 7, cfg.Dialog.InputTimeout)
	assert.Equal(t, IndicatorCircle, cfg.Dialog.Indicator.Type)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"depth", func(c *Config) { c.Depth = 16 }},
		{"placement", func(c *Config) { c.Dialog.Layout.Placement = "corner" }},
		{"direction", func(c *Config) { c.Dialog.Direction = "down" }},
		{"timeout", func(c *Config) { c.Dialog.InputTimeout = -1 }},
		{"max_length", func(c *Config) { c.Dialog.MaxLength = 0 }},
		{"indicator", func(c *Config) { c.Dialog.Indicator.Type = "sparkles" }},
		{"classic counts", func(c *Config) { c.Dialog.Indicator.Classic.MaxCount = 0 }},
		{"custom strings", func(c *Config) {
			c.Dialog.Indicator.Type = IndicatorStrings
			c.Dialog.Indicator.Strings.Mode = StringsCustom
			c.Dialog.Indicator.Strings.Custom.Strings = []string{"only one"}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDefault(&buf))

	path := filepath.Join(t.TempDir(), "generated.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
