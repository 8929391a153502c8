package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ericlevine/barcodegen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barcodegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, &barcodegen.Options{}, opts)
}

func TestLoadWithNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, OutputAuto, cfg.Output)
	assert.Equal(t, "code128", cfg.Symbology)
}

func TestLoadWithFile(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
symbology: pdf417
module-width: 0.33mm
height: 20
quiet-zone:
  value: 10
  unit: mw
  enabled: true
human-readable:
  placement: top
  font-size: 8pt
  pattern: "(__)____"
checksum-mode: add
bearer-bar:
  enabled: false
  width: 2mw
pdf417:
  columns: 4
  error-correction-level: 2
  row-height: 3mw
  compaction: text
datamatrix:
  shape: square
  min-size: 16x16
`)
	l := NewLoader(nil)
	cfg, err := l.LoadWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.ConfigFileUsed())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pdf417", cfg.Symbology)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.InDelta(t, 0.33, opts.ModuleWidth, 1e-9)
	assert.Equal(t, 20.0, opts.Height)
	assert.Equal(t, &barcodegen.Length{Value: 10, Unit: barcodegen.UnitModuleWidth}, opts.QuietZone)
	require.NotNil(t, opts.QuietZoneEnabled)
	assert.True(t, *opts.QuietZoneEnabled)
	require.NotNil(t, opts.HumanReadable.Placement)
	assert.Equal(t, barcodegen.PlacementTop, *opts.HumanReadable.Placement)
	assert.InDelta(t, barcodegen.PointsToMM(8), opts.HumanReadable.FontSize, 1e-9)
	assert.Equal(t, "(__)____", opts.HumanReadable.Pattern)
	assert.Equal(t, barcodegen.ChecksumAdd, opts.ChecksumMode)
	require.NotNil(t, opts.BearerBar.Box)
	assert.False(t, *opts.BearerBar.Box)
	assert.Equal(t, &barcodegen.Length{Value: 2, Unit: barcodegen.UnitModuleWidth}, opts.BearerBar.Width)
	assert.Equal(t, 4, opts.PDF417.Columns)
	require.NotNil(t, opts.PDF417.ErrorCorrectionLevel)
	assert.Equal(t, 2, *opts.PDF417.ErrorCorrectionLevel)
	assert.Equal(t, "text", opts.PDF417.Compaction)
	assert.Equal(t, "square", opts.DataMatrix.Shape)
	assert.Equal(t, "16x16", opts.DataMatrix.MinSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(nil).LoadWithFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "module-width: [\n")
	_, err := NewLoader(nil).LoadWithFile(path)
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "module-width: 0.5mm\n")
	t.Setenv("BARCODEGEN_MODULE_WIDTH", "0.25")
	t.Setenv("BARCODEGEN_PDF417_MIN_COLS", "3")
	t.Setenv("BARCODEGEN_QUIET_ZONE_ENABLED", "false")
	t.Setenv("BARCODEGEN_OUTPUT", "yaml")

	cfg, err := NewLoader(nil).LoadWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, opts.ModuleWidth, 1e-9)
	assert.Equal(t, 3, opts.PDF417.MinCols)
	require.NotNil(t, opts.QuietZoneEnabled)
	assert.False(t, *opts.QuietZoneEnabled)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "symbology: ean-13\n")
	v := viper.New()
	v.Set("symbology", "itf-14")

	cfg, err := NewLoader(v).LoadWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, "itf-14", cfg.Symbology)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
		{"output", func(c *Config) { c.Output = "json" }},
		{"symbology", func(c *Config) { c.Symbology = "qr" }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"module width in module widths", func(c *Config) { c.ModuleWidth = "2mw" }},
		{"module width", func(c *Config) { c.ModuleWidth = "wide" }},
		{"quiet zone unit", func(c *Config) { c.QuietZone = QuietZone{Value: "10", Unit: "furlong"} }},
		{"placement", func(c *Config) { c.HumanReadable.Placement = "left" }},
		{"checksum mode", func(c *Config) { c.ChecksumMode = "maybe" }},
		{"row height", func(c *Config) { c.PDF417.RowHeight = "-3mm" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	level := 4
	cfg := DefaultConfig()
	cfg.ModuleWidth = "0.21mm"
	cfg.PDF417.ErrorCorrectionLevel = &level
	cfg.DataMatrix.Shape = "rectangle"

	out, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "module-width: 0.21mm")
	assert.NotContains(t, string(out), "bearer-bar")

	cfg2, err := NewLoader(nil).LoadWithFile(writeConfig(t, string(out)))
	require.NoError(t, err)
	assert.Equal(t, cfg, *cfg2)
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, []string{".", "/xdg/barcodegen", "/etc/barcodegen"}, SearchPaths())
}
