package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name of configuration files, without
	// extension.
	ConfigFileName = "barcodegen"

	// EnvPrefix is the prefix of environment variables. Dots and dashes in
	// keys become underscores: BARCODEGEN_PDF417_MIN_COLS.
	EnvPrefix = "BARCODEGEN"
)

// keys lists every barcode key so that environment variables reach
// Unmarshal even when no file or flag mentions them.
var keys = []string{
	"height",
	"module-width",
	"quiet-zone.value",
	"quiet-zone.enabled",
	"quiet-zone.unit",
	"vertical-quiet-zone",
	"human-readable.placement",
	"human-readable.font-size",
	"human-readable.font-name",
	"human-readable.pattern",
	"checksum-mode",
	"codesets",
	"wide-factor",
	"pad-odd",
	"bearer-bar.enabled",
	"bearer-bar.width",
	"pdf417.columns",
	"pdf417.min-cols",
	"pdf417.max-cols",
	"pdf417.min-rows",
	"pdf417.max-rows",
	"pdf417.error-correction-level",
	"pdf417.encoding",
	"pdf417.eci-enabled",
	"pdf417.width-to-height-ratio",
	"pdf417.row-height",
	"pdf417.compaction",
	"pdf417.patterns",
	"datamatrix.shape",
	"datamatrix.min-size",
	"datamatrix.max-size",
	"datamatrix.encoding",
	"datamatrix.eci-enabled",
}

// Loader loads a Config from files, the environment and bound flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader reading through v. Flags bound to v take
// precedence over the environment and the config file. A nil v uses a
// fresh instance.
func NewLoader(v *viper.Viper) *Loader {
	if v == nil {
		v = viper.New()
	}
	return &Loader{v: v}
}

// Viper returns the underlying viper instance.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load searches the standard locations for barcodegen.yaml. A missing file
// is not an error.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	for _, p := range SearchPaths() {
		l.v.AddConfigPath(p)
	}
	l.setup()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return l.unmarshal()
}

// LoadWithFile loads configuration from path. An empty path falls back to
// Load.
func (l *Loader) LoadWithFile(path string) (*Config, error) {
	if path == "" {
		return l.Load()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	l.v.SetConfigFile(path)
	l.setup()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return l.unmarshal()
}

// ConfigFileUsed returns the path of the file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) setup() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	l.v.AutomaticEnv()

	defaults := DefaultConfig()
	l.v.SetDefault("log-level", defaults.LogLevel)
	l.v.SetDefault("verbose", defaults.Verbose)
	l.v.SetDefault("output", defaults.Output)
	l.v.SetDefault("symbology", defaults.Symbology)
	for _, k := range keys {
		_ = l.v.BindEnv(k)
	}
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// SearchPaths returns the directories searched for barcodegen.yaml, in
// order.
func SearchPaths() []string {
	paths := []string{"."}
	if dir, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		paths = append(paths, filepath.Join(dir, "barcodegen"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "barcodegen"))
	}
	return append(paths, "/etc/barcodegen")
}
