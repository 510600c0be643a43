package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomicstack/tabstrip/internal/app"
	"github.com/atomicstack/tabstrip/internal/theme"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix  = "TABSTRIP"
	configName = "config"
	configType = "toml"
)

const (
	keyWidth   = "width"
	keyHeight  = "height"
	keyAccent  = "accent"
	keyUnicode = "unicode"
	keyMaxRows = "max-rows"
	keyConfig  = "config"
	keyLogFile = "log-file"
	keyTrace   = "trace"
)

// Load parses configuration from CLI arguments, TABSTRIP_* environment
// variables and an optional TOML file, in that order of precedence.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:])
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("tabstrip", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Int(keyWidth, 0, "tab bar width in cells (0 follows the terminal)")
	fs.Int(keyHeight, 0, "viewport height in rows (0 follows the terminal)")
	fs.String(keyAccent, "", "accent color as #rrggbb (default is the theme accent)")
	fs.Bool(keyUnicode, false, "prefer unicode titles and artists")
	fs.Int(keyMaxRows, 10, "maximum visible rows in the overflow dropdown")
	fs.String(keyConfig, "", "path to a TOML config file")
	fs.String(keyLogFile, "", "path to the log file")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	return fs
}

// Usage returns the flag help text.
func Usage() string {
	return newFlagSet().FlagUsages()
}

// LoadArgs allows tests to supply specific args; the environment is read
// from the process.
func LoadArgs(args []string) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	file, err := readConfigFile(v)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:         v.GetInt(keyWidth),
			Height:        v.GetInt(keyHeight),
			Accent:        strings.TrimSpace(v.GetString(keyAccent)),
			PreferUnicode: v.GetBool(keyUnicode),
			MaxRows:       v.GetInt(keyMaxRows),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		File: file,
		Args: append([]string(nil), args...),
	}
	cfg.Flags = map[string]string{
		"width":   strconv.Itoa(cfg.App.Width),
		"height":  strconv.Itoa(cfg.App.Height),
		"accent":  cfg.App.Accent,
		"unicode": strconv.FormatBool(cfg.App.PreferUnicode),
		"maxRows": strconv.Itoa(cfg.App.MaxRows),
		"config":  file,
	}
	return cfg, nil
}

// readConfigFile loads an explicit --config/TABSTRIP_CONFIG file, failing
// when it is missing, or else the first config.toml found in the search
// path, which may be absent.
func readConfigFile(v *viper.Viper) (string, error) {
	v.SetConfigType(configType)
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", path, err)
		}
		return path, nil
	}
	v.SetConfigName(configName)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tabstrip"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(os.Stdout, "Usage: tabstrip [flags]\n\n%s", Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the UI cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.MaxRows < 1 {
		return fmt.Errorf("max-rows must be >= 1 (got %d)", cfg.App.MaxRows)
	}
	if cfg.App.Accent != "" {
		if _, err := theme.ParseHex(cfg.App.Accent); err != nil {
			return fmt.Errorf("accent %q: %w", cfg.App.Accent, err)
		}
	}
	return nil
}
