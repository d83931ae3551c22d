// Package config loads CLI configuration with koanf. Precedence, highest
// first: changed flags, QUERYDIALOG_* environment variables, the YAML config
// file, defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "QUERYDIALOG_"

// DefaultConfigFile is looked up in the working directory when no explicit
// file is given.
const DefaultConfigFile = "querydialog.yaml"

// Defaults.
const (
	DefaultStructure     = "structure.json"
	DefaultCatalog       = "metadata.yaml"
	DefaultCatalogFormat = "yaml"
	DefaultOutput        = "json"
	DefaultLogLevel      = "warn"
)

// Config holds CLI settings.
type Config struct {
	Structure     string `koanf:"structure"`
	Catalog       string `koanf:"catalog"`
	CatalogFormat string `koanf:"catalog_format"`
	Output        string `koanf:"output"`
	LogLevel      string `koanf:"log_level"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

// Load resolves configuration from cfgFile (optional), the environment and
// flags. Only flags the user changed override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"structure":      DefaultStructure,
		"catalog":        DefaultCatalog,
		"catalog_format": DefaultCatalogFormat,
		"output":         DefaultOutput,
		"log_level":      DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// QUERYDIALOG_CATALOG_FORMAT -> catalog_format
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.CatalogFormat {
	case "yaml", "json", "openapi":
	default:
		return fmt.Errorf("config: unsupported catalog_format %q", c.CatalogFormat)
	}
	switch c.Output {
	case "json", "pretty":
	default:
		return fmt.Errorf("config: unsupported output %q", c.Output)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: invalid log_level %q", name)
	}
	return level, nil
}

// Logger builds a text logger on stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}
