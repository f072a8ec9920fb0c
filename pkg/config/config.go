// Package config loads tagline's configuration: embedded defaults, then the
// user's config file from the XDG config directory, then TAGLINE_ environment
// variables. Later layers override earlier ones.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tagline/pkg/ansi"
	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/logging"
)

// Config is the fully merged runtime configuration.
type Config struct {
	Markup MarkupConfig      `koanf:"markup"`
	Output OutputConfig      `koanf:"output"`
	Tags   map[string]string `koanf:"tags"`
}

// MarkupConfig controls the tag interpreter.
type MarkupConfig struct {
	Strict bool `koanf:"strict"`
}

// OutputConfig controls the printer.
type OutputConfig struct {
	Color      string `koanf:"color"`
	Separator  string `koanf:"separator"`
	Terminator string `koanf:"terminator"`
}

// Load builds the merged configuration. A missing user config file is not
// an error; a malformed one is.
func Load() (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, first match wins
	if path := userConfigPath(); path != "" {
		var parser koanf.Parser = ktoml.Parser()
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			parser = kyaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment variables: TAGLINE_MARKUP_STRICT -> markup.strict
	if err := k.Load(env.Provider("TAGLINE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "TAGLINE_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
		return nil
	}
	return errors.Newf(errors.ErrConfigValid, "invalid output.color %q, want auto, always or never", c.Output.Color)
}

// Registry returns the style registry with any custom tags from the
// configuration merged over the built-ins.
func (c *Config) Registry() *ansi.Registry {
	if len(c.Tags) == 0 {
		return ansi.Default()
	}
	custom := make(map[string]ansi.Style, len(c.Tags))
	for name, code := range c.Tags {
		custom[name] = ansi.Style{Code: code}
	}
	return ansi.NewRegistry(custom)
}

// userConfigPath returns the first existing user config file, or "".
func userConfigPath() string {
	xdg.Reload()
	dir := filepath.Join(xdg.ConfigHome, "tagline")
	for _, name := range []string{"tagline.toml", "tagline.yaml", "tagline.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
