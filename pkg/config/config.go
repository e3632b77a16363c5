package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	wcerrors "github.com/matzehuels/wikicloud/pkg/errors"
	"github.com/matzehuels/wikicloud/pkg/geom"
)

const appName = "wikicloud"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete set of settings.
type Config struct {
	Breakpoint float64  `toml:"breakpoint"` // pixel width at which Wide starts
	FontSize   float64  `toml:"font_size"`  // label size in pixels
	Narrow     Profile  `toml:"narrow"`
	Wide       Profile  `toml:"wide"`
	Terminal   Terminal `toml:"terminal"`
	API        API      `toml:"api"`
	Cache      Cache    `toml:"cache"`
	Server     Server   `toml:"server"`
}

// Profile holds the layout constants for one surface class.
type Profile struct {
	Name       string        `toml:"-" json:"name"`
	NodeCount  int           `toml:"node_count" json:"node_count"`
	BandHeight geom.Range    `toml:"band_height" json:"band_height"`
	BandGap    geom.Range    `toml:"band_gap" json:"band_gap"`
	PerBand    geom.IntRange `toml:"per_band" json:"per_band"`
	MaxTries   int           `toml:"max_tries" json:"max_tries"`
	PaddingX   float64       `toml:"padding_x" json:"padding_x"`
	PaddingY   float64       `toml:"padding_y" json:"padding_y"`
	Baseline   float64       `toml:"baseline" json:"baseline"`
}

// Terminal holds the cell profiles of the browse view.
type Terminal struct {
	Breakpoint int     `toml:"breakpoint"` // column count at which Wide starts
	Narrow     Profile `toml:"narrow"`
	Wide       Profile `toml:"wide"`
}

// API configures the title and summary provider.
type API struct {
	Language  string   `toml:"language"`
	BaseURL   string   `toml:"base_url"` // empty means https://<language>.wikipedia.org
	UserAgent string   `toml:"user_agent"` // empty means wikicloud/<version>
	Retries   int      `toml:"retries"`
	Timeout   Duration `toml:"timeout"` // per fetch, zero means no extra limit
}

// Cache configures the response cache.
type Cache struct {
	Backend string   `toml:"backend"` // file, redis or none
	TTL     Duration `toml:"ttl"`
	Dir     string   `toml:"dir"` // file backend; empty means the XDG cache dir
	Redis   Redis    `toml:"redis"`
}

// Redis configures the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// Server configures the serve command.
type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string such as "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Breakpoint: 768,
		FontSize:   16,
		Narrow: Profile{
			Name:       "narrow",
			NodeCount:  400,
			BandHeight: geom.Range{Min: 80, Max: 160},
			BandGap:    geom.Range{Min: 40, Max: 80},
			PerBand:    geom.IntRange{Min: 1, Max: 4},
			MaxTries:   cloud.DefaultMaxTries,
			PaddingX:   8,
			PaddingY:   8,
			Baseline:   160,
		},
		Wide: Profile{
			Name:       "wide",
			NodeCount:  1000,
			BandHeight: geom.Range{Min: 120, Max: 260},
			BandGap:    geom.Range{Min: 60, Max: 160},
			PerBand:    geom.IntRange{Min: 1, Max: 10},
			MaxTries:   cloud.DefaultMaxTries,
			PaddingX:   8,
			PaddingY:   8,
			Baseline:   240,
		},
		Terminal: Terminal{
			Breakpoint: 100,
			Narrow: Profile{
				Name:       "terminal-narrow",
				NodeCount:  120,
				BandHeight: geom.Range{Min: 4, Max: 8},
				BandGap:    geom.Range{Min: 1, Max: 3},
				PerBand:    geom.IntRange{Min: 1, Max: 3},
				MaxTries:   cloud.DefaultMaxTries,
				PaddingX:   1,
				Baseline:   2,
			},
			Wide: Profile{
				Name:       "terminal-wide",
				NodeCount:  300,
				BandHeight: geom.Range{Min: 6, Max: 12},
				BandGap:    geom.Range{Min: 2, Max: 4},
				PerBand:    geom.IntRange{Min: 1, Max: 6},
				MaxTries:   cloud.DefaultMaxTries,
				PaddingX:   1,
				Baseline:   3,
			},
		},
		API: API{
			Language: "en",
		},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     Duration{24 * time.Hour},
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: appName + ":",
			},
		},
		Server: Server{
			Addr: "localhost:8080",
		},
	}
}

// Load reads path on top of the defaults and validates the result.
// An empty path means [DefaultPath]; a missing default file is not an error.
// Unknown keys are rejected so that typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return cfg, wcerrors.Wrap(wcerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, wcerrors.New(wcerrors.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/wikicloud/config.toml, falling back
// to ~/.config/wikicloud/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Write encodes cfg as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Select returns the pixel profile for a viewport width.
// Widths below the breakpoint are narrow.
func (c Config) Select(width float64) Profile {
	if width < c.Breakpoint {
		return c.Narrow
	}
	return c.Wide
}

// SelectTerminal returns the cell profile for a terminal width in columns.
func (c Config) SelectTerminal(cols int) Profile {
	if cols < c.Terminal.Breakpoint {
		return c.Terminal.Narrow
	}
	return c.Terminal.Wide
}

// Params converts the profile into layout parameters.
func (p Profile) Params() cloud.Params {
	return cloud.Params{
		BandHeight: p.BandHeight,
		BandGap:    p.BandGap,
		PerBand:    p.PerBand,
		MaxTries:   p.MaxTries,
		Baseline:   p.Baseline,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Breakpoint <= 0 {
		return wcerrors.New(wcerrors.ErrCodeInvalidConfig, "breakpoint must be positive, got %v", c.Breakpoint)
	}
	if c.FontSize <= 0 {
		return wcerrors.New(wcerrors.ErrCodeInvalidConfig, "font_size must be positive, got %v", c.FontSize)
	}
	if c.Terminal.Breakpoint <= 0 {
		return wcerrors.New(wcerrors.ErrCodeInvalidConfig, "terminal.breakpoint must be positive, got %d", c.Terminal.Breakpoint)
	}
	profiles := []struct {
		key string
		p   Profile
	}{
		{"narrow", c.Narrow},
		{"wide", c.Wide},
		{"terminal.narrow", c.Terminal.Narrow},
		{"terminal.wide", c.Terminal.Wide},
	}
	for _, pr := range profiles {
		if err := pr.p.validate(); err != nil {
			return wcerrors.Wrap(wcerrors.ErrCodeInvalidConfig, err, "profile %s", pr.key)
		}
	}

	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return wcerrors.New(wcerrors.ErrCodeInvalidConfig, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return wcerrors.New(wcerrors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.API.Retries < 0 {
		return wcerrors.New(wcerrors.ErrCodeInvalidConfig, "api.retries must not be negative, got %d", c.API.Retries)
	}
	if c.API.BaseURL != "" {
		if err := wcerrors.ValidateURL(c.API.BaseURL); err != nil {
			return wcerrors.Wrap(wcerrors.ErrCodeInvalidConfig, err, "api.base_url")
		}
	}
	return nil
}

func (p Profile) validate() error {
	if p.NodeCount < 1 {
		return fmt.Errorf("node_count must be positive, got %d", p.NodeCount)
	}
	if p.MaxTries < 1 {
		return fmt.Errorf("max_tries must be positive, got %d", p.MaxTries)
	}
	if p.PaddingX < 0 || p.PaddingY < 0 {
		return fmt.Errorf("padding must not be negative")
	}
	if p.Baseline < 0 {
		return fmt.Errorf("baseline must not be negative, got %v", p.Baseline)
	}
	return p.Params().Validate()
}
