package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	wcerrors "github.com/matzehuels/wikicloud/pkg/errors"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestSelect(t *testing.T) {
	cfg := Default()
	tests := []struct {
		width float64
		want  string
	}{
		{320, "narrow"},
		{767, "narrow"},
		{767.9, "narrow"},
		{768, "wide"},
		{1920, "wide"},
	}
	for _, tt := range tests {
		if got := cfg.Select(tt.width).Name; got != tt.want {
			t.Errorf("Select(%v) = %s, want %s", tt.width, got, tt.want)
		}
	}
}

func TestSelectTerminal(t *testing.T) {
	cfg := Default()
	if got := cfg.SelectTerminal(99).Name; got != "terminal-narrow" {
		t.Errorf("SelectTerminal(99) = %s", got)
	}
	if got := cfg.SelectTerminal(100).Name; got != "terminal-wide" {
		t.Errorf("SelectTerminal(100) = %s", got)
	}
}

func TestProfileParams(t *testing.T) {
	p := Default().Wide.Params()
	if p.BandHeight.Min != 120 || p.BandHeight.Max != 260 {
		t.Errorf("band height = %+v", p.BandHeight)
	}
	if p.BandGap.Min != 60 || p.BandGap.Max != 160 {
		t.Errorf("band gap = %+v", p.BandGap)
	}
	if p.PerBand.Min != 1 || p.PerBand.Max != 10 {
		t.Errorf("per band = %+v", p.PerBand)
	}
	if p.MaxTries != 30 || p.Baseline != 240 {
		t.Errorf("tries = %d baseline = %v", p.MaxTries, p.Baseline)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
breakpoint = 900

[wide]
node_count = 600
per_band = { min = 2, max = 8 }

[cache]
backend = "none"
ttl = "6h"

[api]
language = "de"
retries = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Breakpoint != 900 {
		t.Errorf("breakpoint = %v, want 900", cfg.Breakpoint)
	}
	if cfg.Wide.NodeCount != 600 || cfg.Wide.PerBand.Min != 2 || cfg.Wide.PerBand.Max != 8 {
		t.Errorf("wide = %+v", cfg.Wide)
	}
	// Untouched fields keep their defaults.
	if cfg.Wide.BandHeight.Min != 120 || cfg.Wide.Name != "wide" {
		t.Errorf("wide defaults lost: %+v", cfg.Wide)
	}
	if cfg.Narrow.NodeCount != 400 {
		t.Errorf("narrow node count = %d, want 400", cfg.Narrow.NodeCount)
	}
	if cfg.Cache.Backend != BackendNone || cfg.Cache.TTL.Duration != 6*time.Hour {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.API.Language != "de" || cfg.API.Retries != 2 {
		t.Errorf("api = %+v", cfg.API)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") with no file error: %v", err)
	}
	if cfg.Wide.NodeCount != 1000 {
		t.Errorf("expected defaults, got %+v", cfg.Wide)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !wcerrors.Is(err, wcerrors.ErrCodeInvalidConfig) {
		t.Errorf("explicit missing file error = %v", err)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "wikicloud"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wikicloud", "config.toml"), []byte("font_size = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FontSize != 20 {
		t.Errorf("font size = %v, want 20", cfg.FontSize)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"inverted height", "[wide]\nband_height = { min = 300, max = 100 }\n"},
		{"inverted per band", "[narrow]\nper_band = { min = 5, max = 2 }\n"},
		{"zero per band", "[narrow]\nper_band = { min = 0, max = 2 }\n"},
		{"zero tries", "[wide]\nmax_tries = 0\n"},
		{"negative padding", "[terminal.wide]\npadding_x = -1\n"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
		{"negative retries", "[api]\nretries = -1\n"},
		{"bad base url", "[api]\nbase_url = \"ftp://example.org\"\n"},
		{"bad duration", "[cache]\nttl = \"forever\"\n"},
		{"unknown key", "[wide]\nnodes = 5\n"},
		{"syntax", "breakpoint = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !wcerrors.Is(err, wcerrors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", wcerrors.GetCode(err), wcerrors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestUnknownKeyNamed(t *testing.T) {
	_, err := Load(writeConfig(t, "[wide]\nnodes = 5\n"))
	if err == nil || !strings.Contains(err.Error(), "wide.nodes") {
		t.Errorf("error = %v, want it to name wide.nodes", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got := Default()
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("decode written config: %v", err)
	}
	if got.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("ttl = %v", got.Cache.TTL)
	}
	if got.Terminal.Wide.PerBand.Max != 6 {
		t.Errorf("terminal wide per band = %+v", got.Terminal.Wide.PerBand)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
