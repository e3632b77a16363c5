package buildinfo

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v0.3.0"
	if got, want := UserAgent(), "wikicloud/v0.3.0 ("+Homepage+")"; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
	if !strings.Contains(Template(), "v0.3.0") {
		t.Errorf("Template() = %q, missing version", Template())
	}
}
