// Package buildinfo holds the version stamped into wikicloud at link time.
//
//	go build -ldflags "-X github.com/matzehuels/wikicloud/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/wikicloud/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/wikicloud/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Link-time values. Unstamped builds report "dev".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Homepage is sent to Wikimedia as the contact address of the client.
const Homepage = "https://github.com/matzehuels/wikicloud"

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// UserAgent identifies this build to the Wikimedia APIs, which ask every
// client for a name, a version and a contact.
func UserAgent() string {
	return fmt.Sprintf("wikicloud/%s (%s)", Version, Homepage)
}
